package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberian-api/internal/dto"
	"github.com/BruksfildServices01/barberian-api/internal/httperr"
	"github.com/BruksfildServices01/barberian-api/internal/httpresp"
	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberian-api/internal/middleware"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

type CityHandler struct {
	repos *repository.Repositories
	embed embedder
}

func NewCityHandler(repos *repository.Repositories) *CityHandler {
	return &CityHandler{repos: repos, embed: embedder{repos: repos}}
}

func (h *CityHandler) Create(c *gin.Context) {
	var req dto.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	ctx, db := c.Request.Context(), middleware.Session(c)

	city := models.City{Name: req.Name, DepartmentID: req.DepartmentID}
	if err := h.repos.Cities.Create(ctx, db, &city); err != nil {
		httperr.Store(c, err, "city")
		return
	}

	out, err := one(ctx, db, &city, h.embed.cities)
	if err != nil {
		httperr.Store(c, err, "city")
		return
	}
	httpresp.Created(c, out)
}

func (h *CityHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), middleware.Session(c)

	rows, err := h.repos.Cities.List(ctx, db, page)
	if err != nil {
		httperr.Store(c, err, "city")
		return
	}
	h.render(c, rows)
}

// ListByDepartment answers an empty array for unknown departments.
func (h *CityHandler) ListByDepartment(c *gin.Context) {
	departmentID, ok := pathID(c, "department_id")
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), middleware.Session(c)

	rows, err := h.repos.Cities.ListByDepartment(ctx, db, departmentID)
	if err != nil {
		httperr.Store(c, err, "city")
		return
	}
	h.render(c, rows)
}

func (h *CityHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), middleware.Session(c)

	city, err := h.repos.Cities.FindByID(ctx, db, id)
	if err != nil {
		httperr.Store(c, err, "city")
		return
	}

	out, err := one(ctx, db, city, h.embed.cities)
	if err != nil {
		httperr.Store(c, err, "city")
		return
	}
	httpresp.OK(c, out)
}

func (h *CityHandler) render(c *gin.Context, rows []models.City) {
	out, err := h.embed.cities(c.Request.Context(), middleware.Session(c), rows)
	if err != nil {
		httperr.Store(c, err, "city")
		return
	}
	httpresp.List(c, out)
}
