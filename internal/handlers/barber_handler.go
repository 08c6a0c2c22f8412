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

type BarberHandler struct {
	repos *repository.Repositories
	embed embedder
}

func NewBarberHandler(repos *repository.Repositories) *BarberHandler {
	return &BarberHandler{repos: repos, embed: embedder{repos: repos}}
}

// Create stores points as given; nothing accrues them.
func (h *BarberHandler) Create(c *gin.Context) {
	var req dto.CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	ctx, db := c.Request.Context(), middleware.Session(c)

	barber := models.Barber{
		UserID:       req.UserID,
		GenreID:      req.GenreID,
		SpecialtyID:  req.SpecialtyID,
		DepartmentID: req.DepartmentID,
		CityID:       req.CityID,
		ScheduleID:   req.ScheduleID,
		Phone:        req.Phone,
		Address:      req.Address,
		Points:       req.Points,
	}
	if err := h.repos.Barbers.Create(ctx, db, &barber); err != nil {
		httperr.Store(c, err, "barber")
		return
	}

	out, err := one(ctx, db, &barber, h.embed.barbers)
	if err != nil {
		httperr.Store(c, err, "barber")
		return
	}
	httpresp.Created(c, out)
}

func (h *BarberHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}

	rows, err := h.repos.Barbers.List(c.Request.Context(), middleware.Session(c), page)
	if err != nil {
		httperr.Store(c, err, "barber")
		return
	}
	h.render(c, rows)
}

func (h *BarberHandler) ListByCity(c *gin.Context) {
	cityID, ok := pathID(c, "city_id")
	if !ok {
		return
	}

	rows, err := h.repos.Barbers.ListByCity(c.Request.Context(), middleware.Session(c), cityID)
	if err != nil {
		httperr.Store(c, err, "barber")
		return
	}
	h.render(c, rows)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), middleware.Session(c)

	barber, err := h.repos.Barbers.FindByID(ctx, db, id)
	if err != nil {
		httperr.Store(c, err, "barber")
		return
	}

	out, err := one(ctx, db, barber, h.embed.barbers)
	if err != nil {
		httperr.Store(c, err, "barber")
		return
	}
	httpresp.OK(c, out)
}

func (h *BarberHandler) render(c *gin.Context, rows []models.Barber) {
	out, err := h.embed.barbers(c.Request.Context(), middleware.Session(c), rows)
	if err != nil {
		httperr.Store(c, err, "barber")
		return
	}
	httpresp.List(c, out)
}
