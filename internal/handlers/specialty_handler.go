package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberian-api/internal/converter"
	"github.com/BruksfildServices01/barberian-api/internal/dto"
	"github.com/BruksfildServices01/barberian-api/internal/httperr"
	"github.com/BruksfildServices01/barberian-api/internal/httpresp"
	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberian-api/internal/middleware"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

type SpecialtyHandler struct {
	repos *repository.Repositories
}

func NewSpecialtyHandler(repos *repository.Repositories) *SpecialtyHandler {
	return &SpecialtyHandler{repos: repos}
}

func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req dto.CreateSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	specialty := models.Specialty{
		Name:            req.Name,
		YearsExperience: req.YearsExperience,
	}
	if err := h.repos.Specialties.Create(c.Request.Context(), middleware.Session(c), &specialty); err != nil {
		httperr.Store(c, err, "specialty")
		return
	}

	httpresp.Created(c, converter.SpecialtyToResponse(&specialty))
}

func (h *SpecialtyHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}

	rows, err := h.repos.Specialties.List(c.Request.Context(), middleware.Session(c), page)
	if err != nil {
		httperr.Store(c, err, "specialty")
		return
	}

	httpresp.List(c, convertAll(rows, converter.SpecialtyToResponse))
}

func (h *SpecialtyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	specialty, err := h.repos.Specialties.FindByID(c.Request.Context(), middleware.Session(c), id)
	if err != nil {
		httperr.Store(c, err, "specialty")
		return
	}

	httpresp.OK(c, converter.SpecialtyToResponse(specialty))
}
