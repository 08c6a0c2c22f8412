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

type BarbershopHandler struct {
	repos *repository.Repositories
}

func NewBarbershopHandler(repos *repository.Repositories) *BarbershopHandler {
	return &BarbershopHandler{repos: repos}
}

func (h *BarbershopHandler) Create(c *gin.Context) {
	var req dto.CreateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	shop := models.Barbershop{
		StaffID: req.StaffID,
		Phone:   req.Phone,
	}
	if err := h.repos.Barbershops.Create(c.Request.Context(), middleware.Session(c), &shop); err != nil {
		httperr.Store(c, err, "barbershop")
		return
	}

	httpresp.Created(c, converter.BarbershopToResponse(&shop))
}

func (h *BarbershopHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}

	rows, err := h.repos.Barbershops.List(c.Request.Context(), middleware.Session(c), page)
	if err != nil {
		httperr.Store(c, err, "barbershop")
		return
	}

	httpresp.List(c, convertAll(rows, converter.BarbershopToResponse))
}

func (h *BarbershopHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	shop, err := h.repos.Barbershops.FindByID(c.Request.Context(), middleware.Session(c), id)
	if err != nil {
		httperr.Store(c, err, "barbershop")
		return
	}

	httpresp.OK(c, converter.BarbershopToResponse(shop))
}
