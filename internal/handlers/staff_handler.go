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

type StaffHandler struct {
	repos *repository.Repositories
	embed embedder
}

func NewStaffHandler(repos *repository.Repositories) *StaffHandler {
	return &StaffHandler{repos: repos, embed: embedder{repos: repos}}
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	ctx, db := c.Request.Context(), middleware.Session(c)

	staff := models.Staff{BarberID: req.BarberID}
	if err := h.repos.Staff.Create(ctx, db, &staff); err != nil {
		httperr.Store(c, err, "staff")
		return
	}

	out, err := one(ctx, db, &staff, h.embed.staff)
	if err != nil {
		httperr.Store(c, err, "staff")
		return
	}
	httpresp.Created(c, out)
}

func (h *StaffHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), middleware.Session(c)

	rows, err := h.repos.Staff.List(ctx, db, page)
	if err != nil {
		httperr.Store(c, err, "staff")
		return
	}

	out, err := h.embed.staff(ctx, db, rows)
	if err != nil {
		httperr.Store(c, err, "staff")
		return
	}
	httpresp.List(c, out)
}

func (h *StaffHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), middleware.Session(c)

	staff, err := h.repos.Staff.FindByID(ctx, db, id)
	if err != nil {
		httperr.Store(c, err, "staff")
		return
	}
	h.renderOne(c, staff)
}

// GetByBarber returns the barber's first staff row.
func (h *StaffHandler) GetByBarber(c *gin.Context) {
	barberID, ok := pathID(c, "barber_id")
	if !ok {
		return
	}

	staff, err := h.repos.Staff.FindByBarber(c.Request.Context(), middleware.Session(c), barberID)
	if err != nil {
		httperr.Store(c, err, "staff")
		return
	}
	h.renderOne(c, staff)
}

// Delete refuses with 409 while a barbershop still points at the row.
func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.repos.Staff.Delete(c.Request.Context(), middleware.Session(c), id); err != nil {
		httperr.Store(c, err, "staff")
		return
	}

	httpresp.Message(c, "Staff deleted successfully")
}

func (h *StaffHandler) renderOne(c *gin.Context, staff *models.Staff) {
	out, err := one(c.Request.Context(), middleware.Session(c), staff, h.embed.staff)
	if err != nil {
		httperr.Store(c, err, "staff")
		return
	}
	httpresp.OK(c, out)
}
