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

type LocationHandler struct {
	repos *repository.Repositories
	embed embedder
}

func NewLocationHandler(repos *repository.Repositories) *LocationHandler {
	return &LocationHandler{repos: repos, embed: embedder{repos: repos}}
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	fields := fieldErrors{}
	opening, err := models.ParseClock(req.OpeningHour)
	fields.add("opening_hour", err)
	closing, err := models.ParseClock(req.ClosingHour)
	fields.add("closing_hour", err)
	if fields.abort(c) {
		return
	}

	ctx, db := c.Request.Context(), middleware.Session(c)

	loc := models.Location{
		BarbershopID: req.BarbershopID,
		DepartmentID: req.DepartmentID,
		CityID:       req.CityID,
		Address:      req.Address,
		OpeningHour:  opening,
		ClosingHour:  closing,
	}
	if err := h.repos.Locations.Create(ctx, db, &loc); err != nil {
		httperr.Store(c, err, "location")
		return
	}

	out, err := one(ctx, db, &loc, h.embed.locations)
	if err != nil {
		httperr.Store(c, err, "location")
		return
	}
	httpresp.Created(c, out)
}

func (h *LocationHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), middleware.Session(c)

	rows, err := h.repos.Locations.List(ctx, db, page)
	if err != nil {
		httperr.Store(c, err, "location")
		return
	}

	out, err := h.embed.locations(ctx, db, rows)
	if err != nil {
		httperr.Store(c, err, "location")
		return
	}
	httpresp.List(c, out)
}

func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), middleware.Session(c)

	loc, err := h.repos.Locations.FindByID(ctx, db, id)
	if err != nil {
		httperr.Store(c, err, "location")
		return
	}

	out, err := one(ctx, db, loc, h.embed.locations)
	if err != nil {
		httperr.Store(c, err, "location")
		return
	}
	httpresp.OK(c, out)
}
