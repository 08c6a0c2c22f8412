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

type GenreHandler struct {
	repos *repository.Repositories
}

func NewGenreHandler(repos *repository.Repositories) *GenreHandler {
	return &GenreHandler{repos: repos}
}

func (h *GenreHandler) Create(c *gin.Context) {
	var req dto.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	genre := models.Genre{Name: req.Name}
	if err := h.repos.Genres.Create(c.Request.Context(), middleware.Session(c), &genre); err != nil {
		httperr.Store(c, err, "genre")
		return
	}

	httpresp.Created(c, converter.GenreToResponse(&genre))
}

func (h *GenreHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}

	rows, err := h.repos.Genres.List(c.Request.Context(), middleware.Session(c), page)
	if err != nil {
		httperr.Store(c, err, "genre")
		return
	}

	httpresp.List(c, convertAll(rows, converter.GenreToResponse))
}

func (h *GenreHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	genre, err := h.repos.Genres.FindByID(c.Request.Context(), middleware.Session(c), id)
	if err != nil {
		httperr.Store(c, err, "genre")
		return
	}

	httpresp.OK(c, converter.GenreToResponse(genre))
}
