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

type RoleHandler struct {
	repos *repository.Repositories
}

func NewRoleHandler(repos *repository.Repositories) *RoleHandler {
	return &RoleHandler{repos: repos}
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	role := models.Role{Name: req.Name}
	if err := h.repos.Roles.Create(c.Request.Context(), middleware.Session(c), &role); err != nil {
		httperr.Store(c, err, "role")
		return
	}

	httpresp.Created(c, converter.RoleToResponse(&role))
}

func (h *RoleHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}

	rows, err := h.repos.Roles.List(c.Request.Context(), middleware.Session(c), page)
	if err != nil {
		httperr.Store(c, err, "role")
		return
	}

	httpresp.List(c, convertAll(rows, converter.RoleToResponse))
}

func (h *RoleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	role, err := h.repos.Roles.FindByID(c.Request.Context(), middleware.Session(c), id)
	if err != nil {
		httperr.Store(c, err, "role")
		return
	}

	httpresp.OK(c, converter.RoleToResponse(role))
}
