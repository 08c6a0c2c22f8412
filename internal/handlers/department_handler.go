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

type DepartmentHandler struct {
	repos *repository.Repositories
}

func NewDepartmentHandler(repos *repository.Repositories) *DepartmentHandler {
	return &DepartmentHandler{repos: repos}
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	department := models.Department{Name: req.Name}
	if err := h.repos.Departments.Create(c.Request.Context(), middleware.Session(c), &department); err != nil {
		httperr.Store(c, err, "department")
		return
	}

	httpresp.Created(c, converter.DepartmentToResponse(&department))
}

func (h *DepartmentHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}

	rows, err := h.repos.Departments.List(c.Request.Context(), middleware.Session(c), page)
	if err != nil {
		httperr.Store(c, err, "department")
		return
	}

	httpresp.List(c, convertAll(rows, converter.DepartmentToResponse))
}

func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	department, err := h.repos.Departments.FindByID(c.Request.Context(), middleware.Session(c), id)
	if err != nil {
		httperr.Store(c, err, "department")
		return
	}

	httpresp.OK(c, converter.DepartmentToResponse(department))
}
