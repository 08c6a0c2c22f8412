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

type CustomerHandler struct {
	repos *repository.Repositories
	embed embedder
}

func NewCustomerHandler(repos *repository.Repositories) *CustomerHandler {
	return &CustomerHandler{repos: repos, embed: embedder{repos: repos}}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	ctx, db := c.Request.Context(), middleware.Session(c)

	customer := models.Customer{
		UserID:       req.UserID,
		GenreID:      req.GenreID,
		Phone:        req.Phone,
		Address:      req.Address,
		DepartmentID: req.DepartmentID,
		CityID:       req.CityID,
	}
	if err := h.repos.Customers.Create(ctx, db, &customer); err != nil {
		httperr.Store(c, err, "customer")
		return
	}

	out, err := one(ctx, db, &customer, h.embed.customers)
	if err != nil {
		httperr.Store(c, err, "customer")
		return
	}
	httpresp.Created(c, out)
}

func (h *CustomerHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), middleware.Session(c)

	rows, err := h.repos.Customers.List(ctx, db, page)
	if err != nil {
		httperr.Store(c, err, "customer")
		return
	}

	out, err := h.embed.customers(ctx, db, rows)
	if err != nil {
		httperr.Store(c, err, "customer")
		return
	}
	httpresp.List(c, out)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), middleware.Session(c)

	customer, err := h.repos.Customers.FindByID(ctx, db, id)
	if err != nil {
		httperr.Store(c, err, "customer")
		return
	}

	out, err := one(ctx, db, customer, h.embed.customers)
	if err != nil {
		httperr.Store(c, err, "customer")
		return
	}
	httpresp.OK(c, out)
}
