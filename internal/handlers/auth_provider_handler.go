package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberian-api/internal/converter"
	"github.com/BruksfildServices01/barberian-api/internal/domain/identity"
	"github.com/BruksfildServices01/barberian-api/internal/dto"
	"github.com/BruksfildServices01/barberian-api/internal/httperr"
	"github.com/BruksfildServices01/barberian-api/internal/httpresp"
	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberian-api/internal/middleware"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

// AuthProviderHandler stores provider records only; no login flow reads them.
type AuthProviderHandler struct {
	repos *repository.Repositories
}

func NewAuthProviderHandler(repos *repository.Repositories) *AuthProviderHandler {
	return &AuthProviderHandler{repos: repos}
}

func (h *AuthProviderHandler) Create(c *gin.Context) {
	var req dto.CreateAuthProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	kind, err := identity.ParseProviderKind(req.Provider)
	if err != nil {
		httperr.Unprocessable(c, map[string]string{"provider": "must be one of: local google"})
		return
	}

	provider := models.AuthProvider{
		Provider:         kind,
		ProviderIDGoogle: req.ProviderIDGoogle,
		Token:            req.Token,
	}
	if err := h.repos.AuthProviders.Create(c.Request.Context(), middleware.Session(c), &provider); err != nil {
		httperr.Store(c, err, "auth_provider")
		return
	}

	httpresp.Created(c, converter.AuthProviderToResponse(&provider))
}

func (h *AuthProviderHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}

	rows, err := h.repos.AuthProviders.List(c.Request.Context(), middleware.Session(c), page)
	if err != nil {
		httperr.Store(c, err, "auth_provider")
		return
	}

	httpresp.List(c, convertAll(rows, converter.AuthProviderToResponse))
}

func (h *AuthProviderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	provider, err := h.repos.AuthProviders.FindByID(c.Request.Context(), middleware.Session(c), id)
	if err != nil {
		httperr.Store(c, err, "auth_provider")
		return
	}

	httpresp.OK(c, converter.AuthProviderToResponse(provider))
}
