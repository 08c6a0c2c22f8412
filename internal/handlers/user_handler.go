package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barberian-api/internal/dto"
	"github.com/BruksfildServices01/barberian-api/internal/httperr"
	"github.com/BruksfildServices01/barberian-api/internal/httpresp"
	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberian-api/internal/middleware"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

type UserHandler struct {
	repos      *repository.Repositories
	embed      embedder
	bcryptCost int
}

func NewUserHandler(repos *repository.Repositories, bcryptCost int) *UserHandler {
	return &UserHandler{
		repos:      repos,
		embed:      embedder{repos: repos},
		bcryptCost: bcryptCost,
	}
}

// Create stores a bcrypt hash of the password; the plain text is never
// persisted or echoed. The email arrives already normalized by the request
// decoder.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		httperr.Unprocessable(c, map[string]string{"password": "must be at most 72 bytes"})
		return
	}
	if err != nil {
		_ = c.Error(fmt.Errorf("hash password: %w", err))
		httperr.Internal(c, "password_hash_failed", "Could not hash the password.")
		return
	}

	ctx, db := c.Request.Context(), middleware.Session(c)

	user := models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		RoleID:       req.RoleID,
	}
	if err := h.repos.Users.Create(ctx, db, &user); err != nil {
		httperr.Store(c, err, "user")
		return
	}

	out, err := one(ctx, db, &user, h.embed.users)
	if err != nil {
		httperr.Store(c, err, "user")
		return
	}
	httpresp.Created(c, out)
}

func (h *UserHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), middleware.Session(c)

	rows, err := h.repos.Users.List(ctx, db, page)
	if err != nil {
		httperr.Store(c, err, "user")
		return
	}

	out, err := h.embed.users(ctx, db, rows)
	if err != nil {
		httperr.Store(c, err, "user")
		return
	}
	httpresp.List(c, out)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), middleware.Session(c)

	user, err := h.repos.Users.FindByID(ctx, db, id)
	if err != nil {
		httperr.Store(c, err, "user")
		return
	}

	out, err := one(ctx, db, user, h.embed.users)
	if err != nil {
		httperr.Store(c, err, "user")
		return
	}
	httpresp.OK(c, out)
}
