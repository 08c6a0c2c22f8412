package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberian-api/internal/converter"
	"github.com/BruksfildServices01/barberian-api/internal/dto"
	"github.com/BruksfildServices01/barberian-api/internal/httperr"
	"github.com/BruksfildServices01/barberian-api/internal/httpresp"
	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberian-api/internal/middleware"
)

type SystemHandler struct {
	repos   *repository.Repositories
	version string
}

func NewSystemHandler(repos *repository.Repositories, version string) *SystemHandler {
	return &SystemHandler{repos: repos, version: version}
}

func (h *SystemHandler) Root(c *gin.Context) {
	httpresp.Message(c, "Welcome to Barberian DB API v2.0")
}

// Health is static; it does not touch the database.
func (h *SystemHandler) Health(c *gin.Context) {
	httpresp.OK(c, dto.HealthDTO{Status: "healthy", Version: h.version})
}

// Ready pings the database.
func (h *SystemHandler) Ready(c *gin.Context) {
	if err := ping(middleware.Session(c)); err != nil {
		_ = c.Error(err)
		httperr.Write(c, http.StatusServiceUnavailable, "database_unavailable", "Database is not reachable.")
		return
	}
	httpresp.OK(c, dto.HealthDTO{Status: "ready", Version: h.version})
}

func (h *SystemHandler) Stats(c *gin.Context) {
	stats, err := h.repos.Stats(c.Request.Context(), middleware.Session(c))
	if err != nil {
		httperr.Store(c, err, "stats")
		return
	}
	httpresp.OK(c, converter.StatsToResponse(stats))
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(db.Statement.Context)
}
