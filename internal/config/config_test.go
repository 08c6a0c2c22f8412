package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_VERSION", "SERVER_HOST", "SERVER_PORT", "DB_DRIVER",
		"DB_MAX_OPEN_CONNS", "BCRYPT_COST", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.Equal(t, "2.0.0", cfg.Version)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load()

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0:9100", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.False(t, cfg.DBAutoMigrate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")
	t.Setenv("EMAIL_CHECK_DOMAIN", "maybe")

	cfg := Load()

	assert.Equal(t, 5, cfg.DBMaxIdleConns)
	assert.False(t, cfg.EmailCheckDomain)
}
