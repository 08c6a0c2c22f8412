package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberian-api/internal/config"
	"github.com/BruksfildServices01/barberian-api/internal/db"
)

// Config returns a configuration pointing at a private in-memory sqlite
// database with foreign keys enforced.
func Config() *config.Config {
	return &config.Config{
		Env:            "test",
		Version:        "2.0.0",
		LogLevel:       "error",
		ServerHost:     "127.0.0.1",
		ServerPort:     "0",
		DBDriver:       config.DriverSQLite,
		DBUrl:          fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString()),
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
		DBAutoMigrate:  true,
		BcryptCost:     4,
		CORSOrigins:    []string{"*"},
	}
}

// DB opens and migrates a fresh database that is closed when the test ends.
func DB(t *testing.T) *gorm.DB {
	t.Helper()
	return DBWith(t, Config())
}

func DBWith(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()

	conn, err := db.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(conn) })
	return conn
}
