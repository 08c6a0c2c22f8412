package db_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/barberian-api/internal/db"
	"github.com/BruksfildServices01/barberian-api/internal/models"
	"github.com/BruksfildServices01/barberian-api/internal/testutil"
)

func TestOpenMigratesEveryTable(t *testing.T) {
	conn := testutil.DB(t)

	for _, m := range models.All() {
		assert.True(t, conn.Migrator().HasTable(m), "%T", m)
	}
	assert.True(t, conn.Migrator().HasTable("staff"))
	assert.True(t, conn.Migrator().HasTable("cities"))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := testutil.Config()
	cfg.DBDriver = "oracle"

	_, err := db.Open(cfg, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestSQLLogsGoThroughZap(t *testing.T) {
	cfg := testutil.Config()
	cfg.Env = "development"

	core, logs := observer.New(zapcore.InfoLevel)
	conn, err := db.Open(cfg, zap.New(core))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(conn) })

	require.NoError(t, conn.Exec("SELECT 1").Error)

	sqlLines := logs.FilterLoggerName("gorm").All()
	require.NotEmpty(t, sqlLines)
	for _, entry := range sqlLines {
		assert.False(t, strings.Contains(entry.Message, "\x1b["), "colored line: %q", entry.Message)
	}
	assert.NotEmpty(t, logs.FilterMessageSnippet("SELECT 1").All())
}
