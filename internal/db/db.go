package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barberian-api/internal/config"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

// Open connects to the configured store and, unless disabled, migrates the
// schema. The caller owns the handle and must Close it on shutdown.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	// prepared statement cache on postgres only
	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: cfg.DBDriver == config.DriverPostgres,
		Logger:      newGormLogger(log, logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	log.Info("database connected",
		zap.String("driver", cfg.DBDriver),
		zap.Int("max_open_conns", cfg.DBMaxOpenConns),
	)

	if cfg.DBAutoMigrate {
		if err := Migrate(db); err != nil {
			_ = Close(db)
			return nil, err
		}
		log.Info("database migrated", zap.Int("tables", len(models.All())))
	}

	return db, nil
}

// newGormLogger routes gorm's SQL and slow query lines through zap.
func newGormLogger(log *zap.Logger, level logger.LogLevel) logger.Interface {
	return logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DBUrl), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DBUrl), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
