package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"uniformshop-be/internal/config"
	"uniformshop-be/internal/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// ErrUnavailable means no connection string is configured. Callers switch to
// the unavailable repository variants instead of failing at startup.
var ErrUnavailable = errors.New("database not configured")

const driverName = "postgres"

func Connect(cfg *config.Config) (*sql.DB, error) {
	return connectWithDriver(cfg, driverName)
}

func connectWithDriver(cfg *config.Config, driver string) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		logger.L().Warn("DATABASE_URL is empty, running without a data store")
		return nil, ErrUnavailable
	}

	db, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.L().Info("database connection established", zap.String("driver", driver))
	return db, nil
}
