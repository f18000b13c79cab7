// Package db opens the optional local SQL ledger.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/cartoes/internal/config"
	"github.com/diewo77/cartoes/internal/models"
)

// Open connects using the configured driver. Postgres gets a few retries to
// leave time for the container to start.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	switch cfg.Driver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.DSN), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.DSN, err)
		}
		return db, nil
	case "postgres":
		retries := max(cfg.Retries, 1)
		var db *gorm.DB
		var err error
		for i := 0; i < retries; i++ {
			db, err = gorm.Open(postgres.Open(cfg.DSN), gcfg)
			if err == nil {
				return db, nil
			}
			log.Printf("database connection attempt %d/%d failed: %v", i+1, retries, err)
			time.Sleep(2 * time.Second)
		}
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate creates or updates the ledger_rows table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.LedgerRecord{}); err != nil {
		return fmt.Errorf("automigrate ledger_rows: %w", err)
	}
	return nil
}
