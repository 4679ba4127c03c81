package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/matcha-inventory/internal/config"
	"github.com/BruksfildServices01/matcha-inventory/internal/models"
)

// OpenAudit connects the Postgres database holding the audit trail. It
// returns nil when no audit database is configured.
func OpenAudit(cfg *config.Config) (*gorm.DB, error) {
	if cfg.AuditDatabaseURL == "" {
		return nil, nil
	}

	db, err := gorm.Open(postgres.Open(cfg.AuditDatabaseURL), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect audit database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		return nil, fmt.Errorf("migrate audit database: %w", err)
	}

	return db, nil
}
