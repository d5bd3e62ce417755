// Package store opens the database and runs migrations and seed data.
// The default DSN is an in-memory sqlite database so the server runs with
// zero external services; pointing DATABASE_URL at postgres swaps the
// driver without touching the repositories.
package store

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AGASocial/bottcierge/internal/models"
)

func Open(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = postgres.Open(dsn)
	} else {
		dial = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Venue{},
		&models.MenuCategory{},
		&models.Product{},
		&models.Table{},
		&models.Order{},
		&models.Staff{},
		&models.User{},
		&models.RefreshToken{},
		&models.Payment{},
		&models.ServiceRequest{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
