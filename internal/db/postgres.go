package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/rangepicker/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenPostgres connects to PostgreSQL. The embedded migrations are SQLite
// dialect, so the schema comes from the gorm models instead.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres dsn is required")
	}

	database, err := gorm.Open(postgres.Open(dsn), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := database.AutoMigrate(&models.Picker{}, &models.PickerChange{}); err != nil {
		return nil, fmt.Errorf("migrate postgres schema: %w", err)
	}

	return database, nil
}
