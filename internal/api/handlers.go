package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/rangepicker/internal/security"
	"github.com/terraincognita07/rangepicker/internal/services"
	"gorm.io/gorm"
)

const pickerTokenKeyPurpose = "picker-token"

type Handler struct {
	db         *gorm.DB
	signingKey []byte
	location   *time.Location
	tokenTTL   time.Duration
	now        func() time.Time
	pickers    *services.PickerService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, tokenTTL time.Duration) (*Handler, error) {
	return newHandlerWithClock(database, secret, location, tokenTTL, time.Now)
}

func newHandlerWithClock(database *gorm.DB, secret string, location *time.Location, tokenTTL time.Duration, now func() time.Time) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if location == nil {
		location = time.Local
	}
	if tokenTTL <= 0 {
		tokenTTL = defaultPickerTokenTTL
	}
	if now == nil {
		now = time.Now
	}

	signingKey, err := security.DeriveKey([]byte(secret), pickerTokenKeyPurpose)
	if err != nil {
		return nil, fmt.Errorf("derive picker token key: %w", err)
	}

	handler := &Handler{
		db:         database,
		signingKey: signingKey,
		location:   location,
		tokenTTL:   tokenTTL,
		now:        now,
	}
	return handler.withDependencies(database), nil
}

// Pickers exposes the picker service so the process can run its session reaper.
func (handler *Handler) Pickers() *services.PickerService {
	return handler.pickers
}
