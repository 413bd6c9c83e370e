package api

import (
	"github.com/terraincognita07/rangepicker/internal/db"
	"github.com/terraincognita07/rangepicker/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	repositories := db.NewRepositories(database)
	handler.pickers = services.NewPickerService(repositories.Pickers, repositories.PickerChanges, handler.now, handler.location)
	return handler
}
