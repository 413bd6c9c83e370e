package db

import (
	"time"

	"github.com/terraincognita07/rangepicker/internal/models"
	"gorm.io/gorm"
)

type PickerChangeRepository struct {
	database *gorm.DB
}

func NewPickerChangeRepository(database *gorm.DB) *PickerChangeRepository {
	return &PickerChangeRepository{database: database}
}

func (repo *PickerChangeRepository) Create(change *models.PickerChange) error {
	return repo.database.Create(change).Error
}

// ListByPickerRange returns changes oldest first; nil bounds are open. toEnd is exclusive.
func (repo *PickerChangeRepository) ListByPickerRange(pickerID uint, fromStart *time.Time, toEnd *time.Time) ([]models.PickerChange, error) {
	query := repo.database.Model(&models.PickerChange{}).Where("picker_id = ?", pickerID)
	if fromStart != nil {
		query = query.Where("created_at >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("created_at < ?", *toEnd)
	}

	changes := make([]models.PickerChange, 0)
	if err := query.Order("created_at ASC, id ASC").Find(&changes).Error; err != nil {
		return nil, err
	}
	return changes, nil
}

func (repo *PickerChangeRepository) CountByPicker(pickerID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.PickerChange{}).Where("picker_id = ?", pickerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
