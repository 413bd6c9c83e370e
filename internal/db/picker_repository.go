package db

import (
	"github.com/terraincognita07/rangepicker/internal/models"
	"gorm.io/gorm"
)

type PickerRepository struct {
	database *gorm.DB
}

func NewPickerRepository(database *gorm.DB) *PickerRepository {
	return &PickerRepository{database: database}
}

func (repo *PickerRepository) Create(picker *models.Picker) error {
	return repo.database.Create(picker).Error
}

func (repo *PickerRepository) FindByPublicID(publicID string) (models.Picker, bool, error) {
	picker := models.Picker{}
	result := repo.database.Where("public_id = ?", publicID).Limit(1).Find(&picker)
	if result.Error != nil {
		return models.Picker{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Picker{}, false, nil
	}
	return picker, true, nil
}

func (repo *PickerRepository) List() ([]models.Picker, error) {
	pickers := make([]models.Picker, 0)
	if err := repo.database.Order("id ASC").Find(&pickers).Error; err != nil {
		return nil, err
	}
	return pickers, nil
}

// SaveCommitted writes only the committed selection columns.
func (repo *PickerRepository) SaveCommitted(picker *models.Picker) error {
	return repo.database.Model(picker).
		Select("compare_mode", "committed_start", "committed_end", "committed_compare", "updated_at").
		Updates(picker).Error
}

// Delete removes the picker together with its change log.
func (repo *PickerRepository) Delete(pickerID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("picker_id = ?", pickerID).Delete(&models.PickerChange{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Picker{}, pickerID).Error
	})
}
