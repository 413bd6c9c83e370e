package db

import "gorm.io/gorm"

type Repositories struct {
	Pickers       *PickerRepository
	PickerChanges *PickerChangeRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Pickers:       NewPickerRepository(database),
		PickerChanges: NewPickerChangeRepository(database),
	}
}
