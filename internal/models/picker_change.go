package models

import "time"

const (
	ChangeKindConfirm = "confirm"
	ChangeKindCancel  = "cancel"
)

// PickerChange is one entry of a picker's change log: every confirm with its
// payload and every cancel without one.
type PickerChange struct {
	ID           uint      `gorm:"primaryKey"`
	PickerID     uint      `gorm:"not null;index"`
	Kind         string    `gorm:"not null"`
	StartDate    string    `gorm:"not null;default:''"`
	EndDate      string    `gorm:"not null;default:''"`
	CompareMode  bool      `gorm:"not null;default:false"`
	CompareDates []string  `gorm:"serializer:json"`
	CreatedAt    time.Time `gorm:"not null;index"`
}
