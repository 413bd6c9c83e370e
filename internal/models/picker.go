package models

import (
	"strings"
	"time"
)

const (
	CompareYes = "yes"
	CompareNo  = "no"
)

// PickerOptions is the construction-time configuration of a picker. Dates are
// YYYY-MM-DD literals; malformed values are treated as absent.
type PickerOptions struct {
	InitialStartDate    string   `json:"initial_start_date"`
	InitialEndDate      string   `json:"initial_end_date"`
	SelectedDates       []string `json:"selected_dates"`
	Compare             string   `json:"compare"`
	DisableFutureDates  bool     `json:"disable_future_dates"`
	EnableCompareDates  bool     `json:"enable_compare_dates"`
	AutoOpen            bool     `json:"auto_open"`
	DistinctDates       []string `json:"distinct_dates"`
	EnableDistinctDates bool     `json:"enable_distinct_dates"`
}

func (options PickerOptions) CompareRequested() bool {
	return strings.EqualFold(strings.TrimSpace(options.Compare), CompareYes)
}

type Picker struct {
	ID               uint          `gorm:"primaryKey"`
	PublicID         string        `gorm:"uniqueIndex;not null"`
	Options          PickerOptions `gorm:"serializer:json;not null"`
	CompareMode      bool          `gorm:"not null;default:false"`
	CommittedStart   string        `gorm:"not null;default:''"`
	CommittedEnd     string        `gorm:"not null;default:''"`
	CommittedCompare []string      `gorm:"serializer:json"`
	CreatedAt        time.Time     `gorm:"not null"`
	UpdatedAt        time.Time
}
