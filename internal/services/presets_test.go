package services

import (
	"errors"
	"testing"
	"time"
)

func TestPresetCatalogRanges(t *testing.T) {
	today := NewCalendarDate(2024, time.June, 15)

	tests := []struct {
		label string
		start string
		end   string
	}{
		{label: PresetToday, start: "2024-06-15", end: "2024-06-15"},
		{label: PresetYesterday, start: "2024-06-14", end: "2024-06-15"},
		{label: PresetPast7Days, start: "2024-06-08", end: "2024-06-15"},
		{label: PresetPast30Days, start: "2024-05-10", end: "2024-06-15"},
		{label: PresetThisMonth, start: "2024-06-01", end: "2024-06-15"},
		{label: PresetThisYear, start: "2024-01-01", end: "2024-06-15"},
	}

	catalog := PresetCatalog()
	if len(catalog) != len(tests) {
		t.Fatalf("expected %d presets, got %d", len(tests), len(catalog))
	}
	for index, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if catalog[index].Label != tt.label {
				t.Fatalf("expected preset %d to be %q, got %q", index, tt.label, catalog[index].Label)
			}
			got := catalog[index].Range(today)
			if got.Start.String() != tt.start || got.End.String() != tt.end {
				t.Fatalf("expected %s..%s, got %s..%s", tt.start, tt.end, got.Start, got.End)
			}
		})
	}
}

// Yesterday ends today rather than yesterday. This locks the shipped mapping.
func TestPresetYesterdaySpansTwoDays(t *testing.T) {
	today := NewCalendarDate(2024, time.March, 1)

	got, err := ResolvePreset(PresetYesterday, today)
	if err != nil {
		t.Fatalf("resolve preset: %v", err)
	}
	if got.Start.String() != "2024-02-29" || got.End.String() != "2024-03-01" {
		t.Fatalf("expected 2024-02-29..2024-03-01, got %s..%s", got.Start, got.End)
	}
}

// Past 7 Days covers eight days and Past 30 Days covers 37. This locks the shipped mapping.
func TestPresetPastRangesUseShippedOffsets(t *testing.T) {
	today := NewCalendarDate(2024, time.March, 1)

	tests := []struct {
		label string
		start string
	}{
		{label: PresetPast7Days, start: "2024-02-23"},
		{label: PresetPast30Days, start: "2024-01-25"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ResolvePreset(tt.label, today)
			if err != nil {
				t.Fatalf("resolve preset: %v", err)
			}
			if got.Start.String() != tt.start || got.End.String() != "2024-03-01" {
				t.Fatalf("expected %s..2024-03-01, got %s..%s", tt.start, got.Start, got.End)
			}
		})
	}
}

func TestPresetRangesDoNotDependOnEvaluationOrder(t *testing.T) {
	today := NewCalendarDate(2024, time.June, 15)

	first, err := ResolvePreset(PresetThisMonth, today)
	if err != nil {
		t.Fatalf("resolve preset: %v", err)
	}
	for _, preset := range PresetCatalog() {
		preset.Range(today)
	}
	second, err := ResolvePreset(PresetThisMonth, today)
	if err != nil {
		t.Fatalf("resolve preset: %v", err)
	}
	if first != second {
		t.Fatalf("expected stable range, got %+v then %+v", first, second)
	}
	if today != NewCalendarDate(2024, time.June, 15) {
		t.Fatalf("expected reference day to stay unchanged, got %s", today)
	}
}

func TestResolvePresetMatchesCaseInsensitively(t *testing.T) {
	today := NewCalendarDate(2024, time.June, 15)

	if _, err := ResolvePreset("  past 7 days ", today); err != nil {
		t.Fatalf("expected label match, got %v", err)
	}
	if _, err := ResolvePreset("Last Quarter", today); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestPresetCatalogReturnsCopy(t *testing.T) {
	catalog := PresetCatalog()
	catalog[0].Label = "Changed"
	if PresetCatalog()[0].Label != PresetToday {
		t.Fatal("expected catalog mutation not to leak")
	}
}
