package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/rangepicker/internal/models"
)

var ChangeLogHeaders = []string{
	"Recorded At",
	"Kind",
	"Mode",
	"Start",
	"End",
	"Compare Dates",
}

type ChangeLogEntry struct {
	RecordedAt   string   `json:"recorded_at"`
	Kind         string   `json:"kind"`
	CompareMode  bool     `json:"compare_mode"`
	Start        string   `json:"start,omitempty"`
	End          string   `json:"end,omitempty"`
	CompareDates []string `json:"compare_dates"`
}

type ChangeLogSummary struct {
	TotalEntries int
	Confirms     int
	Cancels      int
	From         string
	To           string
}

func BuildChangeLogEntries(changes []models.PickerChange, location *time.Location) []ChangeLogEntry {
	entries := make([]ChangeLogEntry, 0, len(changes))
	for _, change := range changes {
		compareDates := change.CompareDates
		if compareDates == nil {
			compareDates = []string{}
		}
		entries = append(entries, ChangeLogEntry{
			RecordedAt:   change.CreatedAt.In(location).Format(time.RFC3339),
			Kind:         change.Kind,
			CompareMode:  change.CompareMode,
			Start:        change.StartDate,
			End:          change.EndDate,
			CompareDates: compareDates,
		})
	}
	return entries
}

// ChangeLogRow flattens an entry in ChangeLogHeaders order.
func ChangeLogRow(entry ChangeLogEntry) []string {
	mode := string(ModeRange)
	if entry.CompareMode {
		mode = string(ModeCompare)
	}
	return []string{
		entry.RecordedAt,
		entry.Kind,
		mode,
		entry.Start,
		entry.End,
		strings.Join(entry.CompareDates, "; "),
	}
}

func SummarizeChangeLog(changes []models.PickerChange, location *time.Location) ChangeLogSummary {
	summary := ChangeLogSummary{TotalEntries: len(changes)}
	for _, change := range changes {
		switch change.Kind {
		case models.ChangeKindConfirm:
			summary.Confirms++
		case models.ChangeKindCancel:
			summary.Cancels++
		}
	}
	if len(changes) > 0 {
		summary.From = DateAtLocation(changes[0].CreatedAt, location).Format(isoDayLayout)
		summary.To = DateAtLocation(changes[len(changes)-1].CreatedAt, location).Format(isoDayLayout)
	}
	return summary
}
