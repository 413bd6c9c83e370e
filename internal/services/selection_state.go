package services

import (
	"sort"
	"strings"
)

type SelectionMode string

const (
	ModeRange   SelectionMode = "range"
	ModeCompare SelectionMode = "compare"
)

type Cursor string

const (
	CursorStart Cursor = "start"
	CursorEnd   Cursor = "end"
)

// DateRange holds an optional start and end. When both are set, Start <= End.
type DateRange struct {
	Start CalendarDate
	End   CalendarDate
}

func (dateRange DateRange) Complete() bool {
	return !dateRange.Start.IsZero() && !dateRange.End.IsZero()
}

// Contains reports whether date lies inside a complete range, bounds included.
func (dateRange DateRange) Contains(date CalendarDate) bool {
	if !dateRange.Complete() || date.IsZero() {
		return false
	}
	return !date.Before(dateRange.Start) && !date.After(dateRange.End)
}

// CompareSet is an ascending, duplicate-free list of days.
type CompareSet []CalendarDate

func NewCompareSet(dates ...CalendarDate) CompareSet {
	set := CompareSet{}
	for _, date := range dates {
		if date.IsZero() || set.Contains(date) {
			continue
		}
		set = append(set, date)
	}
	set.sort()
	return set
}

func (set CompareSet) Contains(date CalendarDate) bool {
	for _, existing := range set {
		if SameDay(existing, date) {
			return true
		}
	}
	return false
}

// Toggle removes date when present and inserts it in order otherwise.
func (set CompareSet) Toggle(date CalendarDate) CompareSet {
	if set.Contains(date) {
		filtered := make(CompareSet, 0, len(set))
		for _, existing := range set {
			if !SameDay(existing, date) {
				filtered = append(filtered, existing)
			}
		}
		return filtered
	}

	grown := make(CompareSet, 0, len(set)+1)
	grown = append(grown, set...)
	grown = append(grown, date)
	grown.sort()
	return grown
}

func (set CompareSet) Clone() CompareSet {
	cloned := make(CompareSet, len(set))
	copy(cloned, set)
	return cloned
}

func (set CompareSet) Strings() []string {
	values := make([]string, 0, len(set))
	for _, date := range set {
		values = append(values, date.String())
	}
	return values
}

func (set CompareSet) sort() {
	sort.Slice(set, func(i, j int) bool {
		return set[i].Before(set[j])
	})
}

// SelectionState keeps both sub-selections so toggling the mode never loses work.
type SelectionState struct {
	Range   DateRange
	Compare CompareSet
	Mode    SelectionMode
	Cursor  Cursor
}

func (state SelectionState) Clone() SelectionState {
	state.Compare = state.Compare.Clone()
	return state
}

// Confirmable: compare mode always, range mode only with both ends set.
func (state SelectionState) Confirmable() bool {
	if state.Mode == ModeCompare {
		return true
	}
	return state.Range.Complete()
}

// SummaryLabel renders the closed-widget button text.
func (state SelectionState) SummaryLabel() string {
	if state.Mode == ModeCompare {
		if len(state.Compare) == 0 {
			return "Select Dates"
		}
		labels := make([]string, 0, len(state.Compare))
		for _, date := range state.Compare {
			labels = append(labels, date.DisplayString())
		}
		return strings.Join(labels, ", ")
	}

	start := "Start Date"
	if !state.Range.Start.IsZero() {
		start = state.Range.Start.DisplayString()
	}
	end := "End Date"
	if !state.Range.End.IsZero() {
		end = state.Range.End.DisplayString()
	}
	return start + " - " + end
}
