package services

import "time"

const visibleMonthCount = 2

// CalendarGrid is one month of cells: Leading zero-date placeholders (one per
// weekday before the 1st, Sunday first) followed by every day of the month.
type CalendarGrid struct {
	Year    int
	Month   time.Month
	Leading int
	Cells   []CalendarDate
}

func (grid CalendarGrid) DaysInMonth() int {
	return len(grid.Cells) - grid.Leading
}

// BuildCalendarGrid lays out a month. Months outside 1..12 roll into the
// neighbouring years.
func BuildCalendarGrid(year int, month time.Month) CalendarGrid {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	year, month = monthStart.Year(), monthStart.Month()

	leading := int(monthStart.Weekday())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make([]CalendarDate, leading, leading+daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, CalendarDate{Year: year, Month: month, Day: day})
	}

	return CalendarGrid{
		Year:    year,
		Month:   month,
		Leading: leading,
		Cells:   cells,
	}
}

// MonthAnchor is the left-hand month of the two-month view.
type MonthAnchor struct {
	Year  int
	Month time.Month
}

func NewMonthAnchor(year int, month time.Month) MonthAnchor {
	normalized := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return MonthAnchor{Year: normalized.Year(), Month: normalized.Month()}
}

func MonthAnchorOf(date CalendarDate) MonthAnchor {
	return NewMonthAnchor(date.Year, date.Month)
}

func (anchor MonthAnchor) Shift(offset int) MonthAnchor {
	return NewMonthAnchor(anchor.Year, anchor.Month+time.Month(offset))
}

func (anchor MonthAnchor) String() string {
	return time.Date(anchor.Year, anchor.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// ParseMonthAnchor reads a YYYY-MM value.
func ParseMonthAnchor(raw string) (MonthAnchor, bool) {
	parsed, err := time.Parse("2006-01", raw)
	if err != nil {
		return MonthAnchor{}, false
	}
	return NewMonthAnchor(parsed.Year(), parsed.Month()), true
}

func (anchor MonthAnchor) VisibleGrids() []CalendarGrid {
	grids := make([]CalendarGrid, 0, visibleMonthCount)
	for offset := 0; offset < visibleMonthCount; offset++ {
		shifted := anchor.Shift(offset)
		grids = append(grids, BuildCalendarGrid(shifted.Year, shifted.Month))
	}
	return grids
}
