package services

import "time"

// CalendarCell is one rendered grid cell. Padding cells have a zero Date and
// are always disabled.
type CalendarCell struct {
	Date            CalendarDate
	DateString      string
	Day             int
	IsToday         bool
	IsSelected      bool
	IsInRange       bool
	IsCompareMarked bool
	Disabled        bool
}

type CalendarMonthView struct {
	Year       int
	Month      time.Month
	MonthLabel string
	MonthValue string
	Cells      []CalendarCell
}

type CalendarView struct {
	Anchor     MonthAnchor
	PrevMonth  string
	NextMonth  string
	Months     []CalendarMonthView
	Mode       SelectionMode
	Cursor     Cursor
	Editing    bool
	AlignLeft  bool
	CanConfirm bool
	Draft      SelectionState
}

// View renders the two visible months against the draft. Disabled uses the
// same Selectable predicate as ClickDate.
func (engine *SelectionEngine) View() CalendarView {
	today := engine.Today()
	draft := engine.draft

	months := make([]CalendarMonthView, 0, visibleMonthCount)
	for _, grid := range engine.anchor.VisibleGrids() {
		cells := make([]CalendarCell, 0, len(grid.Cells))
		for _, date := range grid.Cells {
			cells = append(cells, buildCalendarCell(date, draft, engine.policy, today))
		}
		monthStart := time.Date(grid.Year, grid.Month, 1, 0, 0, 0, 0, time.UTC)
		months = append(months, CalendarMonthView{
			Year:       grid.Year,
			Month:      grid.Month,
			MonthLabel: monthStart.Format("January 2006"),
			MonthValue: monthStart.Format("2006-01"),
			Cells:      cells,
		})
	}

	return CalendarView{
		Anchor:     engine.anchor,
		PrevMonth:  engine.anchor.Shift(-1).String(),
		NextMonth:  engine.anchor.Shift(1).String(),
		Months:     months,
		Mode:       draft.Mode,
		Cursor:     draft.Cursor,
		Editing:    engine.editing,
		AlignLeft:  engine.alignLeft,
		CanConfirm: engine.CanConfirm(),
		Draft:      draft.Clone(),
	}
}

func buildCalendarCell(date CalendarDate, draft SelectionState, policy ValidationPolicy, today CalendarDate) CalendarCell {
	cell := CalendarCell{
		Date:     date,
		Disabled: !policy.Selectable(date, today),
	}
	if date.IsZero() {
		return cell
	}

	cell.DateString = date.String()
	cell.Day = date.Day
	cell.IsToday = SameDay(date, today)
	if draft.Mode == ModeCompare {
		cell.IsCompareMarked = draft.Compare.Contains(date)
		return cell
	}
	cell.IsSelected = SameDay(date, draft.Range.Start) || SameDay(date, draft.Range.End)
	cell.IsInRange = draft.Range.Contains(date)
	return cell
}
