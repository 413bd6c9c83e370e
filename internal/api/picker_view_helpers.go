package api

import "github.com/terraincognita07/rangepicker/internal/services"

func optionalDay(date services.CalendarDate) *string {
	if date.IsZero() {
		return nil
	}
	value := date.String()
	return &value
}

func buildSelectionPayload(state services.SelectionState) selectionPayload {
	return selectionPayload{
		Mode:         string(state.Mode),
		Cursor:       string(state.Cursor),
		Start:        optionalDay(state.Range.Start),
		End:          optionalDay(state.Range.End),
		CompareDates: state.Compare.Strings(),
	}
}

func buildPickerPayload(snapshot services.PickerSnapshot) pickerPayload {
	options := snapshot.Options
	if options.SelectedDates == nil {
		options.SelectedDates = []string{}
	}
	if options.DistinctDates == nil {
		options.DistinctDates = []string{}
	}
	return pickerPayload{
		ID:          snapshot.ID,
		Summary:     snapshot.Summary,
		ButtonLabel: snapshot.ButtonLabel,
		Editing:     snapshot.Editing,
		CanConfirm:  snapshot.CanConfirm,
		AlignLeft:   snapshot.AlignLeft,
		Committed:   buildSelectionPayload(snapshot.Committed),
		Draft:       buildSelectionPayload(snapshot.Draft),
		Options:     options,
	}
}

func buildCalendarPayload(view services.CalendarView) calendarPayload {
	months := make([]calendarMonthPayload, 0, len(view.Months))
	for _, month := range view.Months {
		cells := make([]calendarCellPayload, 0, len(month.Cells))
		for _, cell := range month.Cells {
			cells = append(cells, calendarCellPayload{
				Date:            optionalDay(cell.Date),
				Day:             cell.Day,
				IsToday:         cell.IsToday,
				IsSelected:      cell.IsSelected,
				IsInRange:       cell.IsInRange,
				IsCompareMarked: cell.IsCompareMarked,
				Disabled:        cell.Disabled,
			})
		}
		months = append(months, calendarMonthPayload{
			Label: month.MonthLabel,
			Month: month.MonthValue,
			Cells: cells,
		})
	}

	return calendarPayload{
		Month:      view.Anchor.String(),
		PrevMonth:  view.PrevMonth,
		NextMonth:  view.NextMonth,
		Mode:       string(view.Mode),
		Cursor:     string(view.Cursor),
		Editing:    view.Editing,
		AlignLeft:  view.AlignLeft,
		CanConfirm: view.CanConfirm,
		Months:     months,
	}
}
