package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/rangepicker/internal/models"
)

var ErrChangeHandlerRequired = errors.New("date range change handler is required")

// ChangeEvent is the payload handed to the host on every confirm.
type ChangeEvent struct {
	Start        CalendarDate
	End          CalendarDate
	CompareMode  bool
	CompareDates []CalendarDate
}

type EngineHooks struct {
	OnDateRangeChange func(ChangeEvent)
	OnCancel          func()
}

// SelectionEngine owns the committed selection and the draft being edited.
// It is not safe for concurrent use; callers serialize events per instance.
type SelectionEngine struct {
	options   models.PickerOptions
	policy    ValidationPolicy
	hooks     EngineHooks
	now       func() time.Time
	location  *time.Location
	committed SelectionState
	draft     SelectionState
	editing   bool
	anchor    MonthAnchor
	alignLeft bool
}

func NewSelectionEngine(options models.PickerOptions, hooks EngineHooks, now func() time.Time, location *time.Location) (*SelectionEngine, error) {
	if hooks.OnDateRangeChange == nil {
		return nil, ErrChangeHandlerRequired
	}
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.Local
	}

	engine := &SelectionEngine{
		options:  options,
		policy:   NewValidationPolicy(options.DisableFutureDates, options.EnableDistinctDates, options.DistinctDates),
		hooks:    hooks,
		now:      now,
		location: location,
	}
	engine.committed = seedCommittedState(options)
	engine.draft = engine.committed.Clone()
	engine.editing = options.AutoOpen
	engine.anchor = MonthAnchorOf(engine.Today())
	return engine, nil
}

func seedCommittedState(options models.PickerOptions) SelectionState {
	state := SelectionState{
		Mode:    ModeRange,
		Cursor:  CursorStart,
		Compare: CompareSet{},
	}

	start, _ := ParseCalendarDate(options.InitialStartDate)
	end, _ := ParseCalendarDate(options.InitialEndDate)
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		end = CalendarDate{}
	}
	state.Range = DateRange{Start: start, End: end}

	if options.CompareRequested() {
		dates := make([]CalendarDate, 0, len(options.SelectedDates))
		for _, raw := range options.SelectedDates {
			if date, ok := ParseCalendarDate(raw); ok {
				dates = append(dates, date)
			}
		}
		state.Compare = NewCompareSet(dates...)
		if options.EnableCompareDates {
			state.Mode = ModeCompare
		}
	}
	return state
}

// RestoreCommitted replaces the committed state, e.g. with a persisted one,
// and resets the draft to match.
func (engine *SelectionEngine) RestoreCommitted(state SelectionState) {
	if !engine.options.EnableCompareDates {
		state.Mode = ModeRange
	}
	state.Cursor = CursorStart
	engine.committed = state.Clone()
	engine.draft = engine.committed.Clone()
}

type engineCheckpoint struct {
	committed SelectionState
	draft     SelectionState
	editing   bool
}

func (engine *SelectionEngine) checkpoint() engineCheckpoint {
	return engineCheckpoint{
		committed: engine.committed.Clone(),
		draft:     engine.draft.Clone(),
		editing:   engine.editing,
	}
}

// rollback puts back the state captured by checkpoint without notifying hooks.
func (engine *SelectionEngine) rollback(saved engineCheckpoint) {
	engine.committed = saved.committed.Clone()
	engine.draft = saved.draft.Clone()
	engine.editing = saved.editing
}

func (engine *SelectionEngine) Today() CalendarDate {
	return CalendarDateOf(engine.now(), engine.location)
}

func (engine *SelectionEngine) Options() models.PickerOptions {
	return engine.options
}

func (engine *SelectionEngine) Policy() ValidationPolicy {
	return engine.policy
}

func (engine *SelectionEngine) Editing() bool {
	return engine.editing
}

func (engine *SelectionEngine) Committed() SelectionState {
	return engine.committed.Clone()
}

func (engine *SelectionEngine) Draft() SelectionState {
	return engine.draft.Clone()
}

func (engine *SelectionEngine) Anchor() MonthAnchor {
	return engine.anchor
}

func (engine *SelectionEngine) AlignLeft() bool {
	return engine.alignLeft
}

// Summary is the closed-widget label, always built from committed state.
func (engine *SelectionEngine) Summary() string {
	return engine.committed.SummaryLabel()
}

// Open starts an editing session from the committed state. Opening an already
// open picker keeps the current draft.
func (engine *SelectionEngine) Open() bool {
	if engine.editing {
		return false
	}
	engine.draft = engine.committed.Clone()
	engine.draft.Cursor = CursorStart
	engine.editing = true
	return true
}

// Dismiss closes the dropdown after an outside interaction without committing.
// Auto-open pickers are controlled by the host and stay open.
func (engine *SelectionEngine) Dismiss() bool {
	if !engine.editing || engine.options.AutoOpen {
		return false
	}
	engine.editing = false
	return true
}

// ClickDate applies a click on a calendar cell. It reports whether the draft changed.
func (engine *SelectionEngine) ClickDate(date CalendarDate) bool {
	if !engine.editing || !engine.policy.Selectable(date, engine.Today()) {
		return false
	}

	if engine.draft.Mode == ModeCompare {
		engine.draft.Compare = engine.draft.Compare.Toggle(date)
		return true
	}

	if engine.draft.Cursor == CursorStart {
		engine.draft.Range = DateRange{Start: date}
		engine.draft.Cursor = CursorEnd
		return true
	}

	if engine.draft.Range.Start.IsZero() || date.Before(engine.draft.Range.Start) {
		engine.draft.Range.End = CalendarDate{}
	} else {
		engine.draft.Range.End = date
	}
	engine.draft.Cursor = CursorStart
	return true
}

// ApplyPreset overwrites only the draft range; it never confirms.
func (engine *SelectionEngine) ApplyPreset(label string) (bool, error) {
	dateRange, err := ResolvePreset(label, engine.Today())
	if err != nil {
		return false, err
	}
	return engine.ApplyRange(dateRange), nil
}

func (engine *SelectionEngine) ApplyRange(dateRange DateRange) bool {
	if !engine.editing {
		return false
	}
	engine.draft.Range = dateRange
	return true
}

func (engine *SelectionEngine) ToggleMode() bool {
	if !engine.editing || !engine.options.EnableCompareDates {
		return false
	}
	if engine.draft.Mode == ModeCompare {
		engine.draft.Mode = ModeRange
	} else {
		engine.draft.Mode = ModeCompare
	}
	return true
}

func (engine *SelectionEngine) CanConfirm() bool {
	return engine.editing && engine.draft.Confirmable()
}

// Confirm commits the draft and notifies the host exactly once.
func (engine *SelectionEngine) Confirm() bool {
	if !engine.CanConfirm() {
		return false
	}

	engine.committed = engine.draft.Clone()
	engine.committed.Cursor = CursorStart
	if !engine.options.AutoOpen {
		engine.editing = false
	}

	engine.hooks.OnDateRangeChange(ChangeEvent{
		Start:        engine.draft.Range.Start,
		End:          engine.draft.Range.End,
		CompareMode:  engine.draft.Mode == ModeCompare,
		CompareDates: engine.draft.Compare.Clone(),
	})
	return true
}

// Cancel discards the draft.
func (engine *SelectionEngine) Cancel() bool {
	if !engine.editing {
		return false
	}

	engine.draft = engine.committed.Clone()
	engine.draft.Cursor = CursorStart
	if !engine.options.AutoOpen {
		engine.editing = false
	}

	if engine.hooks.OnCancel != nil {
		engine.hooks.OnCancel()
	}
	return true
}

func (engine *SelectionEngine) Navigate(offset int) MonthAnchor {
	engine.anchor = engine.anchor.Shift(offset)
	return engine.anchor
}

func (engine *SelectionEngine) JumpTo(anchor MonthAnchor) {
	engine.anchor = NewMonthAnchor(anchor.Year, anchor.Month)
}

func (engine *SelectionEngine) UpdateAlignment(geometry ViewportGeometry) bool {
	engine.alignLeft = ShouldAlignLeft(geometry)
	return engine.alignLeft
}
