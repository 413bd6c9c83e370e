package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/terraincognita07/rangepicker/internal/models"
	"github.com/terraincognita07/rangepicker/internal/security"
)

var (
	ErrPickerNotFound = errors.New("picker not found")
	// ErrCommitNotSaved means the committed selection could not be persisted;
	// the picker is left exactly as it was before the confirm.
	ErrCommitNotSaved = errors.New("committed selection not saved")
)

type PickerRepository interface {
	Create(picker *models.Picker) error
	FindByPublicID(publicID string) (models.Picker, bool, error)
	SaveCommitted(picker *models.Picker) error
	Delete(pickerID uint) error
}

type PickerChangeRepository interface {
	Create(change *models.PickerChange) error
	ListByPickerRange(pickerID uint, fromStart *time.Time, toEnd *time.Time) ([]models.PickerChange, error)
}

// PickerSnapshot is the externally visible state of one picker.
type PickerSnapshot struct {
	ID          string
	Options     models.PickerOptions
	Committed   SelectionState
	Draft       SelectionState
	Summary     string
	ButtonLabel string
	Editing     bool
	CanConfirm  bool
	AlignLeft   bool
}

// ActionResult reports whether an event changed anything. Rejected events are
// not errors.
type ActionResult struct {
	Applied  bool
	Snapshot PickerSnapshot
}

type pickerSession struct {
	mu       sync.Mutex
	record   models.Picker
	widget   *PickerWidget
	hub      *InteractionHub
	lastUsed time.Time
	// hookErr carries a persistence failure out of the change callbacks.
	hookErr error
}

// PickerService hosts independent picker instances. Each instance's events are
// serialized by its own session lock; instances share no state.
type PickerService struct {
	pickers  PickerRepository
	changes  PickerChangeRepository
	now      func() time.Time
	location *time.Location

	mu       sync.Mutex
	sessions map[string]*pickerSession
}

func NewPickerService(pickers PickerRepository, changes PickerChangeRepository, now func() time.Time, location *time.Location) *PickerService {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.Local
	}
	return &PickerService{
		pickers:  pickers,
		changes:  changes,
		now:      now,
		location: location,
		sessions: make(map[string]*pickerSession),
	}
}

func (service *PickerService) Today() CalendarDate {
	return CalendarDateOf(service.now(), service.location)
}

// Create persists a new picker seeded from options and mounts its session.
func (service *PickerService) Create(options models.PickerOptions) (PickerSnapshot, error) {
	publicID, err := security.NewPickerID()
	if err != nil {
		return PickerSnapshot{}, fmt.Errorf("generate picker id: %w", err)
	}

	seed := seedCommittedState(options)
	record := models.Picker{
		PublicID:  publicID,
		Options:   options,
		CreatedAt: service.now().UTC(),
	}
	applyCommittedToRecord(&record, seed)
	if err := service.pickers.Create(&record); err != nil {
		return PickerSnapshot{}, fmt.Errorf("create picker: %w", err)
	}

	session, err := service.mountSession(record)
	if err != nil {
		return PickerSnapshot{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return snapshotOf(session), nil
}

func (service *PickerService) Snapshot(publicID string) (PickerSnapshot, error) {
	var snapshot PickerSnapshot
	err := service.withSession(publicID, func(session *pickerSession) error {
		snapshot = snapshotOf(session)
		return nil
	})
	return snapshot, err
}

func (service *PickerService) View(publicID string) (CalendarView, error) {
	var view CalendarView
	err := service.withSession(publicID, func(session *pickerSession) error {
		view = session.widget.Engine().View()
		return nil
	})
	return view, err
}

func (service *PickerService) Toggle(publicID string) (ActionResult, error) {
	return service.apply(publicID, func(widget *PickerWidget) (bool, error) {
		return widget.Toggle()
	})
}

func (service *PickerService) Open(publicID string) (ActionResult, error) {
	return service.apply(publicID, func(widget *PickerWidget) (bool, error) {
		return widget.Engine().Open(), nil
	})
}

// Click takes the raw cell value; a malformed literal is an absent cell and is ignored.
func (service *PickerService) Click(publicID string, rawDate string) (ActionResult, error) {
	date, _ := ParseCalendarDate(rawDate)
	return service.apply(publicID, func(widget *PickerWidget) (bool, error) {
		return widget.Engine().ClickDate(date), nil
	})
}

func (service *PickerService) ApplyPreset(publicID string, label string) (ActionResult, error) {
	return service.apply(publicID, func(widget *PickerWidget) (bool, error) {
		return widget.Engine().ApplyPreset(label)
	})
}

func (service *PickerService) ToggleMode(publicID string) (ActionResult, error) {
	return service.apply(publicID, func(widget *PickerWidget) (bool, error) {
		return widget.Engine().ToggleMode(), nil
	})
}

func (service *PickerService) Confirm(publicID string) (ActionResult, error) {
	return service.apply(publicID, func(widget *PickerWidget) (bool, error) {
		return widget.Engine().Confirm(), nil
	})
}

func (service *PickerService) Cancel(publicID string) (ActionResult, error) {
	return service.apply(publicID, func(widget *PickerWidget) (bool, error) {
		return widget.Engine().Cancel(), nil
	})
}

// ReportOutsideInteraction forwards a click outside the widget to its listener.
func (service *PickerService) ReportOutsideInteraction(publicID string) (ActionResult, error) {
	var applied bool
	var snapshot PickerSnapshot
	err := service.withSession(publicID, func(session *pickerSession) error {
		wasEditing := session.widget.Engine().Editing()
		session.hub.Publish()
		applied = wasEditing && !session.widget.Engine().Editing()
		snapshot = snapshotOf(session)
		return nil
	})
	return ActionResult{Applied: applied, Snapshot: snapshot}, err
}

func (service *PickerService) Navigate(publicID string, offset int) (CalendarView, error) {
	var view CalendarView
	err := service.withSession(publicID, func(session *pickerSession) error {
		session.widget.Engine().Navigate(offset)
		view = session.widget.Engine().View()
		return nil
	})
	return view, err
}

func (service *PickerService) JumpToMonth(publicID string, anchor MonthAnchor) (CalendarView, error) {
	var view CalendarView
	err := service.withSession(publicID, func(session *pickerSession) error {
		session.widget.Engine().JumpTo(anchor)
		view = session.widget.Engine().View()
		return nil
	})
	return view, err
}

func (service *PickerService) Align(publicID string, geometry ViewportGeometry) (ActionResult, error) {
	return service.apply(publicID, func(widget *PickerWidget) (bool, error) {
		return widget.Engine().UpdateAlignment(geometry), nil
	})
}

// Changes lists the committed change log; from and to are inclusive days.
func (service *PickerService) Changes(publicID string, from *time.Time, to *time.Time) (models.Picker, []models.PickerChange, error) {
	record, found, err := service.pickers.FindByPublicID(publicID)
	if err != nil {
		return models.Picker{}, nil, fmt.Errorf("load picker: %w", err)
	}
	if !found {
		return models.Picker{}, nil, ErrPickerNotFound
	}

	var fromStart, toEnd *time.Time
	if from != nil {
		start := DateAtLocation(*from, service.location).UTC()
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, service.location)
		end = end.UTC()
		toEnd = &end
	}

	changes, err := service.changes.ListByPickerRange(record.ID, fromStart, toEnd)
	if err != nil {
		return models.Picker{}, nil, fmt.Errorf("load picker changes: %w", err)
	}
	return record, changes, nil
}

// Delete unmounts the session, releasing its listener, and removes the picker.
func (service *PickerService) Delete(publicID string) error {
	record, found, err := service.pickers.FindByPublicID(publicID)
	if err != nil {
		return fmt.Errorf("load picker: %w", err)
	}
	if !found {
		return ErrPickerNotFound
	}

	// The record goes first so a concurrent lookup cannot remount it.
	if err := service.pickers.Delete(record.ID); err != nil {
		return fmt.Errorf("delete picker: %w", err)
	}
	service.unmountSession(publicID)
	return nil
}

// EvictIdle unmounts sessions unused for longer than ttl. Drafts of evicted
// sessions are discarded exactly as if the dropdown had been closed.
func (service *PickerService) EvictIdle(ttl time.Duration) int {
	threshold := service.now().Add(-ttl)

	service.mu.Lock()
	idle := make([]string, 0)
	for publicID, session := range service.sessions {
		session.mu.Lock()
		expired := session.lastUsed.Before(threshold)
		session.mu.Unlock()
		if expired {
			idle = append(idle, publicID)
		}
	}
	service.mu.Unlock()

	for _, publicID := range idle {
		service.unmountSession(publicID)
	}
	return len(idle)
}

// StartReaper evicts idle sessions every interval until ctx is done, then
// unmounts whatever is left.
func (service *PickerService) StartReaper(ctx context.Context, interval time.Duration, ttl time.Duration) {
	if interval <= 0 || ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				service.Close()
				return
			case <-ticker.C:
				if evicted := service.EvictIdle(ttl); evicted > 0 {
					log.Printf("picker sessions evicted: %d", evicted)
				}
			}
		}
	}()
}

func (service *PickerService) ActiveSessions() int {
	service.mu.Lock()
	defer service.mu.Unlock()
	return len(service.sessions)
}

// Close unmounts every session.
func (service *PickerService) Close() {
	service.mu.Lock()
	publicIDs := make([]string, 0, len(service.sessions))
	for publicID := range service.sessions {
		publicIDs = append(publicIDs, publicID)
	}
	service.mu.Unlock()

	for _, publicID := range publicIDs {
		service.unmountSession(publicID)
	}
}

func (service *PickerService) apply(publicID string, action func(widget *PickerWidget) (bool, error)) (ActionResult, error) {
	var result ActionResult
	err := service.withSession(publicID, func(session *pickerSession) error {
		session.hookErr = nil
		saved := session.widget.Engine().checkpoint()
		record := session.record
		applied, err := action(session.widget)
		if err != nil {
			return err
		}
		if session.hookErr != nil {
			if errors.Is(session.hookErr, ErrCommitNotSaved) {
				session.widget.Engine().rollback(saved)
				session.record = record
			}
			return session.hookErr
		}
		result = ActionResult{Applied: applied, Snapshot: snapshotOf(session)}
		return nil
	})
	return result, err
}

// withSession runs action under the session lock. A session that was evicted
// while the caller waited for its lock is never used; the lookup is retried so
// the action lands on the live session.
func (service *PickerService) withSession(publicID string, action func(session *pickerSession) error) error {
	for {
		session, err := service.session(publicID)
		if err != nil {
			return err
		}

		session.mu.Lock()
		if !session.widget.Mounted() {
			session.mu.Unlock()
			continue
		}
		session.lastUsed = service.now()
		err = action(session)
		session.mu.Unlock()
		return err
	}
}

func (service *PickerService) session(publicID string) (*pickerSession, error) {
	service.mu.Lock()
	session, ok := service.sessions[publicID]
	service.mu.Unlock()
	if ok {
		return session, nil
	}

	record, found, err := service.pickers.FindByPublicID(publicID)
	if err != nil {
		return nil, fmt.Errorf("load picker: %w", err)
	}
	if !found {
		return nil, ErrPickerNotFound
	}
	return service.mountSession(record)
}

func (service *PickerService) mountSession(record models.Picker) (*pickerSession, error) {
	session := &pickerSession{
		record:   record,
		hub:      NewInteractionHub(),
		lastUsed: service.now(),
	}

	engine, err := NewSelectionEngine(record.Options, EngineHooks{
		OnDateRangeChange: func(event ChangeEvent) {
			session.hookErr = service.recordConfirm(session, event)
		},
		OnCancel: func() {
			session.hookErr = service.recordCancel(session)
		},
	}, service.now, service.location)
	if err != nil {
		return nil, err
	}
	engine.RestoreCommitted(committedFromRecord(record))
	session.widget = NewPickerWidget(engine)

	service.mu.Lock()
	defer service.mu.Unlock()
	if existing, ok := service.sessions[record.PublicID]; ok {
		return existing, nil
	}
	session.widget.Mount(session.hub, nil)
	service.sessions[record.PublicID] = session
	return session, nil
}

func (service *PickerService) unmountSession(publicID string) {
	service.mu.Lock()
	session, ok := service.sessions[publicID]
	delete(service.sessions, publicID)
	service.mu.Unlock()
	if !ok {
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.widget.Unmount()
}

func (service *PickerService) recordConfirm(session *pickerSession, event ChangeEvent) error {
	committed := SelectionState{
		Range:   DateRange{Start: event.Start, End: event.End},
		Compare: CompareSet(event.CompareDates).Clone(),
		Mode:    ModeRange,
	}
	if event.CompareMode {
		committed.Mode = ModeCompare
	}

	applyCommittedToRecord(&session.record, committed)
	session.record.UpdatedAt = service.now().UTC()
	if err := service.pickers.SaveCommitted(&session.record); err != nil {
		log.Printf("persist committed picker %s failed: %v", session.record.PublicID, err)
		return fmt.Errorf("%w: %w", ErrCommitNotSaved, err)
	}

	change := models.PickerChange{
		PickerID:     session.record.ID,
		Kind:         models.ChangeKindConfirm,
		StartDate:    event.Start.String(),
		EndDate:      event.End.String(),
		CompareMode:  event.CompareMode,
		CompareDates: CompareSet(event.CompareDates).Strings(),
		CreatedAt:    service.now().UTC(),
	}
	if err := service.changes.Create(&change); err != nil {
		return fmt.Errorf("record picker change: %w", err)
	}
	return nil
}

func (service *PickerService) recordCancel(session *pickerSession) error {
	change := models.PickerChange{
		PickerID:     session.record.ID,
		Kind:         models.ChangeKindCancel,
		CompareDates: []string{},
		CreatedAt:    service.now().UTC(),
	}
	if err := service.changes.Create(&change); err != nil {
		return fmt.Errorf("record picker cancel: %w", err)
	}
	return nil
}

func applyCommittedToRecord(record *models.Picker, state SelectionState) {
	record.CompareMode = state.Mode == ModeCompare
	record.CommittedStart = state.Range.Start.String()
	record.CommittedEnd = state.Range.End.String()
	record.CommittedCompare = state.Compare.Strings()
}

func committedFromRecord(record models.Picker) SelectionState {
	start, _ := ParseCalendarDate(record.CommittedStart)
	end, _ := ParseCalendarDate(record.CommittedEnd)
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		end = CalendarDate{}
	}

	dates := make([]CalendarDate, 0, len(record.CommittedCompare))
	for _, raw := range record.CommittedCompare {
		if date, ok := ParseCalendarDate(raw); ok {
			dates = append(dates, date)
		}
	}

	state := SelectionState{
		Range:   DateRange{Start: start, End: end},
		Compare: NewCompareSet(dates...),
		Mode:    ModeRange,
		Cursor:  CursorStart,
	}
	if record.CompareMode {
		state.Mode = ModeCompare
	}
	return state
}

func snapshotOf(session *pickerSession) PickerSnapshot {
	engine := session.widget.Engine()
	return PickerSnapshot{
		ID:          session.record.PublicID,
		Options:     engine.Options(),
		Committed:   engine.Committed(),
		Draft:       engine.Draft(),
		Summary:     engine.Summary(),
		ButtonLabel: session.widget.ButtonLabel(),
		Editing:     engine.Editing(),
		CanConfirm:  engine.CanConfirm(),
		AlignLeft:   engine.AlignLeft(),
	}
}
