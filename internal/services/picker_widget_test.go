package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/rangepicker/internal/models"
)

func TestPickerWidgetMountAndUnmountReleaseListener(t *testing.T) {
	engine, _ := newTestEngine(t, models.PickerOptions{})
	widget := NewPickerWidget(engine)
	hub := NewInteractionHub()

	widget.Mount(hub, nil)
	widget.Mount(hub, nil)
	if hub.Subscribers() != 1 {
		t.Fatalf("expected one listener after double mount, got %d", hub.Subscribers())
	}

	widget.Unmount()
	widget.Unmount()
	if hub.Subscribers() != 0 {
		t.Fatalf("expected listener to be released, got %d", hub.Subscribers())
	}
	if widget.Mounted() {
		t.Fatal("expected widget to report unmounted")
	}
}

func TestPickerWidgetUnmountWhileOpenReleasesListener(t *testing.T) {
	engine, _ := newTestEngine(t, models.PickerOptions{})
	widget := NewPickerWidget(engine)
	hub := NewInteractionHub()
	widget.Mount(hub, nil)

	if _, err := widget.Toggle(); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	widget.Unmount()

	if hub.Subscribers() != 0 {
		t.Fatalf("expected no listeners after unmount, got %d", hub.Subscribers())
	}
	if hub.Publish() != 0 {
		t.Fatal("expected publish to reach nobody")
	}
}

func TestPickerWidgetOutsideInteractionDismisses(t *testing.T) {
	engine, events := newTestEngine(t, models.PickerOptions{})
	widget := NewPickerWidget(engine)
	hub := NewInteractionHub()
	widget.Mount(hub, nil)

	widget.Toggle()
	engine.ClickDate(day("2024-06-01"))
	engine.ClickDate(day("2024-06-02"))

	if hub.Publish() != 1 {
		t.Fatal("expected the widget listener to be notified")
	}
	if engine.Editing() {
		t.Fatal("expected outside interaction to close the picker")
	}
	if len(events.changes) != 0 {
		t.Fatal("expected outside interaction not to commit")
	}
}

func TestPickerWidgetToggle(t *testing.T) {
	engine, _ := newTestEngine(t, models.PickerOptions{})
	widget := NewPickerWidget(engine)

	if _, err := widget.Toggle(); !errors.Is(err, ErrWidgetNotMounted) {
		t.Fatalf("expected ErrWidgetNotMounted, got %v", err)
	}

	widget.Mount(nil, nil)
	if applied, _ := widget.Toggle(); !applied || !engine.Editing() {
		t.Fatal("expected toggle to open")
	}
	if applied, _ := widget.Toggle(); !applied || engine.Editing() {
		t.Fatal("expected toggle to close")
	}
	if got := widget.ButtonLabel(); got != "Start Date - End Date" {
		t.Fatalf("unexpected button label %q", got)
	}
}

func TestPickerWidgetAutoOpenHasNoButton(t *testing.T) {
	engine, _ := newTestEngine(t, models.PickerOptions{AutoOpen: true})
	widget := NewPickerWidget(engine)
	widget.Mount(nil, nil)

	if applied, err := widget.Toggle(); applied || err != nil {
		t.Fatalf("expected toggle to be ignored, applied=%v err=%v", applied, err)
	}
	if widget.ButtonLabel() != "" {
		t.Fatal("expected no button label for auto-open")
	}
	if !engine.Editing() {
		t.Fatal("expected auto-open picker to stay open")
	}
}

func TestInteractionHubUnsubscribeIsIdempotent(t *testing.T) {
	hub := NewInteractionHub()
	calls := 0
	release := hub.Subscribe(func() { calls++ })
	other := hub.Subscribe(func() { calls += 10 })

	release()
	release()
	if hub.Subscribers() != 1 {
		t.Fatalf("expected one remaining subscriber, got %d", hub.Subscribers())
	}
	hub.Publish()
	if calls != 10 {
		t.Fatalf("expected only the remaining subscriber to run, got %d", calls)
	}
	other()
}
