package services

import (
	"errors"
	"sync"
)

var ErrWidgetNotMounted = errors.New("picker widget is not mounted")

// InteractionSource notifies subscribers about interactions outside the
// widget. Subscribe returns the function that releases the subscription.
type InteractionSource interface {
	Subscribe(handler func()) (unsubscribe func())
}

// PickerWidget is the shell around a SelectionEngine: the open/close toggle and
// the outside-interaction listener held between Mount and Unmount.
type PickerWidget struct {
	engine *SelectionEngine

	mu          sync.Mutex
	unsubscribe func()
	mounted     bool
}

func NewPickerWidget(engine *SelectionEngine) *PickerWidget {
	return &PickerWidget{engine: engine}
}

func (widget *PickerWidget) Engine() *SelectionEngine {
	return widget.engine
}

// Mount registers the outside-interaction listener. Mounting twice is a no-op.
func (widget *PickerWidget) Mount(source InteractionSource, onOutside func()) {
	widget.mu.Lock()
	defer widget.mu.Unlock()
	if widget.mounted {
		return
	}
	widget.mounted = true
	if source == nil {
		return
	}
	if onOutside == nil {
		onOutside = func() { widget.engine.Dismiss() }
	}
	widget.unsubscribe = source.Subscribe(onOutside)
}

// Unmount releases the listener exactly once, whether or not the dropdown is open.
func (widget *PickerWidget) Unmount() {
	widget.mu.Lock()
	release := widget.unsubscribe
	widget.unsubscribe = nil
	widget.mounted = false
	widget.mu.Unlock()

	if release != nil {
		release()
	}
}

func (widget *PickerWidget) Mounted() bool {
	widget.mu.Lock()
	defer widget.mu.Unlock()
	return widget.mounted
}

// Toggle is the summary button: it opens a closed dropdown and closes an open
// one without committing. Auto-open widgets have no toggle.
func (widget *PickerWidget) Toggle() (bool, error) {
	if !widget.Mounted() {
		return false, ErrWidgetNotMounted
	}
	if widget.engine.Options().AutoOpen {
		return false, nil
	}
	if widget.engine.Editing() {
		return widget.engine.Dismiss(), nil
	}
	return widget.engine.Open(), nil
}

// ButtonLabel is the summary text, or "" for auto-open widgets that render no button.
func (widget *PickerWidget) ButtonLabel() string {
	if widget.engine.Options().AutoOpen {
		return ""
	}
	return widget.engine.Summary()
}

// InteractionHub is an in-process InteractionSource. The HTTP layer publishes
// outside-interaction reports through it.
type InteractionHub struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func()
}

func NewInteractionHub() *InteractionHub {
	return &InteractionHub{handlers: make(map[int]func())}
}

func (hub *InteractionHub) Subscribe(handler func()) func() {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	id := hub.nextID
	hub.nextID++
	hub.handlers[id] = handler

	var once sync.Once
	return func() {
		once.Do(func() {
			hub.mu.Lock()
			defer hub.mu.Unlock()
			delete(hub.handlers, id)
		})
	}
}

// Publish calls every current subscriber and reports how many were notified.
func (hub *InteractionHub) Publish() int {
	hub.mu.Lock()
	handlers := make([]func(), 0, len(hub.handlers))
	for _, handler := range hub.handlers {
		handlers = append(handlers, handler)
	}
	hub.mu.Unlock()

	for _, handler := range handlers {
		handler()
	}
	return len(handlers)
}

func (hub *InteractionHub) Subscribers() int {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return len(hub.handlers)
}
