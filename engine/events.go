package engine

import (
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/physics"
)

// EventType identifies a session event
type EventType int

const (
	// EventBounce fires after a step in which the ball touched a wall.
	// Contact carries the axes that reflected
	EventBounce EventType = iota
	// EventHit fires after a click landed on the ball.
	// Score carries the new total
	EventHit
)

// String returns human-readable event name
func (t EventType) String() string {
	switch t {
	case EventBounce:
		return "Bounce"
	case EventHit:
		return "Hit"
	default:
		return "Unknown"
	}
}

// Event is delivered to handlers after the session lock is released
type Event struct {
	Type     EventType
	Frame    uint64
	Position core.Point2D
	Contact  physics.Contact
	Score    int
}

// EventHandler processes specific event types
type EventHandler interface {
	// HandleEvent processes a single event, called synchronously on the goroutine that produced it
	HandleEvent(event Event)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// HandlerFunc adapts a plain function to EventHandler
type HandlerFunc struct {
	fn    func(Event)
	types []EventType
}

// NewHandlerFunc wraps fn as a handler for the listed types
func NewHandlerFunc(fn func(Event), types ...EventType) *HandlerFunc {
	return &HandlerFunc{fn: fn, types: types}
}

func (h *HandlerFunc) HandleEvent(event Event) { h.fn(event) }

func (h *HandlerFunc) EventTypes() []EventType { return h.types }

// EventRouter dispatches events to registered handlers
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//
// Not safe for concurrent Register; register before the session runs
type EventRouter struct {
	handlers map[EventType][]EventHandler
}

// NewEventRouter creates an empty router
func NewEventRouter() *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Dispatch routes events in order; all handlers for one event run before the next
func (r *EventRouter) Dispatch(events ...Event) {
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *EventRouter) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}
