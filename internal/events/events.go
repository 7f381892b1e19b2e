package events

import (
	"sync"
	"time"
)

// Event types published by the scheduling engine. Calendar consumers
// subscribe to re-render aggregate views after a mutation.
const (
	TypeLockChanged         = "calendar.lock_changed"
	TypeReservationChanged  = "reservation.changed"
	TypeReservationConflict = "reservation.slot_conflict"
)

// Event lightweight domain event
type Event struct {
	Type      string
	Date      string // ISO date the change applies to, "" when unknown
	SlotID    string // affected slot id, "" for whole-day or non-slot events
	Detail    string // action detail: locked, unlocked, created, confirmed, ...
	CreatedAt time.Time
}

// Handler reacts to an event
type Handler func(event Event)

// Bus in-process pub/sub between the stores and their consumers
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]Handler
}

// NewBus constructs an empty bus
func NewBus() *Bus {
	return &Bus{subscribers: make(map[string][]Handler)}
}

// Subscribe registers a handler for the given event type
func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type.
// Handlers run synchronously; the caller decides the concurrency model.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	for _, handler := range handlers {
		handler(event)
	}
}
