package domain

import (
	"slices"
	"sync"
)

// EventBuffer collects events raised on an aggregate until the host drains
// them. The zero value is ready to use.
type EventBuffer struct {
	mu     sync.Mutex
	events []Event
}

func (b *EventBuffer) Record(e Event) {
	if e == nil {
		return
	}
	b.mu.Lock()
	b.events = append(b.events, e)
	b.mu.Unlock()
}

// Peek returns a snapshot without clearing the buffer.
func (b *EventBuffer) Peek() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.events)
}

// Pull returns buffered events and clears the buffer.
func (b *EventBuffer) Pull() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.events
	b.events = nil
	return out
}

func (b *EventBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}
