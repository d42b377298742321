// ABOUTME: In-process event bus for progress change notifications.
// ABOUTME: Best-effort delivery; slow subscribers drop events rather than block writers.
package progress

import (
	"sync"

	"github.com/google/uuid"
)

// Event announces that a goal's progress changed: a new day was logged or
// the goal's logs were cleared. Day holds the logged day key, or is empty
// for a clear.
type Event struct {
	GoalID uuid.UUID
	Day    string
}

// subscriberBuffer is the channel capacity handed to each subscriber.
const subscriberBuffer = 16

// Bus is a process-wide publish/subscribe channel for progress events.
// Delivery is best-effort: if a subscriber's buffer is full the event is
// dropped for that subscriber. Events for the same goal are published in
// the order the underlying ledger mutations committed.
type Bus struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a new subscriber and returns its event channel along
// with a cancel function. Cancel must be called to release the subscription;
// it closes the channel.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers an event to all current subscribers without blocking.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
			// Subscriber buffer full; drop rather than block the writer.
		}
	}
}
