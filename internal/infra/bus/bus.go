// Package bus provides the in-process reminder event bus that keeps mounted
// list views consistent with each other.
package bus

import (
	"context"
	"log/slog"
	"sync"

	"fleetdesk/internal/domain/service"
)

// subscriberBuffer bounds each subscriber channel. A consumer that stops
// draining loses events rather than blocking publishers; consumers recover on
// their next authoritative reload.
const subscriberBuffer = 16

type subscriber struct {
	name string
	ch   chan *service.ReminderEvent
}

type eventBus struct {
	mu     sync.Mutex
	subs   map[int]*subscriber
	nextID int
	closed bool
	logger *slog.Logger
}

// New creates an in-process event bus.
func New(logger *slog.Logger) service.EventBus {
	return &eventBus{
		subs:   make(map[int]*subscriber),
		logger: logger,
	}
}

func (b *eventBus) Publish(ctx context.Context, event *service.ReminderEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	for _, sub := range b.subs {
		select {
		case sub.ch <- event:
		default:
			b.logger.Warn("event bus subscriber not draining, dropping event",
				slog.String("subscriber", sub.name),
				slog.String("kind", string(event.Kind)),
			)
		}
	}
}

func (b *eventBus) Subscribe(name string) (<-chan *service.ReminderEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscriber{
		name: name,
		ch:   make(chan *service.ReminderEvent, subscriberBuffer),
	}

	id := b.nextID
	b.nextID++

	if b.closed {
		close(sub.ch)

		return sub.ch, func() {}
	}

	b.subs[id] = sub

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub.ch)
			}
		})
	}

	return sub.ch, unsubscribe
}

func (b *eventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}
