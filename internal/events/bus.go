package events

import (
	"log/slog"
	"sync"
)

// Handler consumes a published event. Handlers run synchronously on
// the publisher's goroutine, in subscription order.
type Handler func(Event)

// Bus is an in-process publish/subscribe dispatcher keyed by topic.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Topic][]Handler
	log      *slog.Logger
	closed   bool
}

// NewBus creates an empty bus.
func NewBus(log *slog.Logger) *Bus {
	if log == nil {
		log = slog.Default()
	}
	return &Bus{
		handlers: make(map[Topic][]Handler),
		log:      log,
	}
}

// Subscribe registers a handler for one topic. Subscribing after Close
// is a no-op.
func (b *Bus) Subscribe(topic Topic, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish delivers the event to every handler subscribed to its topic.
func (b *Bus) Publish(evt Event) {
	if evt == nil {
		return
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	handlers := b.handlers[evt.EventTopic()]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.log.Debug("no handlers for event", "topic", evt.EventTopic())
		return
	}
	for _, h := range handlers {
		h(evt)
	}
}

// Close drops all subscriptions and rejects further publishes.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = make(map[Topic][]Handler)
}
