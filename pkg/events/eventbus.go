package events

import (
	"context"
	"sync"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// HandlerFunc receives events delivered by a LocalPublisher.
type HandlerFunc func(ctx context.Context, event interfaces.Event) error

// LocalPublisher delivers events synchronously to in-process subscribers.
// It is the publisher used when no broker is configured, and it keeps the
// published events so tests can inspect them.
type LocalPublisher struct {
	mu        sync.RWMutex
	handlers  map[string][]HandlerFunc
	published []interfaces.Event
	logger    interfaces.Logger
}

// NewLocalPublisher creates a new local publisher
func NewLocalPublisher(logger interfaces.Logger) *LocalPublisher {
	return &LocalPublisher{
		handlers: make(map[string][]HandlerFunc),
		logger:   logger,
	}
}

// Subscribe registers a handler for an event type. The type "*" receives every event.
func (p *LocalPublisher) Subscribe(eventType string, handler HandlerFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[eventType] = append(p.handlers[eventType], handler)
}

// Publish records the event and runs the matching handlers in registration order.
func (p *LocalPublisher) Publish(ctx context.Context, event interfaces.Event) error {
	p.mu.Lock()
	p.published = append(p.published, event)
	handlers := append([]HandlerFunc{}, p.handlers[event.EventType()]...)
	handlers = append(handlers, p.handlers["*"]...)
	p.mu.Unlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			p.logger.Error("Event handler failed",
				interfaces.String("event_type", event.EventType()),
				interfaces.String("aggregate_id", event.AggregateID()),
				interfaces.Error(err))
		}
	}
	return nil
}

// Published returns a copy of every event published so far.
func (p *LocalPublisher) Published() []interfaces.Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]interfaces.Event{}, p.published...)
}

// Types returns the event types published so far, in order.
func (p *LocalPublisher) Types() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	types := make([]string, len(p.published))
	for i, e := range p.published {
		types[i] = e.EventType()
	}
	return types
}

// Close is a no-op.
func (p *LocalPublisher) Close() error {
	return nil
}
