package interfaces

import "context"

// Event represents a domain event emitted after a committed mutation.
type Event interface {
	// EventID uniquely identifies the event, used for broker side deduplication
	EventID() string

	// EventType returns "<aggregate>.<action>", e.g. "game.created"
	EventType() string

	// AggregateType returns the kind of entity that changed
	AggregateType() string

	// AggregateID returns the ID of the entity that changed
	AggregateID() string

	// Timestamp returns when the event occurred, in unix nanoseconds
	Timestamp() int64
}

// EventPublisher delivers domain events to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
