package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BaseEvent is the concrete event published by the catalog services.
type BaseEvent struct {
	ID      string                 `json:"id"`
	Type    string                 `json:"type"`
	AggType string                 `json:"aggregate_type"`
	AggID   string                 `json:"aggregate_id"`
	Time    int64                  `json:"timestamp"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

// NewAggregateEvent creates an event named "<aggregateType>.<action>".
func NewAggregateEvent(aggregateType, action string, aggregateID interface{}, data map[string]interface{}) *BaseEvent {
	return &BaseEvent{
		ID:      uuid.NewString(),
		Type:    aggregateType + "." + action,
		AggType: aggregateType,
		AggID:   fmt.Sprint(aggregateID),
		Time:    time.Now().UnixNano(),
		Data:    data,
	}
}

// EventID returns the unique id of the event
func (e *BaseEvent) EventID() string {
	return e.ID
}

// EventType returns the type of the event
func (e *BaseEvent) EventType() string {
	return e.Type
}

// AggregateType returns the kind of aggregate that produced the event
func (e *BaseEvent) AggregateType() string {
	return e.AggType
}

// AggregateID returns the ID of the aggregate that produced the event
func (e *BaseEvent) AggregateID() string {
	return e.AggID
}

// Timestamp returns when the event occurred
func (e *BaseEvent) Timestamp() int64 {
	return e.Time
}
