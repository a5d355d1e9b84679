package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// Envelope wraps an event with metadata for transport
type Envelope struct {
	ID            string           `json:"id"`
	EventType     string           `json:"event_type"`
	AggregateType string           `json:"aggregate_type"`
	AggregateID   string           `json:"aggregate_id"`
	OccurredAt    time.Time        `json:"occurred_at"`
	Data          interfaces.Event `json:"data"`
}

// NewEnvelope builds the transport envelope for an event.
func NewEnvelope(event interfaces.Event) Envelope {
	return Envelope{
		ID:            event.EventID(),
		EventType:     event.EventType(),
		AggregateType: event.AggregateType(),
		AggregateID:   event.AggregateID(),
		OccurredAt:    time.Unix(0, event.Timestamp()).UTC(),
		Data:          event,
	}
}

// Marshal encodes an event envelope as JSON.
func Marshal(event interfaces.Event) ([]byte, error) {
	data, err := json.Marshal(NewEnvelope(event))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return data, nil
}
