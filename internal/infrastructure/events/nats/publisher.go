package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	infraevents "github.com/narwhalmedia/catalog/internal/infrastructure/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

const publishTimeout = 5 * time.Second

// StreamPublisher is the part of jetstream.JetStream the publisher needs.
type StreamPublisher interface {
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// Publisher implements interfaces.EventPublisher using NATS JetStream
type Publisher struct {
	js      StreamPublisher
	logger  *zap.Logger
	cleanup func()
}

// NewPublisher creates a new NATS event publisher. cleanup, when set, runs on Close.
func NewPublisher(js StreamPublisher, logger *zap.Logger, cleanup func()) *Publisher {
	return &Publisher{
		js:      js,
		logger:  logger.Named("publisher"),
		cleanup: cleanup,
	}
}

// Publish sends the event to catalog.<aggregate>.<action>, deduplicated by event id.
func (p *Publisher) Publish(ctx context.Context, event interfaces.Event) error {
	subject := Subject(event)

	data, err := infraevents.Marshal(event)
	if err != nil {
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	ack, err := p.js.Publish(pubCtx, subject, data, jetstream.WithMsgID(event.EventID()))
	if err != nil {
		p.logger.Error("failed to publish event",
			zap.Error(err),
			zap.String("event_id", event.EventID()),
			zap.String("event_type", event.EventType()),
			zap.String("subject", subject),
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	fields := []zap.Field{
		zap.String("event_id", event.EventID()),
		zap.String("subject", subject),
	}
	if ack != nil {
		fields = append(fields, zap.Uint64("sequence", ack.Sequence), zap.Bool("duplicate", ack.Duplicate))
	}
	p.logger.Debug("event published", fields...)

	return nil
}

// Close drains the connection.
func (p *Publisher) Close() error {
	if p.cleanup != nil {
		p.cleanup()
	}
	return nil
}

// Subject returns the NATS subject an event is published on.
func Subject(event interfaces.Event) string {
	return SubjectPrefix + "." + event.EventType()
}
