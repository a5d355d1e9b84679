package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/narwhalmedia/catalog/internal/infrastructure/events/kafka"
	"github.com/narwhalmedia/catalog/pkg/events"
)

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, kafka.NewProducerConfig("catalog-test"))
	publisher := kafka.NewPublisherWithProducer(producer, "catalog-events", zaptest.NewLogger(t))

	event := events.NewAggregateEvent("game", "created", 42, map[string]interface{}{"title": "Hades"})

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var envelope map[string]interface{}
		if err := json.Unmarshal(val, &envelope); err != nil {
			return err
		}
		if envelope["event_type"] != "game.created" {
			return errors.New("unexpected event type")
		}
		if envelope["aggregate_id"] != "42" {
			return errors.New("unexpected aggregate id")
		}
		return nil
	})

	require.NoError(t, publisher.Publish(context.Background(), event))
	require.NoError(t, publisher.Close())
}

func TestPublisher_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, kafka.NewProducerConfig("catalog-test"))
	publisher := kafka.NewPublisherWithProducer(producer, "catalog-events", zaptest.NewLogger(t))

	producer.ExpectSendMessageAndFail(errors.New("broker unavailable"))

	err := publisher.Publish(context.Background(), events.NewAggregateEvent("like", "deleted", 7, nil))
	assert.ErrorContains(t, err, "broker unavailable")
	require.NoError(t, publisher.Close())
}
