package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/narwhalmedia/catalog/pkg/config"
)

// SubjectPrefix is prepended to every event type published to NATS.
const SubjectPrefix = "catalog"

// Client wraps NATS and JetStream connections
type Client struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	logger *zap.Logger
}

// NewClient connects to NATS and makes sure the catalog stream exists.
func NewClient(ctx context.Context, cfg config.NATSConfig, logger *zap.Logger) (*Client, func(), error) {
	logger = logger.Named("nats")

	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	client := &Client{nc: nc, js: js, logger: logger}

	if err := client.ensureStream(ctx, cfg.StreamName); err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to initialize stream: %w", err)
	}

	cleanup := func() {
		if err := nc.Drain(); err != nil {
			logger.Error("failed to drain NATS connection", zap.Error(err))
		}
		nc.Close()
	}

	logger.Info("NATS client initialized",
		zap.String("url", cfg.URL),
		zap.String("stream", cfg.StreamName),
	)

	return client, cleanup, nil
}

func (c *Client) ensureStream(ctx context.Context, name string) error {
	stream := jetstream.StreamConfig{
		Name:         name,
		Description:  "Catalog domain events",
		Subjects:     []string{SubjectPrefix + ".>"},
		Retention:    jetstream.LimitsPolicy,
		MaxAge:       7 * 24 * time.Hour,
		MaxConsumers: -1,
		Replicas:     1,
		Storage:      jetstream.FileStorage,
		Discard:      jetstream.DiscardOld,
		Duplicates:   2 * time.Minute,
		MaxMsgs:      -1,
		MaxBytes:     -1,
	}

	if _, err := c.js.CreateOrUpdateStream(ctx, stream); err != nil {
		return fmt.Errorf("failed to create stream %s: %w", name, err)
	}
	return nil
}

// JetStream returns the JetStream context
func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

// IsConnected reports whether the underlying connection is up
func (c *Client) IsConnected() bool {
	return c.nc != nil && c.nc.IsConnected()
}
