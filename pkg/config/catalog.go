package config

import (
	"errors"
	"fmt"
)

// CatalogConfig is the configuration for the catalog service.
type CatalogConfig struct {
	BaseConfig `koanf:",squash,flatten"`
	Catalog    CatalogSettings `koanf:"catalog"`
}

// CatalogSettings holds settings specific to the catalog service.
type CatalogSettings struct {
	Events EventsConfig `koanf:"events"`
}

// EventsConfig selects where domain events are published after commit.
type EventsConfig struct {
	Driver string      `koanf:"driver"` // none, local, nats, kafka
	NATS   NATSConfig  `koanf:"nats"`
	Kafka  KafkaConfig `koanf:"kafka"`
}

// NATSConfig configures the JetStream publisher.
type NATSConfig struct {
	URL        string `koanf:"url"`
	StreamName string `koanf:"stream_name"`
	ClientName string `koanf:"client_name"`
}

// KafkaConfig configures the sarama producer.
type KafkaConfig struct {
	Brokers []string `koanf:"brokers"`
	Topic   string   `koanf:"topic"`
}

// Validate validates the catalog service configuration.
func (c *CatalogConfig) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return err
	}

	switch c.Catalog.Events.Driver {
	case "", "none", EventsDriverLocal:
	case EventsDriverNATS:
		if c.Catalog.Events.NATS.URL == "" {
			return errors.New("nats url is required when events driver is nats")
		}
	case EventsDriverKafka:
		if len(c.Catalog.Events.Kafka.Brokers) == 0 {
			return errors.New("at least one kafka broker is required when events driver is kafka")
		}
		if c.Catalog.Events.Kafka.Topic == "" {
			return errors.New("kafka topic is required when events driver is kafka")
		}
	default:
		return fmt.Errorf("unsupported events driver: %q", c.Catalog.Events.Driver)
	}

	return nil
}

// GetDefaultCatalogConfig returns the default catalog service configuration.
func GetDefaultCatalogConfig() *CatalogConfig {
	base := GetDefaults()
	base.Service.Name = "catalog"
	base.Service.Version = "1.0.0"

	return &CatalogConfig{
		BaseConfig: *base,
		Catalog: CatalogSettings{
			Events: EventsConfig{
				Driver: EventsDriverLocal,
				NATS: NATSConfig{
					URL:        "nats://localhost:4222",
					StreamName: "CATALOG",
					ClientName: "catalog-service",
				},
				Kafka: KafkaConfig{
					Brokers: []string{"localhost:9092"},
					Topic:   "catalog-events",
				},
			},
		},
	}
}
