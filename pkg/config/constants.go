package config

import "time"

const (
	// Server defaults.
	DefaultHTTPPort        = 8080
	DefaultShutdownTimeout = 15 * time.Second

	// Database drivers.
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// Database defaults.
	DefaultPostgresPort    = 5432
	DefaultMaxConnections  = 25
	DefaultMinConnections  = 5
	DefaultMaxConnIdleTime = 30 * time.Minute
	DefaultSlowThreshold   = 200 * time.Millisecond

	// Auth defaults.
	DefaultAccessTokenDuration = 15 * time.Minute

	// Pagination bounds.
	DefaultPageSize    = 20
	DefaultMaxPageSize = 100

	// Event drivers.
	EventsDriverLocal = "local"
	EventsDriverNATS  = "nats"
	EventsDriverKafka = "kafka"
)
