package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RetryCount is the number of retries of a failed request.
	RetryCount int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file of the local replica.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains the client sync settings.
type ClientWorkers struct {
	// SyncInterval defines how often the daemon runs a sync pass.
	SyncInterval time.Duration
	// SyncConcurrency bounds the actions applied in parallel by one pass.
	SyncConcurrency int
	// CallTimeout bounds each store call of a pass.
	CallTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains sync settings.
	Workers ClientWorkers
	// Telemetry contains the optional OTLP settings.
	Telemetry Telemetry
	// LogFile is the path of the rotated client log.
	LogFile string
}

// GetClientConfig builds and validates a client-specific config view.
//
// overrides carries the values of the command-line flags of the client CLI
// and takes precedence over the environment, which takes precedence over the
// config file. Built-in defaults fill whatever is left.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withFile().
		withDefaults(clientDefaults()).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     cfg.Adapter.RetryCount,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:    cfg.Workers.SyncInterval,
			SyncConcurrency: cfg.Workers.SyncConcurrency,
			CallTimeout:     cfg.Workers.SyncCallTimeout,
		},
		Telemetry: cfg.Telemetry,
		LogFile:   cfg.Log.File,
	}
}
