package config

import "time"

// Default values applied when no other source sets a field.
const (
	DefaultSyncInterval    = time.Minute
	DefaultSyncConcurrency = 4
	DefaultSyncCallTimeout = 15 * time.Second

	DefaultAdapterAddress        = "localhost:8080"
	DefaultAdapterRequestTimeout = 30 * time.Second
	DefaultAdapterRetryCount     = 2

	DefaultClientDSN = "notes.db"

	DefaultServerAddress        = "localhost:8080"
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultTokenIssuer          = "go-note-sync"
	DefaultTokenDuration        = 24 * time.Hour
)

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Telemetry: Telemetry{ServiceName: "notesync-server"},
	}
}

func clientDefaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultClientDSN}},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
			RetryCount:     DefaultAdapterRetryCount,
		},
		Workers: Workers{
			SyncInterval:    DefaultSyncInterval,
			SyncConcurrency: DefaultSyncConcurrency,
			SyncCallTimeout: DefaultSyncCallTimeout,
		},
		Telemetry: Telemetry{ServiceName: "notesync-client"},
	}
}
