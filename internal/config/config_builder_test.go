package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder().
		withOverrides(&StructuredConfig{Workers: Workers{SyncConcurrency: 8}}).
		withOverrides(&StructuredConfig{Workers: Workers{SyncConcurrency: 2, SyncInterval: time.Second}}).
		withDefaults(clientDefaults())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers.SyncConcurrency)
	assert.Equal(t, time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultSyncCallTimeout, cfg.Workers.SyncCallTimeout)
}

func TestWithOverrides_NilIsIgnored(t *testing.T) {
	b := newConfigBuilder().withOverrides(nil)
	assert.Empty(t, b.layers)
}

func TestWithFile(t *testing.T) {
	t.Run("no path is a no-op", func(t *testing.T) {
		b := newConfigBuilder().withOverrides(&StructuredConfig{}).withFile()
		require.NoError(t, b.err)
		assert.Len(t, b.layers, 1)
	})

	t.Run("first path wins", func(t *testing.T) {
		first := writeTempConfig(t, "first.yaml", "storage:\n  db:\n    dsn: first.db\n")
		second := writeTempConfig(t, "second.yaml", "storage:\n  db:\n    dsn: second.db\n")

		cfg, err := newConfigBuilder().
			withOverrides(&StructuredConfig{FilePath: first}).
			withOverrides(&StructuredConfig{FilePath: second}).
			withFile().
			build()
		require.NoError(t, err)
		assert.Equal(t, "first.db", cfg.Storage.DB.DSN)
	})

	t.Run("missing file sets error", func(t *testing.T) {
		b := newConfigBuilder().
			withOverrides(&StructuredConfig{FilePath: "/does/not/exist.json"}).
			withFile()
		require.Error(t, b.err)

		_, err := b.build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file /does/not/exist.json")
	})
}

func TestGetClientConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := GetClientConfig(nil)
		require.NoError(t, err)

		assert.Equal(t, DefaultClientDSN, cfg.Storage.DB.DSN)
		assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
		assert.Equal(t, DefaultSyncConcurrency, cfg.Workers.SyncConcurrency)
		assert.Equal(t, DefaultSyncCallTimeout, cfg.Workers.CallTimeout)
		assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
		assert.False(t, cfg.Telemetry.Enabled())
	})

	t.Run("flags beat env beat file", func(t *testing.T) {
		path := writeTempConfig(t, "client.yaml", `
adapter:
  http_address: file:8080
  retry_count: 7
workers:
  sync_concurrency: 3
`)
		t.Setenv("ADAPTER_ADDRESS", "env:8080")
		t.Setenv("WORKERS_SYNC_CONCURRENCY", "5")

		cfg, err := GetClientConfig(&StructuredConfig{
			Adapter:  Adapter{HTTPAddress: "flag:8080"},
			FilePath: path,
		})
		require.NoError(t, err)

		assert.Equal(t, "flag:8080", cfg.Adapter.HTTPAddress)
		assert.Equal(t, 5, cfg.Workers.SyncConcurrency)
		assert.Equal(t, 7, cfg.Adapter.RetryCount)
	})

	t.Run("in-memory dsn is rejected", func(t *testing.T) {
		_, err := GetClientConfig(&StructuredConfig{Storage: Storage{DB: DB{DSN: ":memory:"}}})
		require.ErrorIs(t, err, ErrInvalidStorageConfigs)
	})
}

func TestStructuredConfig_Validate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			App:     App{TokenSignKey: "k", TokenIssuer: "i", TokenDuration: time.Hour},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/notes"}},
			Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		}
	}

	require.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)

	cfg = valid()
	cfg.App.TokenSignKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := newClientConfig(clientDefaults())
	require.NoError(t, cfg.validate())

	cfg.Workers.SyncConcurrency = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)

	cfg = newClientConfig(clientDefaults())
	cfg.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestStructuredConfig_ValidateReportsEveryProblem(t *testing.T) {
	err := (&StructuredConfig{}).validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.Contains(t, err.Error(), "token issuer is empty")
}
