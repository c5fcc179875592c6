package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  string
		wantHost string
		wantPort int
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ipv4", input: "127.0.0.1:9090", wantHost: "127.0.0.1", wantPort: 9090},
		{name: "all interfaces", input: ":8080", wantPort: 8080},
		{name: "ipv6", input: "[::1]:8080", wantHost: "::1", wantPort: 8080},
		{name: "missing colon", input: "localhost8080", wantErr: "missing port"},
		{name: "too many colons", input: "a:b:c", wantErr: "too many colons"},
		{name: "non-numeric port", input: "localhost:abc", wantErr: "not in 1-65535"},
		{name: "zero port", input: "localhost:0", wantErr: "not in 1-65535"},
		{name: "port too large", input: "localhost:70000", wantErr: "not in 1-65535"},
		{name: "hostname", input: "notes.example.com:8080", wantErr: "is not an IP address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrInvalidNetAddress)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
			assert.Equal(t, tt.input, addr.String())
		})
	}

	t.Run("empty address renders empty", func(t *testing.T) {
		var addr NetAddress
		assert.Empty(t, addr.String())
	})
}

func TestParseFlags(t *testing.T) {
	t.Run("all flags", func(t *testing.T) {
		cfg, err := parseFlags(newTestFlagSet(), []string{
			"-a", "127.0.0.1:8081",
			"-d", "postgres://u:p@localhost/notes",
			"-c", "/etc/notesync/server.yaml",
			"-token-sign-key", "secret",
			"-token-issuer", "issuer",
			"-token-duration", "2h",
			"-request-timeout", "5s",
			"-otlp-endpoint", "localhost:4317",
		})
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
		assert.Equal(t, "postgres://u:p@localhost/notes", cfg.Storage.DB.DSN)
		assert.Equal(t, "/etc/notesync/server.yaml", cfg.FilePath)
		assert.Equal(t, "secret", cfg.App.TokenSignKey)
		assert.Equal(t, "issuer", cfg.App.TokenIssuer)
		assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
		assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "localhost:4317", cfg.Telemetry.OTLPEndpoint)
	})

	t.Run("config alias", func(t *testing.T) {
		cfg, err := parseFlags(newTestFlagSet(), []string{"-config", "server.json"})
		require.NoError(t, err)
		assert.Equal(t, "server.json", cfg.FilePath)
		assert.Empty(t, cfg.Server.HTTPAddress)
	})

	t.Run("invalid address", func(t *testing.T) {
		_, err := parseFlags(newTestFlagSet(), []string{"-a", "nope"})
		require.Error(t, err)
	})
}
