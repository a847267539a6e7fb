package config

import (
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

// TestLoadFromEnv_Defaults tests that an empty environment yields the defaults
func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"API_HOST", "API_PORT", "GIN_MODE", "SWAGGER_ENABLED", "COMPRESSION_MIN_LENGTH",
		"READ_HEADER_TIMEOUT", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg := &Config{}
	require.NoError(t, cfg.LoadFromEnv())
	require.Equal(t, Default(), cfg)
	require.Equal(t, ":8080", cfg.API.Addr())
}

// TestLoadFromEnv tests loading configuration from a dotenv file
func TestLoadFromEnv(t *testing.T) {
	env, err := godotenv.Unmarshal(`
API_HOST=127.0.0.1
API_PORT=9090
GIN_MODE=test
SWAGGER_ENABLED=false
COMPRESSION_MIN_LENGTH=0
READ_HEADER_TIMEOUT=3s
SHUTDOWN_TIMEOUT=1m
LOG_LEVEL=DEBUG
LOG_FORMAT=json
`)
	require.NoError(t, err)
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg := &Config{}
	require.NoError(t, cfg.LoadFromEnv())

	require.Equal(t, "127.0.0.1", cfg.API.Host)
	require.Equal(t, 9090, cfg.API.Port)
	require.Equal(t, "127.0.0.1:9090", cfg.API.Addr())
	require.Equal(t, "test", cfg.API.GinMode)
	require.False(t, cfg.API.SwaggerEnabled)
	require.Equal(t, 0, cfg.API.CompressionMinLength)
	require.Equal(t, 3*time.Second, cfg.API.ReadHeaderTimeout)
	require.Equal(t, time.Minute, cfg.API.ShutdownTimeout)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Port not a number", key: "API_PORT", value: "http"},
		{name: "Port out of range", key: "API_PORT", value: "70000"},
		{name: "Port zero", key: "API_PORT", value: "0"},
		{name: "Unknown gin mode", key: "GIN_MODE", value: "production"},
		{name: "Unknown log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "Unknown log format", key: "LOG_FORMAT", value: "xml"},
		{name: "Negative compression threshold", key: "COMPRESSION_MIN_LENGTH", value: "-1"},
		{name: "Bad duration", key: "SHUTDOWN_TIMEOUT", value: "soon"},
		{name: "Negative duration", key: "READ_HEADER_TIMEOUT", value: "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg := &Config{}
			require.Error(t, cfg.LoadFromEnv())
		})
	}
}
