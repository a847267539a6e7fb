package config

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"nnpredictor/internal/validation"

	"github.com/m-mizutani/goerr/v2"
)

// Config represents the application configuration
type Config struct {
	// API contains API server configuration
	API APIConfig
	// Log contains logger configuration
	Log LogConfig
}

// APIConfig contains API server settings
type APIConfig struct {
	// Host is the interface to listen on, empty for all interfaces
	Host string
	// Port is the server port to listen on
	Port int `validate:"min=1,max=65535"`
	// GinMode is the gin engine mode
	GinMode string `validate:"oneof=debug release test"`
	// SwaggerEnabled exposes the Swagger UI under /swagger
	SwaggerEnabled bool
	// CompressionMinLength is the smallest response body that gets gzipped
	CompressionMinLength int `validate:"gte=0"`
	// ReadHeaderTimeout bounds the time to read request headers
	ReadHeaderTimeout time.Duration `validate:"gt=0"`
	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// LogConfig contains logger settings
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `validate:"loglevel"`
	// Format is console or json
	Format string `validate:"logformat"`
}

// Addr returns the listen address
func (c APIConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		API: APIConfig{
			Port:                 8080,
			GinMode:              "release",
			SwaggerEnabled:       true,
			CompressionMinLength: 1024,
			ReadHeaderTimeout:    10 * time.Second,
			ShutdownTimeout:      5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadFromEnv retrieves configuration from environment variables
func (c *Config) LoadFromEnv() error {
	def := Default()

	port, err := getEnvAsInt("API_PORT", def.API.Port)
	if err != nil {
		return err
	}
	compressionMinLength, err := getEnvAsInt("COMPRESSION_MIN_LENGTH", def.API.CompressionMinLength)
	if err != nil {
		return err
	}
	readHeaderTimeout, err := getEnvAsDuration("READ_HEADER_TIMEOUT", def.API.ReadHeaderTimeout)
	if err != nil {
		return err
	}
	shutdownTimeout, err := getEnvAsDuration("SHUTDOWN_TIMEOUT", def.API.ShutdownTimeout)
	if err != nil {
		return err
	}

	c.API = APIConfig{
		Host:                 os.Getenv("API_HOST"),
		Port:                 port,
		GinMode:              getEnvOrDefault("GIN_MODE", def.API.GinMode),
		SwaggerEnabled:       getEnvAsBool("SWAGGER_ENABLED", def.API.SwaggerEnabled),
		CompressionMinLength: compressionMinLength,
		ReadHeaderTimeout:    readHeaderTimeout,
		ShutdownTimeout:      shutdownTimeout,
	}
	c.Log = LogConfig{
		Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", def.Log.Level)),
		Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", def.Log.Format)),
	}

	return c.Validate()
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := validation.New().Struct(c); err != nil {
		return goerr.Wrap(err, "invalid configuration")
	}
	return nil
}

// getEnvAsInt retrieves an environment variable and converts it to an integer
func getEnvAsInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid integer in environment", goerr.V("key", key), goerr.V("value", v))
	}
	return i, nil
}

// getEnvAsDuration retrieves an environment variable and parses it as a duration
func getEnvAsDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid duration in environment", goerr.V("key", key), goerr.V("value", v))
	}
	return d, nil
}

// getEnvAsBool retrieves an environment variable and converts it to a boolean
func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
