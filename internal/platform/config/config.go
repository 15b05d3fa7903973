// Package config loads the service settings with koanf. Later layers win:
// built-in defaults, configs/base.yaml, configs/{profile}.yaml, then APP_*
// environment variables.
package config

import "time"

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Board     BoardConfig     `koanf:"board"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig configures the inbound HTTP server. RequestTimeout bounds a
// single handler; ShutdownTimeout bounds the drain on exit.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig selects the slog level (debug, info, warn, error) and format
// (json, text).
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig configures the outbound list API client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	ListsPath      string               `koanf:"lists_path"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig is the backoff policy. MaxAttempts counts the first try.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig trips the breaker after MaxFailures consecutive
// failures and probes again after Timeout.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig throttles outbound calls. Zero RequestsPerSecond disables
// it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// BoardConfig tunes the board service.
type BoardConfig struct {
	// FetchOnStart loads the lists once when the process starts.
	FetchOnStart bool `koanf:"fetch_on_start"`

	// ClearSelectionOnCancel deselects both lists when a move session is
	// cancelled. When false the selection is kept.
	ClearSelectionOnCancel bool `koanf:"clear_selection_on_cancel"`

	// FetchTimeout bounds a single fetch, including client retries.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`
}

// TelemetryConfig enables OpenTelemetry export. Exporter is stdout or otlp.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
