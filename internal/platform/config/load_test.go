package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/list-creation-service/internal/platform/config"
)

// repoConfigs is the checked-in configs directory.
const repoConfigs = "../../../configs"

// writeConfigs creates a config directory holding base.yaml and the given
// profile files.
func writeConfigs(t *testing.T, base string, profiles map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(base), 0o600))
	for name, body := range profiles {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o600))
	}
	return dir
}

func TestLoad_CheckedInProfiles(t *testing.T) {
	local, err := config.Load("local", config.WithConfigDir(repoConfigs))
	require.NoError(t, err)
	assert.Equal(t, "debug", local.Log.Level)
	assert.Equal(t, "text", local.Log.Format)
	assert.False(t, local.Telemetry.Enabled)

	prod, err := config.Load("prod", config.WithConfigDir(repoConfigs))
	require.NoError(t, err)
	assert.Equal(t, "json", prod.Log.Format)
	assert.True(t, prod.Telemetry.Enabled)
	assert.Equal(t, "otlp", prod.Telemetry.Exporter)
	assert.NotEmpty(t, prod.Telemetry.Endpoint)
	assert.InDelta(t, 10, prod.Client.RateLimit.RequestsPerSecond, 0)

	for _, cfg := range []*config.Config{local, prod} {
		assert.Equal(t, "https://apis.ccbp.in", cfg.Client.BaseURL)
		assert.Equal(t, "/list-creation/lists", cfg.Client.ListsPath)
		assert.Equal(t, 3, cfg.Client.Retry.MaxAttempts)
		assert.True(t, cfg.Board.FetchOnStart)
		assert.False(t, cfg.Board.ClearSelectionOnCancel)
		assert.Equal(t, 20*time.Second, cfg.Board.FetchTimeout)
	}
}

func TestLoad_Layering(t *testing.T) {
	dir := writeConfigs(t,
		"server:\n  port: 7000\nlog:\n  level: warn\n",
		map[string]string{"qa": "log:\n  level: error\n"},
	)

	cfg, err := config.Load("qa", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port, "base overrides defaults")
	assert.Equal(t, "error", cfg.Log.Level, "profile overrides base")
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout, "defaults fill the rest")
	assert.Equal(t, 5, cfg.Client.CircuitBreaker.MaxFailures)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		env   string
		value string
		check func(t *testing.T, cfg *config.Config)
	}{
		{"APP_SERVER_PORT", "9090", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 9090, cfg.Server.Port)
		}},
		{"APP_SERVER_READ_TIMEOUT", "15s", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		}},
		{"APP_CLIENT_RETRY_MAX_ATTEMPTS", "7", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 7, cfg.Client.Retry.MaxAttempts)
		}},
		{"APP_CLIENT_CIRCUIT_BREAKER_HALF_OPEN_LIMIT", "4", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 4, cfg.Client.CircuitBreaker.HalfOpenLimit)
		}},
		{"APP_BOARD_CLEAR_SELECTION_ON_CANCEL", "true", func(t *testing.T, cfg *config.Config) {
			assert.True(t, cfg.Board.ClearSelectionOnCancel)
		}},
		{"APP_BOARD_FETCH_ON_START", "false", func(t *testing.T, cfg *config.Config) {
			assert.False(t, cfg.Board.FetchOnStart)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			cfg, err := config.Load("local", config.WithConfigDir(repoConfigs))
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := writeConfigs(t, "", map[string]string{"broken": "board:\n  fetch_timeout: 40s\n"})

	tests := []struct {
		name    string
		profile string
		dir     string
		wantErr string
	}{
		{"empty profile", " ", dir, "profile must not be empty"},
		{"path separator", "../etc", dir, "bare name"},
		{"dot dot", "..", dir, "bare name"},
		{"missing profile file", "nonexistent", dir, "nonexistent.yaml"},
		{"missing base file", "local", t.TempDir(), "base.yaml"},
		{"invalid result", "broken", dir, "board.fetch_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(tt.profile, config.WithConfigDir(tt.dir))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr []string
	}{
		{"valid", func(*config.Config) {}, nil},
		{"port", func(c *config.Config) { c.Server.Port = 0 }, []string{"server.port"}},
		{"log level", func(c *config.Config) { c.Log.Level = "verbose" }, []string{"log.level"}},
		{"log format", func(c *config.Config) { c.Log.Format = "xml" }, []string{"log.format"}},
		{"lists path", func(c *config.Config) { c.Client.ListsPath = "lists" }, []string{"client.lists_path"}},
		{"retry attempts", func(c *config.Config) { c.Client.Retry.MaxAttempts = 0 }, []string{"client.retry.max_attempts"}},
		{"rate limit burst", func(c *config.Config) {
			c.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 2}
		}, []string{"client.rate_limit.burst_size"}},
		{"otlp endpoint", func(c *config.Config) {
			c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp"}
		}, []string{"telemetry.endpoint"}},
		{"fetch outlives request", func(c *config.Config) {
			c.Board.FetchTimeout = c.Server.RequestTimeout
		}, []string{"must be shorter than server.request_timeout"}},
		{"aggregated", func(c *config.Config) {
			c.Server.Port = 0
			c.Board.FetchTimeout = 0
		}, []string{"server.port", "board.fetch_timeout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorContains(t, err, want)
			}
		})
	}
}

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    35 * time.Second,
			IdleTimeout:     2 * time.Minute,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Client: config.ClientConfig{
			BaseURL:   "https://apis.ccbp.in",
			ListsPath: "/list-creation/lists",
			Timeout:   10 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     2 * time.Second,
				Multiplier:      2,
			},
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
		},
		Board:     config.BoardConfig{FetchOnStart: true, FetchTimeout: 20 * time.Second},
		Telemetry: config.TelemetryConfig{Exporter: "stdout"},
	}
}
