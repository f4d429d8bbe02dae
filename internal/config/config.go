package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Session   SessionConfig   `mapstructure:"session" validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
	Metrics   MetricsConfig   `mapstructure:"metrics" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Seconds allowed for in-flight requests to finish on shutdown
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// SessionConfig contains the settings of the signed tracker session token.
type SessionConfig struct {
	Secret          string `mapstructure:"secret" validate:"required,min=32"`
	LifetimeMinutes int    `mapstructure:"lifetime_minutes" validate:"gt=0"`
	// Tolerated clock drift when validating token time claims
	ClockSkewSeconds int `mapstructure:"clock_skew_seconds" validate:"gte=0"`
}

// RateLimitConfig contains the per-client request limits.
type RateLimitConfig struct {
	Enabled                bool    `mapstructure:"enabled"`
	RequestsPerSecond      float64 `mapstructure:"requests_per_second" validate:"gt=0"`
	Burst                  int     `mapstructure:"burst" validate:"gt=0"`
	CleanupIntervalSeconds int     `mapstructure:"cleanup_interval_seconds" validate:"gt=0"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required,startswith=/"`
}

// ShutdownTimeout returns the graceful shutdown budget as a duration.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// Lifetime returns the session token lifetime as a duration.
func (c SessionConfig) Lifetime() time.Duration {
	return time.Duration(c.LifetimeMinutes) * time.Minute
}

// ClockSkew returns the allowed token clock skew as a duration.
func (c SessionConfig) ClockSkew() time.Duration {
	return time.Duration(c.ClockSkewSeconds) * time.Second
}

// CleanupInterval returns how often idle client limiters are evicted.
func (c RateLimitConfig) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupIntervalSeconds) * time.Second
}
