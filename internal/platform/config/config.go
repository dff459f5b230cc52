// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Store     StoreConfig     `koanf:"store"`
	Auth      AuthConfig      `koanf:"auth"`
	Ingest    IngestConfig    `koanf:"ingest"`
	Events    EventsConfig    `koanf:"events"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Clock     ClockConfig     `koanf:"clock"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string          `koanf:"host"`
	Port              int             `koanf:"port"`
	ReadTimeout       time.Duration   `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration   `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration   `koanf:"write_timeout"`
	IdleTimeout       time.Duration   `koanf:"idle_timeout"`
	RequestTimeout    time.Duration   `koanf:"request_timeout"`
	ShutdownTimeout   time.Duration   `koanf:"shutdown_timeout"`
	RateLimit         RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig holds the per-client token bucket. A zero rate disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig selects and configures the task and account store.
type StoreConfig struct {
	Driver string `koanf:"driver"`

	// Mongo settings.
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`

	// SQL settings (postgres, sqlite).
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	LogSQL          bool          `koanf:"log_sql"`

	ConnectTimeout time.Duration        `koanf:"connect_timeout"`
	Timeout        time.Duration        `koanf:"timeout"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// AuthConfig holds session token and account settings.
type AuthConfig struct {
	JWTSecret    string        `koanf:"jwt_secret"`
	Issuer       string        `koanf:"issuer"`
	TokenTTL     time.Duration `koanf:"token_ttl"`
	CookieName   string        `koanf:"cookie_name"`
	CookieSecure bool          `koanf:"cookie_secure"`
	BcryptCost   int           `koanf:"bcrypt_cost"`
	Redis        RedisConfig   `koanf:"redis"`
}

// RedisConfig holds the token revocation store. An empty Addr disables
// revocation.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// Enabled reports whether a revocation store is configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// IngestConfig bounds task creation bodies.
type IngestConfig struct {
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
	MaxImages    int   `koanf:"max_images"`
}

// EventsConfig holds the task event publisher settings.
type EventsConfig struct {
	Enabled      bool          `koanf:"enabled"`
	Brokers      []string      `koanf:"brokers"`
	Topic        string        `koanf:"topic"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// ClockConfig decides which calendar day is "today" for overdue derivation.
type ClockConfig struct {
	Timezone string `koanf:"timezone"`
}

// Location returns the configured time zone, or UTC when unset.
func (c ClockConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}
