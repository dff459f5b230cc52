package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// MinJWTSecretLen is the shortest accepted HS256 signing secret.
const MinJWTSecretLen = 32

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Auth.validate(),
		c.Ingest.validate(),
		c.Events.validate(),
		c.Telemetry.validate(),
		c.Clock.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}
	if s.RequestTimeout >= s.WriteTimeout && s.WriteTimeout > 0 {
		errs = append(errs, fmt.Errorf("server.request_timeout (%s) must be shorter than server.write_timeout (%s)",
			s.RequestTimeout, s.WriteTimeout))
	}
	if s.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("server.rate_limit.requests_per_second must not be negative"))
	}
	if s.RateLimit.RequestsPerSecond > 0 && s.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("server.rate_limit.burst must be >= 1, got %d", s.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	switch s.Driver {
	case DriverMongo:
		if s.URI == "" {
			errs = append(errs, errors.New("store.uri must not be empty for the mongo driver"))
		}
		if s.Database == "" {
			errs = append(errs, errors.New("store.database must not be empty for the mongo driver"))
		}
	case DriverPostgres, DriverSQLite:
		if s.DSN == "" {
			errs = append(errs, fmt.Errorf("store.dsn must not be empty for the %s driver", s.Driver))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver must be one of: mongo, postgres, sqlite; got %q", s.Driver))
	}

	if s.Timeout <= 0 {
		errs = append(errs, errors.New("store.timeout must be positive"))
	}
	if s.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("store.connect_timeout must be positive"))
	}
	if s.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("store.circuit_breaker.max_failures must be >= 1, got %d",
			s.CircuitBreaker.MaxFailures))
	}
	if s.CircuitBreaker.Timeout <= 0 {
		errs = append(errs, errors.New("store.circuit_breaker.timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	var errs []error

	if len(a.JWTSecret) < MinJWTSecretLen {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d bytes", MinJWTSecretLen))
	}
	if a.TokenTTL < time.Minute {
		errs = append(errs, fmt.Errorf("auth.token_ttl must be at least 1m, got %s", a.TokenTTL))
	}
	if strings.TrimSpace(a.CookieName) == "" {
		errs = append(errs, errors.New("auth.cookie_name must not be empty"))
	}
	if a.BcryptCost < bcrypt.MinCost || a.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, a.BcryptCost))
	}
	if a.Redis.DB < 0 {
		errs = append(errs, fmt.Errorf("auth.redis.db must not be negative, got %d", a.Redis.DB))
	}

	return errors.Join(errs...)
}

func (i *IngestConfig) validate() error {
	var errs []error

	if i.MaxBodyBytes < 1 {
		errs = append(errs, fmt.Errorf("ingest.max_body_bytes must be positive, got %d", i.MaxBodyBytes))
	}
	if i.MaxImages < 0 {
		errs = append(errs, fmt.Errorf("ingest.max_images must not be negative, got %d", i.MaxImages))
	}

	return errors.Join(errs...)
}

func (e *EventsConfig) validate() error {
	if !e.Enabled {
		return nil
	}

	var errs []error

	if len(e.Brokers) == 0 {
		errs = append(errs, errors.New("events.brokers must not be empty when events are enabled"))
	}
	for _, b := range e.Brokers {
		if strings.TrimSpace(b) == "" {
			errs = append(errs, errors.New("events.brokers must not contain empty addresses"))
			break
		}
	}
	if e.Topic == "" {
		errs = append(errs, errors.New("events.topic must not be empty when events are enabled"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (c *ClockConfig) validate() error {
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("clock.timezone %q: %w", c.Timezone, err)
	}
	return nil
}
