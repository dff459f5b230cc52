package config

const (
	defaultServerPort = 8080

	defaultRateLimitRPS   = 20
	defaultRateLimitBurst = 40

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultBcryptCost = 12

	defaultMaxBodyBytes = 10 << 20
	defaultMaxImages    = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                           "0.0.0.0",
		"server.port":                           defaultServerPort,
		"server.read_timeout":                   "15s",
		"server.read_header_timeout":            "5s",
		"server.write_timeout":                  "30s",
		"server.idle_timeout":                   "120s",
		"server.request_timeout":                "20s",
		"server.shutdown_timeout":               "10s",
		"server.rate_limit.requests_per_second": defaultRateLimitRPS,
		"server.rate_limit.burst":               defaultRateLimitBurst,

		"log.level":  "info",
		"log.format": "json",

		"store.driver":                          DriverMongo,
		"store.uri":                             "mongodb://localhost:27017",
		"store.database":                        "tasks",
		"store.dsn":                             "",
		"store.max_open_conns":                  defaultMaxOpenConns,
		"store.max_idle_conns":                  defaultMaxIdleConns,
		"store.conn_max_lifetime":               "30m",
		"store.log_sql":                         false,
		"store.connect_timeout":                 "10s",
		"store.timeout":                         "5s",
		"store.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.circuit_breaker.timeout":         "30s",
		"store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"auth.jwt_secret":     "",
		"auth.issuer":         "pracsphere-tasks",
		"auth.token_ttl":      "24h",
		"auth.cookie_name":    "tasks_session",
		"auth.cookie_secure":  true,
		"auth.bcrypt_cost":    defaultBcryptCost,
		"auth.redis.addr":     "",
		"auth.redis.password": "",
		"auth.redis.db":       0,

		"ingest.max_body_bytes": defaultMaxBodyBytes,
		"ingest.max_images":     defaultMaxImages,

		"events.enabled":       false,
		"events.brokers":       []string{"localhost:9092"},
		"events.topic":         "task-events",
		"events.write_timeout": "5s",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "pracsphere-tasks",

		"clock.timezone": "UTC",
	}
}
