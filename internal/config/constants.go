package config

import "time"

const (
	envPort            = "PORT"
	envFixturesDir     = "FIXTURES_DIR"
	envStrictKickoff   = "STRICT_KICKOFF"
	envMonitorInterval = "MONITOR_INTERVAL"
	envFavoritesStore  = "FAVORITES_BACKEND"
	envRedisAddr       = "REDIS_ADDR"
	envCORSOrigins     = "CORS_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Statuses only flip on two-hour boundaries; a minute of lag is invisible
	// next to the UI recomputing on every request.
	defaultMonitorInterval = 1 * Duration(time.Minute)
	defaultFavoritesStore  = "memory"
	defaultRedisAddr       = "localhost:6379"
	defaultMetricsPort     = "9090"
)

// FavoritesBackendRedis selects the shared Redis favorites store; any other
// value keeps the in-process store.
const FavoritesBackendRedis = "redis"
