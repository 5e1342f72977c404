package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	FixturesDir     string
	StrictKickoff   bool
	MonitorInterval Duration
	Favorites       FavoritesConfig
	CORS            CORSConfig
	Metrics         MetricsConfig
}

// FavoritesConfig selects and configures the favorites backend.
type FavoritesConfig struct {
	Backend   string
	RedisAddr string
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	Origins []string
}

// MetricsConfig configures the telemetry exporters.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		FixturesDir:     envOrDefault(envFixturesDir, ""),
		StrictKickoff:   boolEnvOrDefault(envStrictKickoff, false),
		MonitorInterval: durationEnvOrDefault(envMonitorInterval, defaultMonitorInterval),
		Favorites: FavoritesConfig{
			Backend:   envOrDefault(envFavoritesStore, defaultFavoritesStore),
			RedisAddr: envOrDefault(envRedisAddr, defaultRedisAddr),
		},
		CORS: CORSConfig{
			Origins: listEnvOrDefault(envCORSOrigins, []string{"*"}),
		},
		Metrics: MetricsConfig{
			Enabled:      boolEnvOrDefault(envMetricsOn, false),
			Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
			ServiceName:  envOrDefault(envOtelService, "football-calendar-service"),
			OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
			OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
		},
	}
}
