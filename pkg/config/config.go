// Package config loads service configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/wanderkit/tripagent/pkg/meteo"
	"github.com/wanderkit/tripagent/pkg/osm"
)

// Config holds every tunable of the service. Zero configuration works: all
// fields default to the public upstream endpoints.
type Config struct {
	HTTPAddr           string
	AllowedOrigins     []string
	NominatimBaseURL   string
	OverpassBaseURL    string
	MeteoBaseURL       string
	UserAgent          string
	GeocodeMinInterval time.Duration
}

// Load reads configuration from an optional .env file and the environment.
func Load(logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.Default()
	}
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using environment and defaults")
	}

	cfg := &Config{
		HTTPAddr:           getenv("TRIPAGENT_HTTP_ADDR", ":8000"),
		AllowedOrigins:     splitOrigins(getenv("TRIPAGENT_ALLOWED_ORIGINS", "*")),
		NominatimBaseURL:   getenv("TRIPAGENT_NOMINATIM_URL", osm.DefaultNominatimBaseURL),
		OverpassBaseURL:    getenv("TRIPAGENT_OVERPASS_URL", osm.DefaultOverpassBaseURL),
		MeteoBaseURL:       getenv("TRIPAGENT_METEO_URL", meteo.DefaultBaseURL),
		UserAgent:          getenv("TRIPAGENT_USER_AGENT", osm.DefaultUserAgent),
		GeocodeMinInterval: osm.NominatimMinInterval,
	}

	if raw := os.Getenv("TRIPAGENT_GEOCODE_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.GeocodeMinInterval = d
		} else {
			logger.Warn("ignoring invalid TRIPAGENT_GEOCODE_INTERVAL", "value", raw)
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
