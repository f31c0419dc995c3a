package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=5000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// ShipmentsFile is the path of the JSON file backing the shipment store.
	ShipmentsFile string `env:"SHIPMENTS_FILE, default=shipments.json"`

	ORS   ORSConfig
	Redis RedisConfig
}

// ORSConfig holds the OpenRouteService settings. The API key is injected
// here and attached per request; it is never compiled into the binary.
type ORSConfig struct {
	APIKey  string `env:"ORS_API_KEY, required"`
	BaseURL string `env:"ORS_BASE_URL, default=https://api.openrouteservice.org"`
}

// RedisConfig holds the optional geocode cache settings. An empty Addr
// disables the cache entirely.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
