package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Akshit-MMQH/RakshaChain/internal/core/ports"
)

const geocodeTTL = 24 * time.Hour

// GeocodeCache caches resolved locations in Redis so repeated estimates for
// the same free-text location skip the upstream geocoder.
// Key format: geocode:<normalized text>
type GeocodeCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewGeocodeCache creates a GeocodeCache wrapping the given Redis client.
func NewGeocodeCache(client *redis.Client, log zerolog.Logger) *GeocodeCache {
	return &GeocodeCache{client: client, log: log}
}

// Get returns the cached location for text. Any Redis failure is treated as
// a miss so estimates keep working without the cache.
func (c *GeocodeCache) Get(ctx context.Context, text string) (*ports.GeocodedLocation, bool) {
	raw, err := c.client.Get(ctx, c.key(text)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("text", text).Msg("geocode cache read failed")
		}
		return nil, false
	}

	var loc ports.GeocodedLocation
	if err := json.Unmarshal(raw, &loc); err != nil {
		c.log.Warn().Err(err).Str("text", text).Msg("geocode cache entry is corrupt")
		return nil, false
	}
	return &loc, true
}

// Set records a resolved location (expires after geocodeTTL).
func (c *GeocodeCache) Set(ctx context.Context, text string, loc *ports.GeocodedLocation) {
	raw, err := json.Marshal(loc)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(text), raw, geocodeTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("text", text).Msg("geocode cache write failed")
	}
}

func (c *GeocodeCache) key(text string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(text))
}
