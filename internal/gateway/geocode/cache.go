package geocode

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"

	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/logx"
)

const (
	cacheKeyPrefix = "geocode:"
	// negativeValue marks an address the upstream could not resolve.
	negativeValue = "-"
)

type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CacheConfig controls Cache lifetimes.
type CacheConfig struct {
	TTL time.Duration
	// NegativeTTL applies to addresses without a match. Zero disables negative caching.
	NegativeTTL time.Duration
}

// Cache stores lookups in redis. Redis failures are logged and the call falls
// through to next.
type Cache struct {
	next    Geocoder
	store   kv
	cfg     CacheConfig
	results *prometheus.CounterVec
	logger  logx.Logger
}

// NewCache wraps next. A nil store returns next unchanged.
func NewCache(next Geocoder, store kv, cfg CacheConfig, results *prometheus.CounterVec, logger logx.Logger) Geocoder {
	if store == nil {
		return next
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * 24 * time.Hour
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Cache{next: next, store: store, cfg: cfg, results: results, logger: logger}
}

func cacheKey(address string) string {
	norm := strings.Join(strings.Fields(strings.ToLower(address)), " ")
	sum := sha256.Sum256([]byte(norm))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

func (c *Cache) observe(result string) {
	if c.results != nil {
		c.results.WithLabelValues(result).Inc()
	}
}

// Geocode answers from redis when possible.
func (c *Cache) Geocode(ctx context.Context, address string) (*domain.Coordinate, error) {
	key := cacheKey(address)

	raw, err := c.store.Get(ctx, key).Result()
	switch {
	case err == nil && raw == negativeValue:
		c.observe("negative_hit")
		return nil, nil
	case err == nil:
		var coord domain.Coordinate
		if jerr := json.Unmarshal([]byte(raw), &coord); jerr == nil {
			c.observe("hit")
			return &coord, nil
		}
		c.observe("error")
		c.logger.Warn("geocode cache entry corrupt", logx.String("key", key))
	case errors.Is(err, redis.Nil):
		c.observe("miss")
	default:
		c.observe("error")
		c.logger.Warn("geocode cache read failed",
			logx.String("event", "geocode_cache_error"),
			logx.Any("err", err),
		)
	}

	coord, err := c.next.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}
	c.put(ctx, key, coord)
	return coord, nil
}

func (c *Cache) put(ctx context.Context, key string, coord *domain.Coordinate) {
	var (
		val any
		ttl = c.cfg.TTL
	)
	if coord == nil {
		if c.cfg.NegativeTTL <= 0 {
			return
		}
		val, ttl = negativeValue, c.cfg.NegativeTTL
	} else {
		b, err := json.Marshal(coord)
		if err != nil {
			return
		}
		val = string(b)
	}
	if err := c.store.Set(ctx, key, val, ttl).Err(); err != nil {
		c.logger.Warn("geocode cache write failed",
			logx.String("event", "geocode_cache_error"),
			logx.Any("err", err),
		)
	}
}
