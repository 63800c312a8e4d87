package app

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/dig"

	"homecare-scheduler/internal/config"
	"homecare-scheduler/internal/gateway/geocode"
	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/metrics"
	"homecare-scheduler/internal/ratelimit"
	"homecare-scheduler/internal/service/patient"
)

const geocoderLimiterKeys = 1

func registerGeocoder(container *dig.Container) error {
	return provideAll(container, newRedisClient, newGeocoder)
}

// newRedisClient returns nil when no address is configured.
func newRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// newGeocoder assembles the lookup chain. A disabled geocoder yields nil and
// patients keep whatever coordinates the client sent.
func newGeocoder(cfg *config.Config, set *metrics.Set, logger logx.Logger, rdb *redis.Client) patient.Geocoder {
	gc := cfg.Geocoder
	if !gc.Enabled {
		return nil
	}

	base := geocode.NewClient(geocode.ClientConfig{
		BaseURL:      gc.BaseURL,
		UserAgent:    gc.UserAgent,
		Timeout:      gc.Timeout,
		CountryCodes: gc.CountryCodes,
	})
	deps := geocode.ChainDeps{Metrics: set, Logger: logger}
	if gc.RatePerSecond > 0 {
		deps.Limiter = ratelimit.New(ratelimit.Config{
			Rate:    gc.RatePerSecond,
			Burst:   gc.Burst,
			MaxKeys: geocoderLimiterKeys,
		}, nil)
	}
	if rdb != nil {
		deps.Store = rdb
	}

	return geocode.Chain(base,
		geocode.RetryConfig{MaxAttempts: gc.MaxAttempts, BaseDelay: gc.BaseDelay, MaxDelay: gc.MaxDelay},
		geocode.CacheConfig{TTL: cfg.Redis.TTL, NegativeTTL: cfg.Redis.NegativeTTL},
		deps,
	)
}
