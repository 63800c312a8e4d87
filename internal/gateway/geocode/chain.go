package geocode

import (
	"github.com/prometheus/client_golang/prometheus"

	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/metrics"
)

// ChainDeps are the optional layers around the HTTP client.
type ChainDeps struct {
	Limiter waiter
	Store   kv
	Metrics *metrics.Set
	Logger  logx.Logger
}

// Chain assembles area filter, cache, retries and throttle around base.
// Area filtering happens last so the cache keeps raw upstream answers.
func Chain(base Geocoder, retry RetryConfig, cache CacheConfig, d ChainDeps) Geocoder {
	var (
		retries counter
		results *prometheus.CounterVec
	)
	if d.Metrics != nil {
		retries = d.Metrics.GeocoderRetries
		results = d.Metrics.GeocodeCache
	}

	g := NewThrottled(base, d.Limiter)
	g = NewRetrying(g, d.Logger, retries, retry)
	g = NewCache(g, d.Store, cache, results, d.Logger)
	return NewAreaFilter(g)
}
