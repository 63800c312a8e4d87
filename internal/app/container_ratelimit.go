package app

import (
	"homecare-scheduler/internal/config"
	rlmw "homecare-scheduler/internal/http/middleware/ratelimit"
	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/metrics"
	"homecare-scheduler/internal/ratelimit"
)

func newRateLimiter(cfg *config.Config) rlmw.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return rlmw.NopLimiter{}
	}
	return ratelimit.New(ratelimit.Config{
		Rate:    rl.Rate,
		Burst:   rl.Burst,
		TTL:     rl.TTL,
		MaxKeys: rl.MaxBuckets,
	}, nil)
}

func newRateLimitMiddleware(logger logx.Logger, set *metrics.Set, limiter rlmw.Limiter) *rlmw.Middleware {
	return rlmw.New(logger, set.RateLimitExceeded, limiter)
}
