package ratelimit

// NopLimiter allows everything. Used when rate limiting is disabled in config.
type NopLimiter struct{}

// Allow always returns true.
func (NopLimiter) Allow(string) bool { return true }
