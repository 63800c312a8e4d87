package ratelimit

// Limiter decides whether a request keyed by client address may proceed.
// *internal/ratelimit.Limiter satisfies it.
type Limiter interface {
	Allow(key string) bool
}
