// Package ratelimit implements a keyed token bucket used both to reject excess
// HTTP requests and to pace outgoing calls to rate-limited collaborators.
package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTooManyKeys is returned by Wait when no bucket can be created for a new key.
var ErrTooManyKeys = errors.New("ratelimit: bucket limit reached")

// Clock provides current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Config stores bucket settings.
type Config struct {
	Rate    float64       // tokens per second
	Burst   int           // bucket capacity
	TTL     time.Duration // idle buckets are dropped after TTL; 0 keeps them
	MaxKeys int           // 0 means unlimited
}

// PerWindow builds a Config allowing limit events per window.
func PerWindow(limit int, window, ttl time.Duration, maxKeys int) Config {
	if window <= 0 {
		window = time.Second
	}
	if limit <= 0 {
		limit = 1
	}
	return Config{Rate: float64(limit) / window.Seconds(), Burst: limit, TTL: ttl, MaxKeys: maxKeys}
}

type bucket struct {
	tokens float64
	last   time.Time
}

// Limiter is a keyed token bucket. Safe for concurrent use.
type Limiter struct {
	cfg   Config
	clock Clock
	sleep func(context.Context, time.Duration) error

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// New creates a Limiter. A nil clock means wall time.
func New(cfg Config, clock Clock) *Limiter {
	if clock == nil {
		clock = realClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxKeys < 0 {
		cfg.MaxKeys = 0
	}
	return &Limiter{
		cfg:     cfg,
		clock:   clock,
		sleep:   sleepCtx,
		buckets: make(map[string]*bucket),
	}
}

// Allow consumes a token for key if one is available.
func (l *Limiter) Allow(key string) bool {
	ok, _, err := l.take(key)
	return ok && err == nil
}

// Wait blocks until a token for key is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context, key string) error {
	for {
		ok, wait, err := l.take(key)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// take consumes one token, or reports how long until the next one.
func (l *Limiter) take(key string) (bool, time.Duration, error) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		if l.cfg.MaxKeys > 0 && len(l.buckets) >= l.cfg.MaxKeys {
			return false, 0, ErrTooManyKeys
		}
		b = &bucket{tokens: float64(l.cfg.Burst), last: now}
		l.buckets[key] = b
	}

	if dt := now.Sub(b.last); dt > 0 {
		b.tokens += dt.Seconds() * l.cfg.Rate
		if burst := float64(l.cfg.Burst); b.tokens > burst {
			b.tokens = burst
		}
	}
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0, nil
	}
	missing := 1 - b.tokens
	return false, time.Duration(missing / l.cfg.Rate * float64(time.Second)), nil
}

// sweep drops idle buckets at most once per half TTL. Caller holds l.mu.
func (l *Limiter) sweep(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	if !l.lastSweep.IsZero() && now.Sub(l.lastSweep) < l.cfg.TTL/2 {
		return
	}
	l.lastSweep = now
	for k, b := range l.buckets {
		if now.Sub(b.last) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}

// Len returns the number of live buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
