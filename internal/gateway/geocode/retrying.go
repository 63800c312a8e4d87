package geocode

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/logx"
)

type counter interface {
	Inc()
}

// RetryConfig controls Retrying.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Retrying repeats throttled, failing and timed out lookups with exponential backoff.
type Retrying struct {
	next    Geocoder
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	sleep   func(context.Context, time.Duration) bool
}

// NewRetrying wraps next. MaxAttempts below one means a single attempt.
func NewRetrying(next Geocoder, logger logx.Logger, retries counter, cfg RetryConfig) *Retrying {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Retrying{next: next, logger: logger, retries: retries, cfg: cfg, sleep: sleepWithContext}
}

// Geocode calls next until it succeeds, fails permanently or attempts run out.
func (g *Retrying) Geocode(ctx context.Context, address string) (*domain.Coordinate, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		c, err := g.next.Geocode(ctx, address)
		if err == nil {
			return c, nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("geocoder retry",
			logx.String("event", "geocode_retry"),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !g.sleep(ctx, delay) {
			break
		}
	}
	return nil, lastErr
}

func isRetryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == http.StatusTooManyRequests || se.Code >= http.StatusInternalServerError
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max || d < 0 {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
