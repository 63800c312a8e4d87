package geocode

import (
	"context"

	"homecare-scheduler/internal/domain"
)

type waiter interface {
	Wait(ctx context.Context, key string) error
}

// throttleKey is shared by every call; the upstream limit is per client, not per address.
const throttleKey = "geocoder"

// Throttled paces calls to next through a token bucket.
type Throttled struct {
	next    Geocoder
	limiter waiter
}

// NewThrottled wraps next. A nil limiter returns next unchanged.
func NewThrottled(next Geocoder, limiter waiter) Geocoder {
	if limiter == nil {
		return next
	}
	return &Throttled{next: next, limiter: limiter}
}

// Geocode waits for a token and delegates.
func (t *Throttled) Geocode(ctx context.Context, address string) (*domain.Coordinate, error) {
	if err := t.limiter.Wait(ctx, throttleKey); err != nil {
		return nil, err
	}
	return t.next.Geocode(ctx, address)
}
