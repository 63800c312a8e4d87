package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/repository"
)

const (
	dbAttemptTimeout = 3 * time.Second
	dbMaxRetryDelay  = 5 * time.Second
)

var newPool = repository.NewPool

// connectDbWithRetry opens the pool, waiting between attempts. The wait doubles up to dbMaxRetryDelay.
func connectDbWithRetry(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error) {
	if retries < 1 {
		retries = 1
	}
	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, dbAttemptTimeout)
		pool, err := newPool(attemptCtx, dsn)
		cancel()
		if err == nil {
			logger.Info("db connected", logx.String("event", "db_connected"), logx.Int("attempt", attempt))
			return pool, nil
		}
		lastErr = err
		logger.Warn("db connect failed",
			logx.String("event", "db_connect_failed"),
			logx.Int("attempt", attempt),
			logx.Int("retries", retries),
			logx.Err(err),
		)
		if attempt == retries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay *= 2; delay > dbMaxRetryDelay {
			delay = dbMaxRetryDelay
		}
	}
	return nil, fmt.Errorf("db connect failed after %d attempts: %w", retries, lastErr)
}
