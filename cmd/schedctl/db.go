package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"homecare-scheduler/internal/app"
	"homecare-scheduler/internal/config"
	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/repository"
)

const connectTimeout = 10 * time.Second

// connect loads configuration and opens a pool to the configured database.
func connect(ctx context.Context) (*config.Config, *pgxpool.Pool, logx.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := app.NewLogger(cfg, "schedctl")
	if err != nil {
		return nil, nil, nil, err
	}

	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	pool, err := repository.NewPool(cctx, cfg.DB.DSN())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect: %w", err)
	}
	return cfg, pool, logger, nil
}
