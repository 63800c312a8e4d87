package app

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/transport/kafka"
)

// WorkerRunner runs the patient events consumer.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes until the container's context is done. Any other failure panics.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	finish(container, r.runFn(container))
}

type workerIn struct {
	dig.In

	Ctx      context.Context
	Pool     *pgxpool.Pool
	Logger   logx.Logger
	Consumer *kafka.Consumer
	Redis    *redis.Client `optional:"true"`
}

func runWorker(container *dig.Container) error {
	return container.Invoke(func(in workerIn) error {
		return workerRun(in.Ctx, in.Pool, in.Logger, in.Consumer, in.Redis)
	})
}

func workerRun(ctx context.Context, pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer, rdb *redis.Client) error {
	if consumer == nil {
		closeResources(pool, rdb, logger)
		return errors.New("kafka consumer is nil: worker container misconfigured")
	}
	defer closeWorker(pool, rdb, logger, consumer)

	logger.Info("scheduler worker started", logx.String("event", "worker_started"))
	return consumer.Run(ctx)
}

func closeWorker(pool *pgxpool.Pool, rdb *redis.Client, logger logx.Logger, consumer *kafka.Consumer) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
	closeResources(pool, rdb, logger)
	_ = logger.Sync()
}
