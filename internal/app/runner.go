package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"homecare-scheduler/internal/logx"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP API.
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a Runner serving the API container.
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP server using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	finish(container, r.runFn(container))
}

// finish logs how a process stopped. Errors other than cancellation or a startup timeout panic.
func finish(container *dig.Container, err error) {
	if err == nil {
		return
	}
	var logger logx.Logger = logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		_ = logger.Sync()
		panic(err)
	}
	_ = logger.Sync()
}

type runIn struct {
	dig.In

	Ctx    context.Context
	Logger logx.Logger
	Pool   *pgxpool.Pool
	Server *http.Server
	Pprof  *http.Server  `name:"pprof_server" optional:"true"`
	Redis  *redis.Client `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in runIn) error {
	startServer(in.Server, in.Logger, "api")
	if in.Pprof != nil {
		startServer(in.Pprof, in.Logger, "pprof")
	}

	<-in.Ctx.Done()
	in.Logger.Info("shutting down", logx.String("event", "shutdown"))

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, time.Second)
	}
	closeResources(in.Pool, in.Redis, in.Logger)
	return in.Ctx.Err()
}

func startServer(server *http.Server, logger logx.Logger, name string) {
	go func() {
		logger.Info("listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen error", logx.String("server", name), logx.Any("err", err))
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.Any("err", err))
		if err := srv.Close(); err != nil {
			logger.Warn("server close error", logx.Any("err", err))
		}
	}
}

func closeResources(pool *pgxpool.Pool, rdb *redis.Client, logger logx.Logger) {
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Warn("redis close error", logx.Any("err", err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
