package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"homecare-scheduler/internal/config"
	"homecare-scheduler/internal/http/handlers"
	"homecare-scheduler/internal/http/middleware/auth"
	"homecare-scheduler/internal/http/pprofserver"
	"homecare-scheduler/internal/http/router"
	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/metrics"
	"homecare-scheduler/internal/repository"
	"homecare-scheduler/internal/service/assignment"
	"homecare-scheduler/internal/service/patient"
	"homecare-scheduler/internal/service/professional"
)

const (
	apiServiceName    = "service-scheduler"
	workerServiceName = "scheduler-worker"
)

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the API container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the patient events worker container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, apiServiceName); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, true); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerGeocoder(container); err != nil {
		return nil, fmt.Errorf("geocoder: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the API container with default settings.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, serviceName string) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		func(cfg *config.Config) (logx.Logger, error) { return NewLogger(cfg, serviceName) },
		newRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		func(reg *prometheus.Registry) (*metrics.Set, error) { return metrics.NewSet(reg) },
		func(cfg *config.Config) time.Duration { return cfg.OperationTimeout },
	)
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc, migrate bool) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if migrate && cfg.AutoMigrate {
			if _, err := repository.NewMigrator(pool, logger).Up(ctx); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewPatientRepo,
		repository.NewProfessionalRepo,
		repository.NewScheduleRepo,
		func(repo *repository.PatientRepo, g patient.Geocoder, timeout time.Duration, logger logx.Logger) *patient.Service {
			return patient.NewService(repo, g, timeout, logger)
		},
		func(repo *repository.ProfessionalRepo, timeout time.Duration) *professional.Service {
			return professional.NewService(repo, timeout)
		},
		func(repo *repository.ScheduleRepo, set *metrics.Set, timeout time.Duration, logger logx.Logger) *assignment.Service {
			return assignment.NewService(repo, assignment.Deps{Outcomes: set.AssignmentOutcomes}, timeout, logger)
		},
	)
}

type serversOut struct {
	dig.Out

	Main  *http.Server
	Pprof *http.Server `name:"pprof_server"`
}

func newServers(cfg *config.Config, mux http.Handler, logger logx.Logger) serversOut {
	out := serversOut{
		Main: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
	if cfg.Pprof.Enabled {
		out.Pprof = &http.Server{
			Addr:              cfg.Pprof.Addr,
			Handler:           pprofserver.Handler(pprofserver.Config{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass}, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	return out
}

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		func(logger logx.Logger, pool *pgxpool.Pool) *handlers.Handlers {
			h := handlers.New(logger)
			if pool != nil {
				h = h.WithPinger(pool)
			}
			return h
		},
		func(logger logx.Logger, s *patient.Service) *handlers.PatientHandler {
			return handlers.NewPatientHandler(logger, s)
		},
		func(logger logx.Logger, s *professional.Service) *handlers.ProfessionalHandler {
			return handlers.NewProfessionalHandler(logger, s)
		},
		func(logger logx.Logger, s *assignment.Service) *handlers.AssignmentHandler {
			return handlers.NewAssignmentHandler(logger, s)
		},
		func(logger logx.Logger, s *assignment.Service, p *professional.Service) *handlers.PlanningHandler {
			return handlers.NewPlanningHandler(logger, s, p)
		},
		func(cfg *config.Config, logger logx.Logger) *auth.Middleware {
			return auth.New(cfg.Auth.Secret, cfg.Auth.Issuer, logger)
		},
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		newServers,
	)
}
