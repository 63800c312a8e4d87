package app

import (
	"context"
	"fmt"

	"go.uber.org/dig"

	"homecare-scheduler/internal/config"
	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/repository"
	"homecare-scheduler/internal/service/events"
	"homecare-scheduler/internal/service/patient"
	"homecare-scheduler/internal/transport/kafka"
)

// MustBuildWorkerContainer builds the worker container with default settings.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, workerServiceName); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, false); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerGeocoder(container); err != nil {
		return nil, fmt.Errorf("geocoder: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		repository.NewPatientRepo,
		func(repo *repository.PatientRepo, g patient.Geocoder, cfg *config.Config, logger logx.Logger) *patient.Service {
			return patient.NewService(repo, g, cfg.OperationTimeout, logger)
		},
		func(s *patient.Service, logger logx.Logger) *events.Processor {
			return events.NewProcessor(s, logger)
		},
		newKafkaConsumer,
	)
}

// newKafkaConsumer returns nil when Kafka is not configured; the worker refuses to start then.
func newKafkaConsumer(cfg *config.Config, logger logx.Logger, p *events.Processor) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, p.Handle)
}
