package events

import (
	"context"
	"errors"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/logx"
)

// Processor handles patient events.
type Processor struct {
	patients CoordinatesPort
	logger   logx.Logger
	factory  *actionFactory
}

// NewProcessor creates a new events.Processor
func NewProcessor(patients CoordinatesPort, logger logx.Logger) *Processor {
	p := &Processor{patients: patients, logger: logger}
	p.factory = newActionFactory(p.onGeocode)
	return p
}

// Handle processes a single Event. Unknown kinds are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Kind)
	if !ok {
		p.logger.Debug("patient event ignored", logx.String("kind", e.Kind))
		return nil
	}
	return fn(ctx, e)
}

// onGeocode refreshes coordinates. A deleted patient is not an error.
func (p *Processor) onGeocode(ctx context.Context, e Event) error {
	stored, err := p.patients.RefreshCoordinates(ctx, e.PatientID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	p.logger.Info("patient coordinates refreshed",
		logx.String("event", "patient_geocoded"),
		logx.String("patient_id", e.PatientID.String()),
		logx.Bool("stored", stored),
	)
	return nil
}
