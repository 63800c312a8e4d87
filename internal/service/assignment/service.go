package assignment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/geo"
	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/service/duration"
	"homecare-scheduler/internal/service/skill"
	"homecare-scheduler/internal/service/slot"
)

// candidatePageSize is how many professionals Candidates reads per page.
const candidatePageSize = 200

// Deps are the scheduling components the orchestrator composes.
// Nil fields fall back to the default implementations.
type Deps struct {
	Skills    SkillMatcher
	Durations DurationResolver
	Slots     SlotCalculator
	Travel    TravelEstimator
	// Outcomes is optional; labels are operation and result.
	Outcomes *prometheus.CounterVec
}

// Service orchestrates assignment of patients to professionals.
type Service struct {
	repo             scheduleRepository
	skills           SkillMatcher
	durations        DurationResolver
	slots            SlotCalculator
	travel           TravelEstimator
	outcomes         *prometheus.CounterVec
	operationTimeout time.Duration
	logger           logx.Logger
	newID            func() uuid.UUID
	now              func() time.Time
}

// NewService creates a new assignment Service.
func NewService(r scheduleRepository, deps Deps, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if deps.Skills == nil {
		deps.Skills = skill.NewMatcher(nil)
	}
	if deps.Durations == nil {
		deps.Durations = duration.NewResolver(nil)
	}
	if deps.Slots == nil {
		deps.Slots = slot.NewCalculator()
	}
	if deps.Travel == nil {
		deps.Travel = geo.NewDefaultCalculator()
	}
	return &Service{
		repo:             r,
		skills:           deps.Skills,
		durations:        deps.Durations,
		slots:            deps.Slots,
		travel:           deps.Travel,
		outcomes:         deps.Outcomes,
		operationTimeout: timeout,
		logger:           logger,
		newID:            uuid.New,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) observe(operation string, err error) {
	if s.outcomes == nil {
		return
	}
	s.outcomes.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, apperr.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, apperr.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperr.ErrInvalid):
		return "invalid"
	case errors.Is(err, apperr.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

func validateRequest(req domain.AssignRequest) error {
	if req.PatientID == uuid.Nil || req.ProfessionalID == uuid.Nil || req.Date.IsZero() {
		return apperr.ErrInvalid
	}
	return nil
}

func validateActor(assignedBy string) (string, error) {
	by := strings.TrimSpace(assignedBy)
	if by == "" {
		return "", apperr.ErrInvalid
	}
	return by, nil
}

func validateDay(professionalID uuid.UUID, date time.Time) error {
	if professionalID == uuid.Nil || date.IsZero() {
		return apperr.ErrInvalid
	}
	return nil
}
