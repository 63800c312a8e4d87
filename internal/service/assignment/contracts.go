//go:generate mockgen -source=contracts.go -destination=assignment_mocks_test.go -package=assignment_test

package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/ports/scheduletx"
	"homecare-scheduler/internal/service/slot"
)

type scheduleRepository interface {
	WithTx(ctx context.Context, fn func(tx scheduletx.Repository) error) error
	GetPatient(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	GetProfessional(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
	ListProfessionals(ctx context.Context, limit, offset int) ([]domain.Professional, error)
	GetWorkingHours(ctx context.Context, professionalID uuid.UUID, weekday domain.Weekday) (*domain.WorkingHours, error)
	CountActiveAssignments(ctx context.Context, professionalID uuid.UUID, date time.Time) (int, error)
	ListActiveVisits(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]domain.Visit, error)
	ListScheduleEntries(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]domain.ScheduleEntry, error)
}

// SkillMatcher decides whether specializations cover a care need.
type SkillMatcher interface {
	Matches(careNeeded string, specializations []string) bool
}

// DurationResolver returns the visit length for a care type.
type DurationResolver interface {
	Duration(careType string, override *int) time.Duration
}

// SlotCalculator computes the next slot for a professional.
type SlotCalculator interface {
	Evaluate(hours *domain.WorkingHours, count int) domain.Slot
	Available(ctx context.Context, r slot.Reader, professionalID uuid.UUID, date time.Time, batch *slot.BatchLoad) (domain.Slot, error)
	Capacity() int
}

// TravelEstimator estimates travel and orders routes.
type TravelEstimator interface {
	TravelTimeBetween(from, to domain.Location) int
	OptimizeRoute(patients []domain.Patient, start *domain.Coordinate) []domain.Patient
	Start() domain.Coordinate
}
