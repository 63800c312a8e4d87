package scheduletx

import (
	"context"
	"time"

	"github.com/google/uuid"

	"homecare-scheduler/internal/domain"
)

// Repository is the store seen from inside one scheduling transaction.
// Lookups return nil, nil when the row does not exist.
type Repository interface {
	LockProfessional(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	GetWorkingHours(ctx context.Context, professionalID uuid.UUID, weekday domain.Weekday) (*domain.WorkingHours, error)
	CountActiveAssignments(ctx context.Context, professionalID uuid.UUID, date time.Time) (int, error)
	GetAssignmentForUpdate(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	// InsertAssignment returns apperr.ErrUnavailable when the professional already
	// has capacity active assignments on the date.
	InsertAssignment(ctx context.Context, a *domain.Assignment, capacity int) error
	UpdateAssignmentStatus(ctx context.Context, id uuid.UUID, status domain.AssignmentStatus) error
	InsertScheduleEntry(ctx context.Context, e *domain.ScheduleEntry) error
	DeleteScheduleEntry(ctx context.Context, assignmentID uuid.UUID) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
