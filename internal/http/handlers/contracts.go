package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"homecare-scheduler/internal/domain"
)

type patientUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Patient, error)
	Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	UpdateAddress(ctx context.Context, u domain.PatientAddressUpdate) error
}

type professionalUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Professional, error)
	Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error)
	ReplaceWorkingHours(ctx context.Context, id uuid.UUID, hours []domain.WorkingHours) error
}

type assignmentUsecase interface {
	AssignOne(ctx context.Context, req domain.AssignRequest, assignedBy string) domain.AssignOutcome
	AssignBulk(ctx context.Context, reqs []domain.AssignRequest, assignedBy string) domain.BulkResult
	Reassign(ctx context.Context, assignmentID, professionalID uuid.UUID, reason, assignedBy string) (domain.Assignment, error)
	Complete(ctx context.Context, assignmentID uuid.UUID) (domain.Assignment, error)
	Cancel(ctx context.Context, assignmentID uuid.UUID) (domain.Assignment, error)
}

type planningUsecase interface {
	AvailableSlot(ctx context.Context, professionalID uuid.UUID, date time.Time) (domain.Slot, error)
	Candidates(ctx context.Context, patientID uuid.UUID, date time.Time) ([]domain.Candidate, error)
	Route(ctx context.Context, professionalID uuid.UUID, date time.Time, start *domain.Coordinate) (domain.Route, error)
	DaySchedule(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]domain.ScheduleEntry, error)
}
