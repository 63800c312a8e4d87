package handlers_test

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"homecare-scheduler/internal/domain"
)

type stubPatients struct {
	getFn    func(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	listFn   func(ctx context.Context, limit, offset *int) ([]domain.Patient, error)
	createFn func(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	updateFn func(ctx context.Context, u domain.PatientAddressUpdate) error
}

func (s *stubPatients) Get(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	return s.getFn(ctx, id)
}

func (s *stubPatients) List(ctx context.Context, limit, offset *int) ([]domain.Patient, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubPatients) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	return s.createFn(ctx, p)
}

func (s *stubPatients) UpdateAddress(ctx context.Context, u domain.PatientAddressUpdate) error {
	return s.updateFn(ctx, u)
}

type stubProfessionals struct {
	getFn     func(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
	listFn    func(ctx context.Context, limit, offset *int) ([]domain.Professional, error)
	createFn  func(ctx context.Context, p *domain.Professional) (*domain.Professional, error)
	replaceFn func(ctx context.Context, id uuid.UUID, hours []domain.WorkingHours) error
}

func (s *stubProfessionals) Get(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	return s.getFn(ctx, id)
}

func (s *stubProfessionals) List(ctx context.Context, limit, offset *int) ([]domain.Professional, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubProfessionals) Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error) {
	return s.createFn(ctx, p)
}

func (s *stubProfessionals) ReplaceWorkingHours(ctx context.Context, id uuid.UUID, hours []domain.WorkingHours) error {
	return s.replaceFn(ctx, id, hours)
}

type stubAssignments struct {
	oneFn      func(ctx context.Context, req domain.AssignRequest, by string) domain.AssignOutcome
	bulkFn     func(ctx context.Context, reqs []domain.AssignRequest, by string) domain.BulkResult
	reassignFn func(ctx context.Context, id, prof uuid.UUID, reason, by string) (domain.Assignment, error)
	completeFn func(ctx context.Context, id uuid.UUID) (domain.Assignment, error)
	cancelFn   func(ctx context.Context, id uuid.UUID) (domain.Assignment, error)
}

func (s *stubAssignments) AssignOne(ctx context.Context, req domain.AssignRequest, by string) domain.AssignOutcome {
	return s.oneFn(ctx, req, by)
}

func (s *stubAssignments) AssignBulk(ctx context.Context, reqs []domain.AssignRequest, by string) domain.BulkResult {
	return s.bulkFn(ctx, reqs, by)
}

func (s *stubAssignments) Reassign(ctx context.Context, id, prof uuid.UUID, reason, by string) (domain.Assignment, error) {
	return s.reassignFn(ctx, id, prof, reason, by)
}

func (s *stubAssignments) Complete(ctx context.Context, id uuid.UUID) (domain.Assignment, error) {
	return s.completeFn(ctx, id)
}

func (s *stubAssignments) Cancel(ctx context.Context, id uuid.UUID) (domain.Assignment, error) {
	return s.cancelFn(ctx, id)
}

type stubPlanning struct {
	slotFn       func(ctx context.Context, id uuid.UUID, date time.Time) (domain.Slot, error)
	candidatesFn func(ctx context.Context, id uuid.UUID, date time.Time) ([]domain.Candidate, error)
	routeFn      func(ctx context.Context, id uuid.UUID, date time.Time, start *domain.Coordinate) (domain.Route, error)
	scheduleFn   func(ctx context.Context, id uuid.UUID, date time.Time) ([]domain.ScheduleEntry, error)
}

func (s *stubPlanning) AvailableSlot(ctx context.Context, id uuid.UUID, date time.Time) (domain.Slot, error) {
	return s.slotFn(ctx, id, date)
}

func (s *stubPlanning) Candidates(ctx context.Context, id uuid.UUID, date time.Time) ([]domain.Candidate, error) {
	return s.candidatesFn(ctx, id, date)
}

func (s *stubPlanning) Route(ctx context.Context, id uuid.UUID, date time.Time, start *domain.Coordinate) (domain.Route, error) {
	return s.routeFn(ctx, id, date, start)
}

func (s *stubPlanning) DaySchedule(ctx context.Context, id uuid.UUID, date time.Time) ([]domain.ScheduleEntry, error) {
	return s.scheduleFn(ctx, id, date)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rc))
}
