package assignment_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/ports/scheduletx"
)

// memStore is an in-memory store with all-or-nothing transactions.
type memStore struct {
	mu          sync.Mutex
	patients    map[uuid.UUID]domain.Patient
	profs       map[uuid.UUID]domain.Professional
	assignments []domain.Assignment
	entries     []domain.ScheduleEntry

	entryErr error

	// interleave runs inside the n-th transaction before fn, standing in for a
	// commit from another request.
	interleave func(s *memStore, n int)
	txs        int
}

func newMemStore() *memStore {
	return &memStore{
		patients: make(map[uuid.UUID]domain.Patient),
		profs:    make(map[uuid.UUID]domain.Professional),
	}
}

func (s *memStore) addPatient(p domain.Patient) domain.Patient {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.patients[p.ID] = p
	return p
}

func (s *memStore) addProfessional(p domain.Professional) domain.Professional {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.WorkingHours {
		p.WorkingHours[i].ProfessionalID = p.ID
	}
	s.profs[p.ID] = p
	return p
}

func (s *memStore) assignment(id uuid.UUID) domain.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assignments {
		if a.ID == id {
			return a
		}
	}
	return domain.Assignment{}
}

func (s *memStore) scheduleEntries() []domain.ScheduleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ScheduleEntry(nil), s.entries...)
}

func (s *memStore) WithTx(_ context.Context, fn func(tx scheduletx.Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs++
	if s.interleave != nil {
		s.interleave(s, s.txs)
	}

	savedA := append([]domain.Assignment(nil), s.assignments...)
	savedE := append([]domain.ScheduleEntry(nil), s.entries...)
	if err := fn(memTx{s}); err != nil {
		s.assignments, s.entries = savedA, savedE
		return err
	}
	return nil
}

func (s *memStore) GetPatient(_ context.Context, id uuid.UUID) (*domain.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.patient(id), nil
}

func (s *memStore) patient(id uuid.UUID) *domain.Patient {
	p, ok := s.patients[id]
	if !ok {
		return nil
	}
	return &p
}

func (s *memStore) GetProfessional(_ context.Context, id uuid.UUID) (*domain.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.professional(id), nil
}

func (s *memStore) professional(id uuid.UUID) *domain.Professional {
	p, ok := s.profs[id]
	if !ok {
		return nil
	}
	return &p
}

func (s *memStore) ListProfessionals(_ context.Context, limit, offset int) ([]domain.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Professional, 0, len(s.profs))
	for _, p := range s.profs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if offset >= len(out) {
		return []domain.Professional{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) GetWorkingHours(_ context.Context, professionalID uuid.UUID, weekday domain.Weekday) (*domain.WorkingHours, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hours(professionalID, weekday), nil
}

func (s *memStore) hours(professionalID uuid.UUID, weekday domain.Weekday) *domain.WorkingHours {
	p, ok := s.profs[professionalID]
	if !ok {
		return nil
	}
	return p.HoursOn(weekday)
}

func (s *memStore) CountActiveAssignments(_ context.Context, professionalID uuid.UUID, date time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count(professionalID, date), nil
}

func (s *memStore) count(professionalID uuid.UUID, date time.Time) int {
	n := 0
	for _, a := range s.assignments {
		if a.ProfessionalID == professionalID && a.Status == domain.StatusActive && sameDay(a.Date, date) {
			n++
		}
	}
	return n
}

func (s *memStore) ListActiveVisits(_ context.Context, professionalID uuid.UUID, date time.Time) ([]domain.Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Visit
	for _, a := range s.assignments {
		if a.ProfessionalID == professionalID && a.Status == domain.StatusActive && sameDay(a.Date, date) {
			out = append(out, domain.Visit{Assignment: a, Patient: s.patients[a.PatientID]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Assignment.StartTime < out[j].Assignment.StartTime })
	return out, nil
}

func (s *memStore) ListScheduleEntries(_ context.Context, professionalID uuid.UUID, date time.Time) ([]domain.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.ScheduleEntry{}
	for _, e := range s.entries {
		if e.ProfessionalID == professionalID && sameDay(e.Date, date) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

func sameDay(a, b time.Time) bool {
	return domain.FormatDate(a) == domain.FormatDate(b)
}

// memTx runs with memStore.mu held.
type memTx struct{ s *memStore }

func (t memTx) LockProfessional(_ context.Context, id uuid.UUID) (*domain.Professional, error) {
	return t.s.professional(id), nil
}

func (t memTx) GetPatient(_ context.Context, id uuid.UUID) (*domain.Patient, error) {
	return t.s.patient(id), nil
}

func (t memTx) GetWorkingHours(_ context.Context, professionalID uuid.UUID, weekday domain.Weekday) (*domain.WorkingHours, error) {
	return t.s.hours(professionalID, weekday), nil
}

func (t memTx) CountActiveAssignments(_ context.Context, professionalID uuid.UUID, date time.Time) (int, error) {
	return t.s.count(professionalID, date), nil
}

func (t memTx) GetAssignmentForUpdate(_ context.Context, id uuid.UUID) (*domain.Assignment, error) {
	for _, a := range t.s.assignments {
		if a.ID == id {
			a := a
			return &a, nil
		}
	}
	return nil, nil
}

func (t memTx) InsertAssignment(_ context.Context, a *domain.Assignment, capacity int) error {
	n := 0
	for _, x := range t.s.assignments {
		if x.ProfessionalID == a.ProfessionalID && x.Status == domain.StatusActive && sameDay(x.Date, a.Date) {
			n++
		}
	}
	if n >= capacity {
		return apperr.ErrUnavailable
	}
	t.s.assignments = append(t.s.assignments, *a)
	return nil
}

func (t memTx) UpdateAssignmentStatus(_ context.Context, id uuid.UUID, status domain.AssignmentStatus) error {
	for i := range t.s.assignments {
		if t.s.assignments[i].ID == id {
			t.s.assignments[i].Status = status
			return nil
		}
	}
	return errors.New("assignment vanished")
}

func (t memTx) InsertScheduleEntry(_ context.Context, e *domain.ScheduleEntry) error {
	if t.s.entryErr != nil {
		return t.s.entryErr
	}
	t.s.entries = append(t.s.entries, *e)
	return nil
}

func (t memTx) DeleteScheduleEntry(_ context.Context, assignmentID uuid.UUID) error {
	kept := t.s.entries[:0]
	for _, e := range t.s.entries {
		if e.AssignmentID != assignmentID {
			kept = append(kept, e)
		}
	}
	t.s.entries = kept
	return nil
}
