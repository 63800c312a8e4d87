package professional

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/domain"
)

const maxPageSize = 500

// Service coordinates professional business logic and orchestrates repository calls.
type Service struct {
	repo             professionalRepository
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates and configures a professional Service.
func NewService(r professionalRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate trims labels and checks the weekly schedule.
func validateCreate(p *domain.Professional) error {
	if p == nil {
		return apperr.ErrInvalid
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return apperr.ErrInvalid
	}
	specs := make([]string, 0, len(p.Specializations))
	for _, s := range p.Specializations {
		if s = strings.TrimSpace(s); s != "" {
			specs = append(specs, s)
		}
	}
	if len(specs) == 0 {
		return apperr.ErrInvalid
	}
	p.Specializations = specs
	return validateHours(p.WorkingHours)
}

func validateHours(hours []domain.WorkingHours) error {
	var seen [8]bool
	for _, h := range hours {
		if !h.Weekday.Valid() || seen[h.Weekday] {
			return apperr.ErrInvalid
		}
		seen[h.Weekday] = true
		if h.Start < 0 || h.End <= h.Start {
			return apperr.ErrInvalid
		}
	}
	return nil
}

// Get retrieves a professional with working hours by its ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	if id == uuid.Nil {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

// List returns professionals with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Professional, error) {
	if limit != nil && (*limit < 0 || *limit > maxPageSize) {
		return nil, apperr.ErrInvalid
	}
	if offset != nil && *offset < 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Create persists a new professional together with its working hours.
func (s *Service) Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error) {
	if err := validateCreate(p); err != nil {
		return nil, err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.WorkingHours {
		p.WorkingHours[i].ProfessionalID = p.ID
	}
	p.CreatedAt = s.now()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ReplaceWorkingHours swaps the whole weekly schedule. An empty list means the
// professional works no day. Existing assignments are left untouched.
func (s *Service) ReplaceWorkingHours(ctx context.Context, id uuid.UUID, hours []domain.WorkingHours) error {
	if id == uuid.Nil {
		return apperr.ErrInvalid
	}
	if err := validateHours(hours); err != nil {
		return err
	}
	for i := range hours {
		hours[i].ProfessionalID = id
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.ReplaceWorkingHours(ctx, id, hours)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}
