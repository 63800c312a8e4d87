package patient

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/logx"
)

const maxPageSize = 500

// Service coordinates patient business logic and orchestrates repository calls.
type Service struct {
	repo             patientRepository
	geocoder         Geocoder
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates a patient Service. A nil geocoder disables address lookups.
func NewService(r patientRepository, g Geocoder, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		geocoder:         g,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCreate(p *domain.Patient) error {
	if p == nil {
		return apperr.ErrInvalid
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)
	p.CareNeeded = strings.TrimSpace(p.CareNeeded)
	if p.Name == "" || p.Address == "" || p.CareNeeded == "" {
		return apperr.ErrInvalid
	}
	if p.EstimatedDuration != nil && *p.EstimatedDuration <= 0 {
		return apperr.ErrInvalid
	}
	if p.Coordinates != nil && !p.Coordinates.InServiceArea() {
		return apperr.ErrInvalid
	}
	return nil
}

func validatePage(limit, offset *int) error {
	if limit != nil && (*limit < 0 || *limit > maxPageSize) {
		return apperr.ErrInvalid
	}
	if offset != nil && *offset < 0 {
		return apperr.ErrInvalid
	}
	return nil
}

// Get retrieves a patient by its ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
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

// List returns patients with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Patient, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Create stores a new patient. Missing coordinates are looked up from the address;
// a failed lookup still creates the patient.
func (s *Service) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	if err := validateCreate(p); err != nil {
		return nil, err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Coordinates == nil {
		p.Coordinates = s.lookup(ctx, p.ID, p.Address)
	}
	p.CreatedAt = s.now()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateAddress replaces a patient's address and zone and re-resolves coordinates.
func (s *Service) UpdateAddress(ctx context.Context, u domain.PatientAddressUpdate) error {
	u.Address = strings.TrimSpace(u.Address)
	if u.ID == uuid.Nil || u.Address == "" {
		return apperr.ErrInvalid
	}
	if u.Coordinates != nil && !u.Coordinates.InServiceArea() {
		return apperr.ErrInvalid
	}
	if u.Coordinates == nil {
		u.Coordinates = s.lookup(ctx, u.ID, u.Address)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdateAddress(ctx, u)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// RefreshCoordinates geocodes the stored address again. It reports whether
// coordinates were stored.
func (s *Service) RefreshCoordinates(ctx context.Context, id uuid.UUID) (bool, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	c := s.lookup(ctx, id, p.Address)
	if c == nil {
		return false, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.SetCoordinates(ctx, id, c)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.ErrNotFound
	}
	return true, nil
}

// lookup is best effort: errors and unusable results yield nil.
func (s *Service) lookup(ctx context.Context, id uuid.UUID, address string) *domain.Coordinate {
	if s.geocoder == nil {
		return nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		s.logger.Warn("geocoding failed",
			logx.String("event", "geocode_failed"),
			logx.String("patient_id", id.String()),
			logx.Err(err),
		)
		return nil
	}
	if c == nil || !c.InServiceArea() {
		s.logger.Info("address not geocoded",
			logx.String("event", "geocode_empty"),
			logx.String("patient_id", id.String()),
		)
		return nil
	}
	return c
}
