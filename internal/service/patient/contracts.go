package patient

import (
	"context"

	"github.com/google/uuid"

	"homecare-scheduler/internal/domain"
)

// patientRepository defines storage operations required by the business layer.
type patientRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Patient, error)
	Create(ctx context.Context, p *domain.Patient) error
	UpdateAddress(ctx context.Context, u domain.PatientAddressUpdate) (bool, error)
	SetCoordinates(ctx context.Context, id uuid.UUID, c *domain.Coordinate) (bool, error)
}

// Geocoder resolves a free-text address to a coordinate.
// A nil coordinate with a nil error means the address is unknown.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*domain.Coordinate, error)
}
