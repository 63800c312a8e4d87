package professional

import (
	"context"

	"github.com/google/uuid"

	"homecare-scheduler/internal/domain"
)

// professionalRepository defines storage operations required by the business layer.
type professionalRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Professional, error)
	Create(ctx context.Context, p *domain.Professional) error
	ReplaceWorkingHours(ctx context.Context, id uuid.UUID, hours []domain.WorkingHours) (bool, error)
}
