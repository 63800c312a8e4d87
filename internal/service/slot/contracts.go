//go:generate mockgen -source=contracts.go -destination=slot_mocks_test.go -package=slot_test

package slot

import (
	"context"
	"time"

	"github.com/google/uuid"

	"homecare-scheduler/internal/domain"
)

// Reader is the store access the slot calculator needs.
// GetWorkingHours returns nil, nil when the professional does not work that weekday.
type Reader interface {
	GetWorkingHours(ctx context.Context, professionalID uuid.UUID, weekday domain.Weekday) (*domain.WorkingHours, error)
	CountActiveAssignments(ctx context.Context, professionalID uuid.UUID, date time.Time) (int, error)
}
