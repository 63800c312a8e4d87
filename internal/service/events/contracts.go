//go:generate mockgen -source=contracts.go -destination=events_mocks_test.go -package=events_test

package events

import (
	"context"

	"github.com/google/uuid"
)

// CoordinatesPort is the subset of the patient service the processor needs.
type CoordinatesPort interface {
	RefreshCoordinates(ctx context.Context, id uuid.UUID) (bool, error)
}
