package geocode

import (
	"context"

	"homecare-scheduler/internal/domain"
)

// AreaFilter drops coordinates outside the service area bounding box.
type AreaFilter struct {
	next Geocoder
}

// NewAreaFilter wraps next.
func NewAreaFilter(next Geocoder) *AreaFilter { return &AreaFilter{next: next} }

// Geocode returns nil for matches outside the service area.
func (f *AreaFilter) Geocode(ctx context.Context, address string) (*domain.Coordinate, error) {
	c, err := f.next.Geocode(ctx, address)
	if err != nil || c == nil {
		return nil, err
	}
	if !c.InServiceArea() {
		return nil, nil
	}
	return c, nil
}
