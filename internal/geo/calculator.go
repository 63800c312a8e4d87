package geo

import (
	"math"

	"homecare-scheduler/internal/domain"
)

// Calculator estimates travel between visit locations and orders routes.
type Calculator struct {
	zones ZoneTable
	start domain.Coordinate
}

// NewCalculator creates a Calculator. A nil table means DefaultZoneTable.
func NewCalculator(zones ZoneTable, start domain.Coordinate) *Calculator {
	if zones == nil {
		zones = DefaultZoneTable()
	}
	return &Calculator{zones: zones, start: start}
}

// NewDefaultCalculator uses the default zone table and the city center as route start.
func NewDefaultCalculator() *Calculator {
	return NewCalculator(nil, domain.CityCenter)
}

// Start returns the default route start.
func (c *Calculator) Start() domain.Coordinate { return c.start }

// ZoneTravelTime returns the table minutes for from→to. Unknown zones never fail.
func (c *Calculator) ZoneTravelTime(from, to domain.Zone) int {
	return c.zones.Minutes(from, to)
}

// TravelTimeBetween uses coordinates when both sides are pinned and the zone table otherwise.
func (c *Calculator) TravelTimeBetween(from, to domain.Location) int {
	fp, okFrom := from.(domain.Pinned)
	tp, okTo := to.(domain.Pinned)
	if okFrom && okTo {
		return TravelTime(fp.Coord, tp.Coord)
	}
	return c.ZoneTravelTime(zoneOf(from), zoneOf(to))
}

// OptimizeRoute orders patients nearest-neighbor first, starting at start
// (the calculator's default start when nil). Ties keep input order.
func (c *Calculator) OptimizeRoute(patients []domain.Patient, start *domain.Coordinate) []domain.Patient {
	if len(patients) == 0 {
		return []domain.Patient{}
	}
	if len(patients) == 1 {
		return []domain.Patient{patients[0]}
	}

	origin := c.start
	if start != nil {
		origin = *start
	}
	var current domain.Location = domain.Pinned{Coord: origin}

	remaining := append([]domain.Patient(nil), patients...)
	out := make([]domain.Patient, 0, len(patients))
	for len(remaining) > 0 {
		best, bestDist := 0, math.Inf(1)
		for i := range remaining {
			if d := c.proximity(current, remaining[i].Location()); d < bestDist {
				best, bestDist = i, d
			}
		}
		next := remaining[best]
		out = append(out, next)
		remaining = append(remaining[:best], remaining[best+1:]...)
		current = next.Location()
	}
	return out
}

// proximity is kilometers between pinned locations, else half the zone minutes.
func (c *Calculator) proximity(from, to domain.Location) float64 {
	fp, okFrom := from.(domain.Pinned)
	tp, okTo := to.(domain.Pinned)
	if okFrom && okTo {
		return Distance(fp.Coord, tp.Coord)
	}
	return float64(c.ZoneTravelTime(zoneOf(from), zoneOf(to))) / 2
}

func zoneOf(l domain.Location) domain.Zone {
	if l == nil {
		return ""
	}
	return l.Zone()
}
