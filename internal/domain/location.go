package domain

// Coordinate is a geographic point in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Service area bounding box. Points outside it are treated as ungeocodable.
const (
	MinLat = 64.85
	MaxLat = 65.15
	MinLng = 25.20
	MaxLng = 25.80
)

// CityCenter is the default start of a professional's route.
var CityCenter = Coordinate{Lat: 65.0121, Lng: 25.4651}

// InServiceArea reports whether c lies inside the service area bounding box.
func (c Coordinate) InServiceArea() bool {
	return c.Lat >= MinLat && c.Lat <= MaxLat && c.Lng >= MinLng && c.Lng <= MaxLng
}

// Zone is a coarse named area used when exact coordinates are unavailable.
type Zone string

// Location is where a visit happens: either Pinned to a coordinate or known only by ZoneOnly.
type Location interface {
	Zone() Zone
	isLocation()
}

// Pinned is a location with a known coordinate. Area is kept for zone based fallbacks.
type Pinned struct {
	Coord Coordinate
	Area  Zone
}

// Zone returns the zone the coordinate belongs to, if known.
func (p Pinned) Zone() Zone { return p.Area }

func (Pinned) isLocation() {}

// ZoneOnly is a location known only by its zone.
type ZoneOnly struct {
	Area Zone
}

// Zone returns the zone name.
func (z ZoneOnly) Zone() Zone { return z.Area }

func (ZoneOnly) isLocation() {}
