package geo

import "homecare-scheduler/internal/domain"

// Known zones of the service area.
const (
	ZoneCityCenter  domain.Zone = "Keskusta (City Center)"
	ZoneTuira       domain.Zone = "Tuira"
	ZoneRaksila     domain.Zone = "Raksila"
	ZoneKarjasilta  domain.Zone = "Karjasilta"
	ZoneKaukovainio domain.Zone = "Kaukovainio"
	ZoneLinnanmaa   domain.Zone = "Linnanmaa"
	ZonePateniemi   domain.Zone = "Pateniemi"
	ZoneHaukipudas  domain.Zone = "Haukipudas"
)

// DefaultZoneMinutes is returned for any zone pair missing from the table.
const DefaultZoneMinutes = 15

// ZoneTable holds travel minutes from one zone to another.
// The table is directional; some pairs differ by direction in the source data.
type ZoneTable map[domain.Zone]map[domain.Zone]int

// Minutes looks up from→to, falling back to DefaultZoneMinutes.
func (t ZoneTable) Minutes(from, to domain.Zone) int {
	row, ok := t[from]
	if !ok {
		return DefaultZoneMinutes
	}
	m, ok := row[to]
	if !ok {
		return DefaultZoneMinutes
	}
	return m
}

// DefaultZoneTable returns a fresh copy of the service area travel-time table.
func DefaultZoneTable() ZoneTable {
	order := []domain.Zone{
		ZoneCityCenter, ZoneTuira, ZoneRaksila, ZoneKarjasilta,
		ZoneKaukovainio, ZoneLinnanmaa, ZonePateniemi, ZoneHaukipudas,
	}
	minutes := [][]int{
		{5, 10, 10, 12, 15, 20, 20, 30},
		{10, 5, 15, 18, 20, 15, 15, 25},
		{10, 14, 5, 10, 12, 20, 22, 32},
		{12, 18, 10, 5, 10, 25, 25, 35},
		{15, 20, 12, 10, 5, 28, 28, 38},
		{20, 15, 20, 25, 28, 5, 12, 20},
		{20, 15, 22, 25, 28, 12, 5, 15},
		{35, 25, 32, 35, 38, 20, 15, 5},
	}

	t := make(ZoneTable, len(order))
	for i, from := range order {
		row := make(map[domain.Zone]int, len(order))
		for j, to := range order {
			row[to] = minutes[i][j]
		}
		t[from] = row
	}
	return t
}
