package domain

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a home-care patient.
type Patient struct {
	ID          uuid.UUID
	Name        string
	Address     string
	Zone        Zone
	Coordinates *Coordinate
	CareNeeded  string
	// EstimatedDuration overrides the care-type visit length, in minutes.
	EstimatedDuration *int
	CreatedAt         time.Time
}

// Location returns the patient's coordinate when known and its zone otherwise.
func (p Patient) Location() Location {
	if p.Coordinates != nil {
		return Pinned{Coord: *p.Coordinates, Area: p.Zone}
	}
	return ZoneOnly{Area: p.Zone}
}

// PatientAddressUpdate carries a new address for a patient.
// A nil Coordinates means the address has to be geocoded.
type PatientAddressUpdate struct {
	ID          uuid.UUID
	Address     string
	Zone        Zone
	Coordinates *Coordinate
}
