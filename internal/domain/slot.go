package domain

import (
	"time"

	"github.com/google/uuid"

	"homecare-scheduler/internal/apperr"
)

// Scheduling constants shared by every professional.
const (
	// DailyCapacity is the maximum number of active visits per professional and day.
	DailyCapacity = 4
	// SlotSpacing is the fixed offset between consecutive suggested start times.
	SlotSpacing = 120 * time.Minute
	// MinSlotLength is the minimum time that must remain before working hours end.
	MinSlotLength = 60 * time.Minute
)

// Slot reasons
const (
	ReasonNoWorkingHours = "no working hours for this day"
	ReasonNoTimeSlots    = "no time slots available"
	ReasonVisitTooLong   = "visit does not fit within working hours"
)

// Slot is the slot calculator's answer for a professional and date.
type Slot struct {
	Available         bool
	SuggestedTime     ClockTime
	Reason            string
	PatientCountOnDay int
	MaxCapacity       int
	// WorkingEnd is the end of the working-hours window the slot was computed in.
	WorkingEnd ClockTime
}

// SlotUnavailableError reports a slot that could not be granted.
type SlotUnavailableError struct {
	Slot Slot
}

func (e *SlotUnavailableError) Error() string {
	return "slot unavailable: " + e.Slot.Reason
}

// Unwrap makes errors.Is(err, apperr.ErrUnavailable) hold.
func (e *SlotUnavailableError) Unwrap() error { return apperr.ErrUnavailable }

// Candidate is a professional able to take a patient, with its slot on the requested date.
type Candidate struct {
	Professional  Professional
	Slot          Slot
	TravelMinutes int
}

// RouteStop is one visit on an ordered route.
type RouteStop struct {
	Patient Patient
	// TravelMinutes is the estimated travel time from the previous stop.
	TravelMinutes int
}

// Route is a professional's ordered visits for one day.
type Route struct {
	ProfessionalID     uuid.UUID
	Date               time.Time
	Stops              []RouteStop
	TotalTravelMinutes int
}
