package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentStatus represents the lifecycle state of an assignment.
type AssignmentStatus string

// List of assignment statuses
const (
	StatusActive     AssignmentStatus = "active"
	StatusCompleted  AssignmentStatus = "completed"
	StatusReassigned AssignmentStatus = "reassigned"
	StatusCancelled  AssignmentStatus = "cancelled"
)

var allowedStatuses = [...]AssignmentStatus{
	StatusActive, StatusCompleted, StatusReassigned, StatusCancelled,
}

// Valid checks if the AssignmentStatus is valid
func (s AssignmentStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Assignment links a patient to a professional for one date and start time.
type Assignment struct {
	ID             uuid.UUID
	PatientID      uuid.UUID
	ProfessionalID uuid.UUID
	Date           time.Time
	StartTime      ClockTime
	Status         AssignmentStatus
	AssignedBy     string
	Reason         string
	// PreviousID points at the reassigned assignment this one replaces.
	PreviousID *uuid.UUID
	CreatedAt  time.Time
}

// ScheduleEntry is the calendar copy of an assignment. It is never used for capacity counting.
type ScheduleEntry struct {
	ID             uuid.UUID
	AssignmentID   uuid.UUID
	ProfessionalID uuid.UUID
	PatientID      uuid.UUID
	Date           time.Time
	Start          ClockTime
	End            ClockTime
}

// Visit is an active assignment together with its patient.
type Visit struct {
	Assignment Assignment
	Patient    Patient
}

// AssignRequest asks for one patient to be assigned to one professional on a date.
type AssignRequest struct {
	PatientID      uuid.UUID
	ProfessionalID uuid.UUID
	Date           time.Time
}

// AssignOutcome is the structured result of a single assignment attempt.
type AssignOutcome struct {
	Request       AssignRequest
	Success       bool
	Assignment    *Assignment
	SuggestedTime string
	// Slot is set whenever the slot calculator ran, also on failure.
	Slot *Slot
	Err  error
}

// BulkResult aggregates the outcomes of a bulk assignment.
type BulkResult struct {
	Total      int
	Successful int
	Failed     int
	Results    []AssignOutcome
}
