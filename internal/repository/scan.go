package repository

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"homecare-scheduler/internal/domain"
)

// Clock columns are read as to_char(col, 'HH24:MI') and written as $n::time.

const patientColumns = `id, name, address, zone, lat, lng, care_needed, estimated_duration, created_at`

func scanPatient(row pgx.Row) (*domain.Patient, error) {
	var (
		p        domain.Patient
		zone     string
		lat, lng *float64
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Address, &zone, &lat, &lng, &p.CareNeeded, &p.EstimatedDuration, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Zone = domain.Zone(zone)
	if lat != nil && lng != nil {
		p.Coordinates = &domain.Coordinate{Lat: *lat, Lng: *lng}
	}
	return &p, nil
}

func coordArgs(c *domain.Coordinate) (lat, lng *float64) {
	if c == nil {
		return nil, nil
	}
	return &c.Lat, &c.Lng
}

const assignmentColumns = `id, patient_id, professional_id, assignment_date, to_char(start_time, 'HH24:MI'),
	status, assigned_by, reason, previous_id, created_at`

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var (
		a      domain.Assignment
		start  string
		status string
	)
	if err := row.Scan(&a.ID, &a.PatientID, &a.ProfessionalID, &a.Date, &start,
		&status, &a.AssignedBy, &a.Reason, &a.PreviousID, &a.CreatedAt); err != nil {
		return nil, err
	}
	t, err := domain.ParseClock(start)
	if err != nil {
		return nil, fmt.Errorf("assignment %s start: %w", a.ID, err)
	}
	a.StartTime = t
	a.Status = domain.AssignmentStatus(status)
	return &a, nil
}

func scanWorkingHours(row pgx.Row) (domain.WorkingHours, error) {
	var (
		h          domain.WorkingHours
		start, end string
	)
	if err := row.Scan(&h.ProfessionalID, &h.Weekday, &start, &end); err != nil {
		return h, err
	}
	var err error
	if h.Start, err = domain.ParseClock(start); err != nil {
		return h, err
	}
	if h.End, err = domain.ParseClock(end); err != nil {
		return h, err
	}
	return h, nil
}
