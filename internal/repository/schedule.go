package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/domain"
	"homecare-scheduler/internal/ports/scheduletx"
)

// ScheduleRepo backs the assignment orchestrator.
type ScheduleRepo struct {
	db *pgxpool.Pool
}

// NewScheduleRepo creates a new ScheduleRepo.
func NewScheduleRepo(db *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *ScheduleRepo) WithTx(ctx context.Context, fn func(tx scheduletx.Repository) error) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&TxRepo{tx: tx})
	})
}

// GetPatient returns a patient or nil.
func (r *ScheduleRepo) GetPatient(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	return getPatient(ctx, r.db, id)
}

// GetProfessional returns a professional with working hours or nil.
func (r *ScheduleRepo) GetProfessional(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	return getProfessional(ctx, r.db, id, false)
}

// ListProfessionals returns a page of professionals with working hours.
func (r *ScheduleRepo) ListProfessionals(ctx context.Context, limit, offset int) ([]domain.Professional, error) {
	return listProfessionals(ctx, r.db, &limit, &offset)
}

// GetWorkingHours returns the window for a weekday or nil when the professional is off.
func (r *ScheduleRepo) GetWorkingHours(ctx context.Context, professionalID uuid.UUID, weekday domain.Weekday) (*domain.WorkingHours, error) {
	return getWorkingHours(ctx, r.db, professionalID, weekday)
}

// CountActiveAssignments counts active assignments for a professional and date.
func (r *ScheduleRepo) CountActiveAssignments(ctx context.Context, professionalID uuid.UUID, date time.Time) (int, error) {
	return countActive(ctx, r.db, professionalID, date)
}

// ListActiveVisits returns the day's active assignments joined with their patients, by start time.
func (r *ScheduleRepo) ListActiveVisits(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]domain.Visit, error) {
	rows, err := r.db.Query(ctx, `
        SELECT a.id, a.patient_id, a.professional_id, a.assignment_date, to_char(a.start_time, 'HH24:MI'),
               a.status, a.assigned_by, a.reason, a.previous_id, a.created_at,
               p.id, p.name, p.address, p.zone, p.lat, p.lng, p.care_needed, p.estimated_duration, p.created_at
        FROM assignments a
        JOIN patients p ON p.id = a.patient_id
        WHERE a.professional_id = $1 AND a.assignment_date = $2 AND a.status = $3
        ORDER BY a.start_time, a.id
    `, professionalID, date, string(domain.StatusActive))
	if err != nil {
		return nil, fmt.Errorf("list active visits: %w", err)
	}
	defer rows.Close()

	var out []domain.Visit
	for rows.Next() {
		var (
			v          domain.Visit
			start      string
			status     string
			zone       string
			lat, lng   *float64
			a, p       = &v.Assignment, &v.Patient
			scanTarget = []any{
				&a.ID, &a.PatientID, &a.ProfessionalID, &a.Date, &start,
				&status, &a.AssignedBy, &a.Reason, &a.PreviousID, &a.CreatedAt,
				&p.ID, &p.Name, &p.Address, &zone, &lat, &lng, &p.CareNeeded, &p.EstimatedDuration, &p.CreatedAt,
			}
		)
		if err := rows.Scan(scanTarget...); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		if a.StartTime, err = domain.ParseClock(start); err != nil {
			return nil, fmt.Errorf("visit %s start: %w", a.ID, err)
		}
		a.Status = domain.AssignmentStatus(status)
		p.Zone = domain.Zone(zone)
		if lat != nil && lng != nil {
			p.Coordinates = &domain.Coordinate{Lat: *lat, Lng: *lng}
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ListScheduleEntries returns the calendar entries for a professional and date.
func (r *ScheduleRepo) ListScheduleEntries(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]domain.ScheduleEntry, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, assignment_id, professional_id, patient_id, entry_date,
               to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
        FROM schedule_entries
        WHERE professional_id = $1 AND entry_date = $2
        ORDER BY start_time, id
    `, professionalID, date)
	if err != nil {
		return nil, fmt.Errorf("list schedule entries: %w", err)
	}
	defer rows.Close()

	out := []domain.ScheduleEntry{}
	for rows.Next() {
		var (
			e          domain.ScheduleEntry
			start, end string
		)
		if err := rows.Scan(&e.ID, &e.AssignmentID, &e.ProfessionalID, &e.PatientID, &e.Date, &start, &end); err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}
		if e.Start, err = domain.ParseClock(start); err != nil {
			return nil, err
		}
		if e.End, err = domain.ParseClock(end); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func countActive(ctx context.Context, q querier, professionalID uuid.UUID, date time.Time) (int, error) {
	var n int
	err := q.QueryRow(ctx, `
        SELECT COUNT(*) FROM assignments
        WHERE professional_id = $1 AND assignment_date = $2 AND status = $3
    `, professionalID, date, string(domain.StatusActive)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active assignments: %w", err)
	}
	return n, nil
}

// TxRepo is the scheduling store bound to one transaction.
type TxRepo struct {
	tx pgx.Tx
}

var _ scheduletx.Repository = (*TxRepo)(nil)

// LockProfessional selects the professional FOR UPDATE, serialising capacity checks per professional.
func (r *TxRepo) LockProfessional(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	return getProfessional(ctx, r.tx, id, true)
}

// GetPatient returns a patient or nil.
func (r *TxRepo) GetPatient(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	return getPatient(ctx, r.tx, id)
}

// GetWorkingHours returns the window for a weekday or nil.
func (r *TxRepo) GetWorkingHours(ctx context.Context, professionalID uuid.UUID, weekday domain.Weekday) (*domain.WorkingHours, error) {
	return getWorkingHours(ctx, r.tx, professionalID, weekday)
}

// CountActiveAssignments counts active assignments inside the transaction.
func (r *TxRepo) CountActiveAssignments(ctx context.Context, professionalID uuid.UUID, date time.Time) (int, error) {
	return countActive(ctx, r.tx, professionalID, date)
}

// GetAssignmentForUpdate locks and returns an assignment or nil.
func (r *TxRepo) GetAssignmentForUpdate(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	a, err := scanAssignment(r.tx.QueryRow(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment %s: %w", id, err)
	}
	return a, nil
}

// InsertAssignment writes an active assignment unless the professional already
// holds capacity active ones on that date.
func (r *TxRepo) InsertAssignment(ctx context.Context, a *domain.Assignment, capacity int) error {
	ct, err := r.tx.Exec(ctx, `
        INSERT INTO assignments (id, patient_id, professional_id, assignment_date, start_time,
                                 status, assigned_by, reason, previous_id, created_at)
        SELECT $1::uuid, $2::uuid, $3::uuid, $4::date, $5::time, $6::text, $7::text, $8::text, $9::uuid, $10::timestamptz
        WHERE (
            SELECT COUNT(*) FROM assignments
            WHERE professional_id = $3 AND assignment_date = $4 AND status = 'active'
        ) < $11::int
    `, a.ID, a.PatientID, a.ProfessionalID, a.Date, a.StartTime.String(),
		string(a.Status), a.AssignedBy, a.Reason, a.PreviousID, a.CreatedAt, capacity)
	if err != nil {
		switch {
		case IsDuplicate(err):
			return apperr.ErrConflict
		case IsForeignKey(err):
			return fmt.Errorf("insert assignment: %w", apperr.ErrNotFound)
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("professional %s on %s: %w", a.ProfessionalID, domain.FormatDate(a.Date), apperr.ErrUnavailable)
	}
	return nil
}

// UpdateAssignmentStatus sets the status of an assignment.
func (r *TxRepo) UpdateAssignmentStatus(ctx context.Context, id uuid.UUID, status domain.AssignmentStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE assignments SET status = $2, updated_at = now() WHERE id = $1
    `, id, string(status))
	if err != nil {
		return fmt.Errorf("update assignment status %s: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("assignment %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// InsertScheduleEntry writes the calendar copy of an assignment.
func (r *TxRepo) InsertScheduleEntry(ctx context.Context, e *domain.ScheduleEntry) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO schedule_entries (id, assignment_id, professional_id, patient_id, entry_date, start_time, end_time)
        VALUES ($1, $2, $3, $4, $5, $6::time, $7::time)
    `, e.ID, e.AssignmentID, e.ProfessionalID, e.PatientID, e.Date, e.Start.String(), e.End.String())
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("insert schedule entry: %w", err)
	}
	return nil
}

// DeleteScheduleEntry removes the entry of an assignment. A missing entry is not an error.
func (r *TxRepo) DeleteScheduleEntry(ctx context.Context, assignmentID uuid.UUID) error {
	if _, err := r.tx.Exec(ctx, `DELETE FROM schedule_entries WHERE assignment_id = $1`, assignmentID); err != nil {
		return fmt.Errorf("delete schedule entry %s: %w", assignmentID, err)
	}
	return nil
}
