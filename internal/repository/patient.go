package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/domain"
)

// PatientRepo stores patients.
type PatientRepo struct{ db *pgxpool.Pool }

// NewPatientRepo creates a new PatientRepo.
func NewPatientRepo(db *pgxpool.Pool) *PatientRepo { return &PatientRepo{db: db} }

func getPatient(ctx context.Context, q querier, id uuid.UUID) (*domain.Patient, error) {
	p, err := scanPatient(q.QueryRow(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patient %s: %w", id, err)
	}
	return p, nil
}

// Get returns a patient or nil when absent.
func (r *PatientRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	return getPatient(ctx, r.db, id)
}

// List returns patients ordered by creation. Nil limit/offset return everything.
func (r *PatientRepo) List(ctx context.Context, limit, offset *int) ([]domain.Patient, error) {
	q, args := paginate(`SELECT `+patientColumns+` FROM patients ORDER BY created_at, id`, nil, limit, offset)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	out := make([]domain.Patient, 0, capacity)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Create inserts p with its preassigned id.
func (r *PatientRepo) Create(ctx context.Context, p *domain.Patient) error {
	lat, lng := coordArgs(p.Coordinates)
	_, err := r.db.Exec(ctx, `
        INSERT INTO patients (id, name, address, zone, lat, lng, care_needed, estimated_duration, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, p.ID, p.Name, p.Address, string(p.Zone), lat, lng, p.CareNeeded, p.EstimatedDuration, p.CreatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("create patient: %w", err)
	}
	return nil
}

// UpdateAddress stores a new address, zone and coordinates. Nil coordinates clear the old ones.
func (r *PatientRepo) UpdateAddress(ctx context.Context, u domain.PatientAddressUpdate) (bool, error) {
	lat, lng := coordArgs(u.Coordinates)
	ct, err := r.db.Exec(ctx, `
        UPDATE patients
        SET address    = $2,
            zone       = COALESCE(NULLIF($3, ''), zone),
            lat        = $4,
            lng        = $5,
            updated_at = now()
        WHERE id = $1
    `, u.ID, u.Address, string(u.Zone), lat, lng)
	if err != nil {
		return false, fmt.Errorf("update patient address %s: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// SetCoordinates stores geocoded coordinates.
func (r *PatientRepo) SetCoordinates(ctx context.Context, id uuid.UUID, c *domain.Coordinate) (bool, error) {
	lat, lng := coordArgs(c)
	ct, err := r.db.Exec(ctx, `
        UPDATE patients SET lat = $2, lng = $3, updated_at = now() WHERE id = $1
    `, id, lat, lng)
	if err != nil {
		return false, fmt.Errorf("set patient coordinates %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
