package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"homecare-scheduler/internal/apperr"
	"homecare-scheduler/internal/domain"
)

// ProfessionalRepo stores professionals and their weekly working hours.
type ProfessionalRepo struct{ db *pgxpool.Pool }

// NewProfessionalRepo creates a new ProfessionalRepo.
func NewProfessionalRepo(db *pgxpool.Pool) *ProfessionalRepo { return &ProfessionalRepo{db: db} }

const professionalColumns = `id, name, specializations, created_at`

func getProfessional(ctx context.Context, q querier, id uuid.UUID, lock bool) (*domain.Professional, error) {
	sql := `SELECT ` + professionalColumns + ` FROM professionals WHERE id = $1`
	if lock {
		sql += ` FOR UPDATE`
	}
	var p domain.Professional
	if err := q.QueryRow(ctx, sql, id).Scan(&p.ID, &p.Name, &p.Specializations, &p.CreatedAt); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get professional %s: %w", id, err)
	}
	hours, err := listWorkingHours(ctx, q, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	p.WorkingHours = hours[id]
	return &p, nil
}

func listProfessionals(ctx context.Context, q querier, limit, offset *int) ([]domain.Professional, error) {
	sql, args := paginate(`SELECT `+professionalColumns+` FROM professionals ORDER BY created_at, id`, nil, limit, offset)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	var (
		out []domain.Professional
		ids []uuid.UUID
	)
	for rows.Next() {
		var p domain.Professional
		if err := rows.Scan(&p.ID, &p.Name, &p.Specializations, &p.CreatedAt); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, p)
		ids = append(ids, p.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Professional{}, nil
	}

	hours, err := listWorkingHours(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].WorkingHours = hours[out[i].ID]
	}
	return out, nil
}

func listWorkingHours(ctx context.Context, q querier, ids []uuid.UUID) (map[uuid.UUID][]domain.WorkingHours, error) {
	rows, err := q.Query(ctx, `
        SELECT professional_id, weekday, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
        FROM working_hours
        WHERE professional_id = ANY($1)
        ORDER BY professional_id, weekday
    `, ids)
	if err != nil {
		return nil, fmt.Errorf("list working hours: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]domain.WorkingHours, len(ids))
	for rows.Next() {
		h, err := scanWorkingHours(rows)
		if err != nil {
			return nil, fmt.Errorf("scan working hours: %w", err)
		}
		out[h.ProfessionalID] = append(out[h.ProfessionalID], h)
	}
	return out, rows.Err()
}

func getWorkingHours(ctx context.Context, q querier, id uuid.UUID, wd domain.Weekday) (*domain.WorkingHours, error) {
	h, err := scanWorkingHours(q.QueryRow(ctx, `
        SELECT professional_id, weekday, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
        FROM working_hours
        WHERE professional_id = $1 AND weekday = $2
    `, id, int(wd)))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get working hours %s/%d: %w", id, wd, err)
	}
	return &h, nil
}

func insertWorkingHours(ctx context.Context, tx pgx.Tx, id uuid.UUID, hours []domain.WorkingHours) error {
	if len(hours) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, h := range hours {
		batch.Queue(`
            INSERT INTO working_hours (professional_id, weekday, start_time, end_time)
            VALUES ($1, $2, $3::time, $4::time)
        `, id, int(h.Weekday), h.Start.String(), h.End.String())
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if IsDuplicate(err) {
			return apperr.ErrInvalid
		}
		return fmt.Errorf("insert working hours %s: %w", id, err)
	}
	return nil
}

// Get returns a professional with working hours, or nil when absent.
func (r *ProfessionalRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	return getProfessional(ctx, r.db, id, false)
}

// List returns professionals ordered by creation.
func (r *ProfessionalRepo) List(ctx context.Context, limit, offset *int) ([]domain.Professional, error) {
	return listProfessionals(ctx, r.db, limit, offset)
}

// Create inserts p and its working hours in one transaction.
func (r *ProfessionalRepo) Create(ctx context.Context, p *domain.Professional) error {
	specs := p.Specializations
	if specs == nil {
		specs = []string{}
	}
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
            INSERT INTO professionals (id, name, specializations, created_at)
            VALUES ($1, $2, $3, $4)
        `, p.ID, p.Name, specs, p.CreatedAt)
		if err != nil {
			if IsDuplicate(err) {
				return apperr.ErrConflict
			}
			return fmt.Errorf("create professional: %w", err)
		}
		return insertWorkingHours(ctx, tx, p.ID, p.WorkingHours)
	})
}

// ReplaceWorkingHours swaps the weekly schedule. It reports false when the professional does not exist.
func (r *ProfessionalRepo) ReplaceWorkingHours(ctx context.Context, id uuid.UUID, hours []domain.WorkingHours) (bool, error) {
	found := false
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx, `UPDATE professionals SET updated_at = now() WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("lock professional %s: %w", id, err)
		}
		if ct.RowsAffected() == 0 {
			return nil
		}
		found = true
		if _, err := tx.Exec(ctx, `DELETE FROM working_hours WHERE professional_id = $1`, id); err != nil {
			return fmt.Errorf("clear working hours %s: %w", id, err)
		}
		return insertWorkingHours(ctx, tx, id, hours)
	})
	return found, err
}
