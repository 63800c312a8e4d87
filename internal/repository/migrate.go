package repository

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"homecare-scheduler/internal/logx"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// migrationLockID is the advisory lock key held while migrating.
const migrationLockID = 724011

// Migrator applies the embedded SQL migrations in file name order.
type Migrator struct {
	db     *pgxpool.Pool
	files  fs.FS
	logger logx.Logger
}

// NewMigrator creates a Migrator over the embedded migrations.
func NewMigrator(db *pgxpool.Pool, logger logx.Logger) *Migrator {
	if logger == nil {
		logger = logx.Nop()
	}
	sub, _ := fs.Sub(migrationFS, "migrations")
	return &Migrator{db: db, files: sub, logger: logger}
}

// versions lists migration file names in order.
func (m *Migrator) versions() ([]string, error) {
	entries, err := fs.ReadDir(m.files, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// Up applies every migration not yet recorded and returns how many ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	versions, err := m.versions()
	if err != nil {
		return 0, err
	}

	applied := 0
	err = inTx(ctx, m.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, migrationLockID); err != nil {
			return fmt.Errorf("migration lock: %w", err)
		}
		if _, err := tx.Exec(ctx, `
            CREATE TABLE IF NOT EXISTS schema_migrations (
                version    TEXT PRIMARY KEY,
                applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
            )
        `); err != nil {
			return fmt.Errorf("create schema_migrations: %w", err)
		}

		for _, v := range versions {
			var done bool
			if err := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, v,
			).Scan(&done); err != nil {
				return fmt.Errorf("check migration %s: %w", v, err)
			}
			if done {
				continue
			}

			body, err := fs.ReadFile(m.files, v)
			if err != nil {
				return fmt.Errorf("read migration %s: %w", v, err)
			}
			if _, err := tx.Exec(ctx, string(body)); err != nil {
				return fmt.Errorf("apply migration %s: %w", v, err)
			}
			if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, v); err != nil {
				return fmt.Errorf("record migration %s: %w", v, err)
			}
			m.logger.Info("migration applied",
				logx.String("event", "migration_applied"),
				logx.String("version", v),
			)
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}
