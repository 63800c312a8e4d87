//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/repository"
)

var (
	tcPool *pgxpool.Pool
	tcDSN  string
)

// startPostgres boots a migrated database. stop terminates the container and is never nil.
func startPostgres(ctx context.Context) (stop func(), err error) {
	pg, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("homecare_test"),
		postgres.WithUsername("scheduler"),
		postgres.WithPassword("scheduler"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return func() {}, fmt.Errorf("start container: %w", err)
	}
	stop = func() {
		if tcPool != nil {
			tcPool.Close()
		}
		if err := pg.Terminate(ctx); err != nil {
			log.Printf("terminate postgres container: %v", err)
		}
	}

	if tcDSN, err = pg.ConnectionString(ctx, "sslmode=disable"); err != nil {
		return stop, fmt.Errorf("connection string: %w", err)
	}
	if tcPool, err = repository.NewPool(ctx, tcDSN); err != nil {
		return stop, fmt.Errorf("pool: %w", err)
	}
	if _, err = repository.NewMigrator(tcPool, logx.Nop()).Up(ctx); err != nil {
		return stop, fmt.Errorf("migrate: %w", err)
	}
	return stop, nil
}

func TestMain(m *testing.M) {
	stop, err := startPostgres(context.Background())
	if err != nil {
		stop()
		log.Fatalf("postgres testcontainer: %v", err)
	}

	code := m.Run()
	stop()
	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := tcPool.Exec(context.Background(),
		`TRUNCATE schedule_entries, assignments, working_hours, professionals, patients CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}
