package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool and verifies the connection.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return pool, nil
}

// EnsureSchema creates the analytics tables if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS traffic_predictions (
            id TEXT PRIMARY KEY,
            place TEXT NOT NULL,
            day TEXT NOT NULL,
            start_hour INT NOT NULL,
            end_hour INT NOT NULL,
            peak_hour INT NOT NULL,
            peak_traffic DOUBLE PRECISION NOT NULL,
            average_traffic DOUBLE PRECISION NOT NULL,
            created_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS status_checks (
            id TEXT PRIMARY KEY,
            client_name TEXT NOT NULL,
            timestamp TIMESTAMPTZ NOT NULL
        )`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("error creating schema: %w", err)
		}
	}
	return nil
}
