package postgres

import (
	"context"

	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatusRepository struct {
	pool *pgxpool.Pool
}

func NewStatusRepository(pool *pgxpool.Pool) *StatusRepository {
	return &StatusRepository{pool: pool}
}

func (r *StatusRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	query := `
        INSERT INTO status_checks (id, client_name, timestamp)
        VALUES ($1, $2, $3)
    `
	_, err := r.pool.Exec(ctx, query, check.ID, check.ClientName, check.Timestamp)
	return err
}

func (r *StatusRepository) List(ctx context.Context, limit int) ([]*models.StatusCheck, error) {
	query := `
        SELECT id, client_name, timestamp
        FROM status_checks
        ORDER BY timestamp DESC
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []*models.StatusCheck
	for rows.Next() {
		check := &models.StatusCheck{}
		if err := rows.Scan(&check.ID, &check.ClientName, &check.Timestamp); err != nil {
			return nil, err
		}
		checks = append(checks, check)
	}

	return checks, rows.Err()
}

func (r *StatusRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM status_checks`).Scan(&count)
	return count, err
}

func (r *StatusRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM status_checks`)
	return err
}
