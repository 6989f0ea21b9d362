package postgres

import (
	"context"

	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PredictionRepository struct {
	pool *pgxpool.Pool
}

func NewPredictionRepository(pool *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{pool: pool}
}

func (r *PredictionRepository) Create(ctx context.Context, record *models.PredictionRecord) error {
	query := `
        INSERT INTO traffic_predictions (
            id, place, day, start_hour, end_hour,
            peak_hour, peak_traffic, average_traffic, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := r.pool.Exec(ctx, query,
		record.ID,
		record.Place,
		record.Day,
		record.StartHour,
		record.EndHour,
		record.PeakHour,
		record.PeakTraffic,
		record.AverageTraffic,
		record.CreatedAt,
	)
	return err
}

func (r *PredictionRepository) BulkCreate(ctx context.Context, records []*models.PredictionRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	stmt := `
        INSERT INTO traffic_predictions (
            id, place, day, start_hour, end_hour,
            peak_hour, peak_traffic, average_traffic, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for _, record := range records {
		_, err = tx.Exec(ctx, stmt,
			record.ID,
			record.Place,
			record.Day,
			record.StartHour,
			record.EndHour,
			record.PeakHour,
			record.PeakTraffic,
			record.AverageTraffic,
			record.CreatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PredictionRepository) Recent(ctx context.Context, limit int) ([]*models.PredictionRecord, error) {
	query := `
        SELECT
            id, place, day, start_hour, end_hour,
            peak_hour, peak_traffic, average_traffic, created_at
        FROM traffic_predictions
        ORDER BY created_at DESC
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.PredictionRecord
	for rows.Next() {
		record := &models.PredictionRecord{}
		err := rows.Scan(
			&record.ID,
			&record.Place,
			&record.Day,
			&record.StartHour,
			&record.EndHour,
			&record.PeakHour,
			&record.PeakTraffic,
			&record.AverageTraffic,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *PredictionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM traffic_predictions`).Scan(&count)
	return count, err
}

func (r *PredictionRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM traffic_predictions`)
	return err
}
