package repositories

import (
	"context"

	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
)

type PredictionRepository interface {
	Create(ctx context.Context, record *models.PredictionRecord) error
	BulkCreate(ctx context.Context, records []*models.PredictionRecord) error
	Recent(ctx context.Context, limit int) ([]*models.PredictionRecord, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type StatusRepository interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context, limit int) ([]*models.StatusCheck, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
