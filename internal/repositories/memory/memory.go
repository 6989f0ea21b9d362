// Package memory holds in-process implementations of the repository
// interfaces, used when no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
)

type PredictionRepository struct {
	mu      sync.RWMutex
	records []*models.PredictionRecord
}

func NewPredictionRepository() *PredictionRepository {
	return &PredictionRepository{}
}

func (r *PredictionRepository) Create(_ context.Context, record *models.PredictionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

func (r *PredictionRepository) BulkCreate(_ context.Context, records []*models.PredictionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, records...)
	return nil
}

func (r *PredictionRepository) Recent(_ context.Context, limit int) ([]*models.PredictionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]*models.PredictionRecord, 0, limit)
	// newest first
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

func (r *PredictionRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}

func (r *PredictionRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
	return nil
}

type StatusRepository struct {
	mu     sync.RWMutex
	checks []*models.StatusCheck
}

func NewStatusRepository() *StatusRepository {
	return &StatusRepository{}
}

func (r *StatusRepository) Create(_ context.Context, check *models.StatusCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(r.checks, check)
	return nil
}

func (r *StatusRepository) List(_ context.Context, limit int) ([]*models.StatusCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit > len(r.checks) {
		limit = len(r.checks)
	}
	out := make([]*models.StatusCheck, 0, limit)
	for i := len(r.checks) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.checks[i])
	}
	return out, nil
}

func (r *StatusRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.checks), nil
}

func (r *StatusRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = nil
	return nil
}
