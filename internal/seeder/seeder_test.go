package seeder

import (
	"context"
	"testing"

	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/predictor"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeederGeneratesValidHistory(t *testing.T) {
	ctx := context.Background()
	predictions := memory.NewPredictionRepository()
	statuses := memory.NewStatusRepository()

	cfg := models.SeederConfig{Predictions: 25, StatusChecks: 5}
	s := New(cfg, predictor.New(42), predictions, statuses, 42, zap.NewNop())
	require.NoError(t, s.Run(ctx))

	count, err := predictions.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, count)

	records, err := predictions.Recent(ctx, 25)
	require.NoError(t, err)
	for _, record := range records {
		_, ok := models.LocationByID(record.Place)
		assert.True(t, ok, "seeded place %q must be a known location", record.Place)
		assert.True(t, models.IsDayOfWeek(record.Day))
		assert.LessOrEqual(t, record.StartHour, record.EndHour)
		assert.GreaterOrEqual(t, record.StartHour, int32(0))
		assert.LessOrEqual(t, record.EndHour, int32(23))
		assert.GreaterOrEqual(t, record.PeakHour, record.StartHour)
		assert.LessOrEqual(t, record.PeakHour, record.EndHour)
		assert.NotEmpty(t, record.ID)
	}

	statusCount, err := statuses.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, statusCount)

	checks, err := statuses.List(ctx, 10)
	require.NoError(t, err)
	for _, check := range checks {
		assert.NotEmpty(t, check.ClientName)
	}
}

func TestRandomRequestStaysInBounds(t *testing.T) {
	s := New(models.SeederConfig{}, predictor.New(1), nil, nil, 1, zap.NewNop())

	for i := 0; i < 200; i++ {
		req := s.randomRequest()
		assert.NoError(t, req.Validate())
	}
}
