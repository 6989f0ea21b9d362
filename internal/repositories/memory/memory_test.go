package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPredictionRepository()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	var records []*models.PredictionRecord
	for i := 0; i < 5; i++ {
		records = append(records, &models.PredictionRecord{
			ID:        fmt.Sprintf("rec-%d", i),
			Place:     "hebbal",
			Day:       "Monday",
			CreatedAt: time.Now().UTC(),
		})
	}
	require.NoError(t, repo.BulkCreate(ctx, records))
	require.NoError(t, repo.Create(ctx, &models.PredictionRecord{ID: "rec-last"}))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	recent, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "rec-last", recent[0].ID, "Recent returns newest first")

	all, err := repo.Recent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 6, "limit larger than the store returns everything")

	require.NoError(t, repo.DeleteAll(ctx))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStatusRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStatusRepository()

	require.NoError(t, repo.Create(ctx, models.NewStatusCheck("first")))
	require.NoError(t, repo.Create(ctx, models.NewStatusCheck("second")))

	checks, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.Equal(t, "second", checks[0].ClientName)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.DeleteAll(ctx))
	checks, err = repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, checks)
}
