// Package seeder populates the analytics store with synthetic history so the
// dashboard and export paths have data to work with out of the box.
package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/predictor"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/repositories"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

var fake = faker.New()

type Seeder struct {
	config      models.SeederConfig
	predictor   *predictor.Predictor
	predictions repositories.PredictionRepository
	statuses    repositories.StatusRepository
	rng         *rand.Rand
	logger      *zap.Logger
}

func New(
	cfg models.SeederConfig,
	pred *predictor.Predictor,
	predictions repositories.PredictionRepository,
	statuses repositories.StatusRepository,
	seed int64,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		config:      cfg,
		predictor:   pred,
		predictions: predictions,
		statuses:    statuses,
		rng:         rand.New(rand.NewSource(seed)),
		logger:      logger,
	}
}

// Run generates and stores the configured amount of synthetic history.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedPredictions(ctx); err != nil {
		return err
	}
	return s.seedStatusChecks(ctx)
}

func (s *Seeder) seedPredictions(ctx context.Context) error {
	bar := progressbar.Default(int64(s.config.Predictions), "seeding predictions")
	records := make([]*models.PredictionRecord, 0, s.config.Predictions)

	for i := 0; i < s.config.Predictions; i++ {
		req := s.randomRequest()
		resp, err := s.predictor.PredictRange(req)
		if err != nil {
			return fmt.Errorf("failed to generate seed prediction: %w", err)
		}

		record := models.NewPredictionRecord(req, resp)
		// spread the history over the past month
		record.CreatedAt = time.Now().UTC().Add(-time.Duration(s.rng.Intn(30*24)) * time.Hour)
		records = append(records, record)
		bar.Add(1)
	}

	if err := s.predictions.BulkCreate(ctx, records); err != nil {
		return fmt.Errorf("failed to store seed predictions: %w", err)
	}

	s.logger.Info("seeded prediction history", zap.Int("records", len(records)))
	return nil
}

func (s *Seeder) seedStatusChecks(ctx context.Context) error {
	bar := progressbar.Default(int64(s.config.StatusChecks), "seeding status checks")

	for i := 0; i < s.config.StatusChecks; i++ {
		check := &models.StatusCheck{
			ID:         cuid.New(),
			ClientName: fake.Company().Name(),
			Timestamp:  time.Now().UTC().Add(-time.Duration(s.rng.Intn(30*24)) * time.Hour),
		}
		if err := s.statuses.Create(ctx, check); err != nil {
			return fmt.Errorf("failed to store seed status check: %w", err)
		}
		bar.Add(1)
	}

	s.logger.Info("seeded status checks", zap.Int("records", s.config.StatusChecks))
	return nil
}

// randomRequest picks a valid location, day and hour window.
func (s *Seeder) randomRequest() models.PredictionRequest {
	place := models.Locations[s.rng.Intn(len(models.Locations))].ID
	day := models.DaysOfWeek[s.rng.Intn(len(models.DaysOfWeek))]
	start := s.rng.Intn(24)
	end := start + s.rng.Intn(24-start)
	return models.PredictionRequest{
		Place:     place,
		Day:       day,
		StartHour: start,
		EndHour:   end,
	}
}
