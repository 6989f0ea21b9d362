package predictor

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
)

// Predictor simulates the traffic model. It is a deterministic heuristic with
// a small amount of per-hour jitter drawn from a seeded source, so two
// predictors built with the same seed produce the same series.
type Predictor struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a predictor whose jitter is driven by the given seed.
func New(seed int64) *Predictor {
	return &Predictor{rng: rand.New(rand.NewSource(seed))}
}

// PredictValue estimates the PCU per hour for one location, day and hour.
func (p *Predictor) PredictValue(place, day string, hour int) float64 {
	base, ok := baseTraffic[place]
	if !ok {
		base = defaultBaseTraffic
	}

	factor := dayFactor(day)
	if weekendDays[day] {
		factor *= weekendFactor
	}

	traffic := base * factor * hourMultiplier(hour)

	// ±10% variation around the modelled value
	p.mu.Lock()
	jitter := 0.9 + p.rng.Float64()*0.2
	p.mu.Unlock()

	return round2(traffic * jitter)
}

// PredictRange produces the full response for a validated request: one entry
// per hour of [start_hour, end_hour] in ascending order, plus peak, average
// and the advisory text.
func (p *Predictor) PredictRange(req models.PredictionRequest) (*models.PredictionResponse, error) {
	location, ok := models.LocationByID(req.Place)
	if !ok {
		return nil, fmt.Errorf("unknown location %q", req.Place)
	}
	if req.EndHour < req.StartHour {
		return nil, fmt.Errorf("end hour %d before start hour %d", req.EndHour, req.StartHour)
	}

	predictions := make([]models.HourlyPrediction, 0, req.EndHour-req.StartHour+1)
	var sum float64
	peak := models.HourlyPrediction{Hour: -1}

	for hour := req.StartHour; hour <= req.EndHour; hour++ {
		value := p.PredictValue(req.Place, req.Day, hour)
		tier := models.ClassifyTraffic(value)
		entry := models.HourlyPrediction{
			Hour:         hour,
			TrafficValue: value,
			TrafficLevel: tier.Level,
			Color:        tier.Color,
			Severity:     tier.Severity,
		}
		predictions = append(predictions, entry)
		sum += value
		if peak.Hour < 0 || entry.TrafficValue > peak.TrafficValue {
			peak = entry
		}
	}

	return &models.PredictionResponse{
		Place:          req.Place,
		PlaceName:      location.Name,
		Latitude:       location.Latitude,
		Longitude:      location.Longitude,
		Day:            req.Day,
		Predictions:    predictions,
		PeakHour:       peak.Hour,
		PeakTraffic:    peak.TrafficValue,
		AverageTraffic: round2(sum / float64(len(predictions))),
		Insight:        insight(peak),
	}, nil
}

// insight picks the advisory text from the peak severity tier.
func insight(peak models.HourlyPrediction) string {
	switch peak.Severity {
	case models.SeverityHigh:
		return fmt.Sprintf("Peak congestion expected at %d:00. Consider alternative routes or delay travel by 1-2 hours.", peak.Hour)
	case models.SeverityModerate:
		return fmt.Sprintf("Moderate traffic expected. %d:00 shows highest activity. Plan buffer time.", peak.Hour)
	default:
		return "Traffic conditions are favorable. Smooth commute expected throughout the selected time range."
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
