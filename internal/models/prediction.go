package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/lucsky/cuid"
)

// PredictionRequest is the body of POST /api/predict-traffic.
type PredictionRequest struct {
	Place     string `json:"place"`
	Day       string `json:"day"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
}

// Normalize canonicalizes the place identifier in-place.
func (r *PredictionRequest) Normalize() {
	r.Place = NormalizePlace(r.Place)
}

// Validate checks the request against the supported locations, days and
// hour bounds. The returned error message is surfaced to the caller verbatim.
func (r *PredictionRequest) Validate() error {
	if _, ok := LocationByID(r.Place); !ok {
		return fmt.Errorf("Invalid location. Supported locations: %s", strings.Join(LocationIDs(), ", "))
	}
	if !IsDayOfWeek(r.Day) {
		return fmt.Errorf("Invalid day. Supported days: %s", strings.Join(DaysOfWeek, ", "))
	}
	if r.StartHour < 0 || r.StartHour > 23 || r.EndHour < 0 || r.EndHour > 23 {
		return fmt.Errorf("Hours must be between 0 and 23")
	}
	if r.EndHour < r.StartHour {
		return fmt.Errorf("End hour must be greater than or equal to start hour")
	}
	return nil
}

// HourlyPrediction is one entry of the returned hourly breakdown.
type HourlyPrediction struct {
	Hour         int     `json:"hour"`
	TrafficValue float64 `json:"traffic_value"`
	TrafficLevel string  `json:"traffic_level"`
	Color        string  `json:"color"`
	Severity     int     `json:"severity"`
}

// PredictionResponse is the success payload of POST /api/predict-traffic.
// The hourly sequence covers exactly [start_hour, end_hour], ascending.
type PredictionResponse struct {
	Place          string             `json:"place"`
	PlaceName      string             `json:"place_name"`
	Latitude       float64            `json:"latitude"`
	Longitude      float64            `json:"longitude"`
	Day            string             `json:"day"`
	Predictions    []HourlyPrediction `json:"predictions"`
	PeakHour       int                `json:"peak_hour"`
	PeakTraffic    float64            `json:"peak_traffic"`
	AverageTraffic float64            `json:"average_traffic"`
	Insight        string             `json:"insight"`
}

// PredictionRecord is the analytics row persisted for each served prediction.
type PredictionRecord struct {
	ID             string    `json:"id"`
	Place          string    `json:"place"`
	Day            string    `json:"day"`
	StartHour      int32     `json:"start_hour"`
	EndHour        int32     `json:"end_hour"`
	PeakHour       int32     `json:"peak_hour"`
	PeakTraffic    float64   `json:"peak_traffic"`
	AverageTraffic float64   `json:"average_traffic"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewPredictionRecord builds the analytics row for a served prediction.
func NewPredictionRecord(req PredictionRequest, resp *PredictionResponse) *PredictionRecord {
	return &PredictionRecord{
		ID:             cuid.New(),
		Place:          req.Place,
		Day:            req.Day,
		StartHour:      int32(req.StartHour),
		EndHour:        int32(req.EndHour),
		PeakHour:       int32(resp.PeakHour),
		PeakTraffic:    resp.PeakTraffic,
		AverageTraffic: resp.AverageTraffic,
		CreatedAt:      time.Now().UTC(),
	}
}

// PredictionEvent is the message published to Kafka for each prediction.
type PredictionEvent struct {
	Timestamp int64  `json:"timestamp"`
	EventType string `json:"eventType"`
	RecordID  string `json:"recordId"`
	Place     string `json:"place"`
	Day       string `json:"day"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	PeakHour  int    `json:"peakHour"`
}

// StatusCheckCreate is the body of POST /api/status.
type StatusCheckCreate struct {
	ClientName string `json:"client_name"`
}

// StatusCheck is a recorded client heartbeat.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewStatusCheck records a heartbeat for the named client.
func NewStatusCheck(clientName string) *StatusCheck {
	return &StatusCheck{
		ID:         cuid.New(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}
