package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
	"go.uber.org/zap"
)

const statusListLimit = 1000

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/" && r.URL.Path != "/api" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Bangalore Traffic Sentinel API",
		"version": apiVersion,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, models.Locations)
}

func (s *Server) handleDays(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"days": models.DaysOfWeek})
}

func (s *Server) handlePredictTraffic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req models.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.predictor.PredictRange(req)
	if err != nil {
		s.logger.Error("prediction failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "prediction failed")
		return
	}

	// Analytics side effects are best-effort: the prediction is still
	// served when the store or the event stream is unavailable.
	record := models.NewPredictionRecord(req, resp)
	if err := s.predictions.Create(r.Context(), record); err != nil {
		s.logger.Warn("failed to store prediction record", zap.Error(err))
	}
	if s.producer != nil {
		event := models.PredictionEvent{
			Timestamp: time.Now().Unix(),
			EventType: models.EventTypePredictionRequested,
			RecordID:  record.ID,
			Place:     req.Place,
			Day:       req.Day,
			StartHour: req.StartHour,
			EndHour:   req.EndHour,
			PeakHour:  resp.PeakHour,
		}
		if err := s.producer.PublishPrediction(event); err != nil {
			s.logger.Warn("failed to publish prediction event", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var input models.StatusCheckCreate
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(input.ClientName) == "" {
			writeError(w, http.StatusBadRequest, "client_name is required")
			return
		}

		check := models.NewStatusCheck(input.ClientName)
		if err := s.statuses.Create(r.Context(), check); err != nil {
			s.logger.Error("failed to store status check", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to store status check")
			return
		}
		writeJSON(w, http.StatusOK, check)

	case http.MethodGet:
		checks, err := s.statuses.List(r.Context(), statusListLimit)
		if err != nil {
			s.logger.Error("failed to list status checks", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to list status checks")
			return
		}
		if checks == nil {
			checks = []*models.StatusCheck{}
		}
		writeJSON(w, http.StatusOK, checks)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError mirrors the {"detail": ...} error payload the front end expects.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
