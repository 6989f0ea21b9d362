// Package server exposes the prediction API and the embedded map front end.
package server

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/events"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/predictor"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/repositories"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

const apiVersion = "1.0.0"

// Server is the HTTP API server.
type Server struct {
	httpServer  *http.Server
	config      models.ServerConfig
	predictor   *predictor.Predictor
	predictions repositories.PredictionRepository
	statuses    repositories.StatusRepository
	producer    events.Producer // nil when Kafka output is disabled
	logger      *zap.Logger
}

func New(
	cfg models.ServerConfig,
	pred *predictor.Predictor,
	predictions repositories.PredictionRepository,
	statuses repositories.StatusRepository,
	producer events.Producer,
	logger *zap.Logger,
) *Server {
	return &Server{
		config:      cfg,
		predictor:   pred,
		predictions: predictions,
		statuses:    statuses,
		producer:    producer,
		logger:      logger,
	}
}

// Handler builds the full route table with middleware applied.
func (s *Server) Handler() (http.Handler, error) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to mount static assets: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/", s.handleRoot)
	mux.HandleFunc("/api/locations", s.handleLocations)
	mux.HandleFunc("/api/days", s.handleDays)
	mux.HandleFunc("/api/predict-traffic", s.handlePredictTraffic)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/", http.FileServer(http.FS(staticFS)))

	return s.corsMiddleware(s.loggingMiddleware(s.recoveryMiddleware(mux))), nil
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("API server listening", zap.Int("port", s.config.Port))
		if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		s.logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	return nil
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error("panic in handler", zap.Any("error", err), zap.String("path", r.URL.Path))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	allowed := "*"
	if len(s.config.CORSOrigins) > 0 {
		allowed = s.config.CORSOrigins[0]
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowed)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
