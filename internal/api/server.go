package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
	"github.com/JakeFAU/hackathon-analyzer/internal/config"
	"github.com/JakeFAU/hackathon-analyzer/internal/metrics"
)

// Client-facing error messages.
const (
	MsgMissingName    = "Hackathon name is required"
	MsgInvalidBody    = "Request body must be a JSON object"
	MsgAnalysisFailed = "Failed to analyze hackathon"
	MsgInternal       = "internal server error"
)

const maxBodyBytes = 16 << 10

// Runner executes one analysis.
type Runner interface {
	Run(ctx context.Context, name string) (analyzer.Report, error)
}

// Info identifies the service in /api/health.
type Info struct {
	Service string
	Version string
}

// Server wires HTTP handlers to the analysis pipeline.
type Server struct {
	router chi.Router
	runner Runner
	idGen  analyzer.IDGenerator
	info   Info
	cfg    config.Config
	logger *zap.Logger
}

// Envelope is the response body of /api/analyze-hackathon.
type Envelope struct {
	Success bool             `json:"success"`
	Data    *analyzer.Report `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
}

type analyzeRequest struct {
	HackathonName string `json:"hackathon_name"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Cost    string `json:"cost"`
}

// NewServer constructs a Server with middleware and routes.
func NewServer(
	runner Runner,
	idGen analyzer.IDGenerator,
	info Info,
	cfg config.Config,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		runner: runner,
		idGen:  idGen,
		info:   info,
		cfg:    cfg,
		logger: logger,
	}

	timeout := cfg.RequestTimeout()
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	origins := cfg.Server.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoverMiddleware)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))
	r.Use(timeoutMiddleware(timeout))

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.health)
		r.Post("/analyze-hackathon", s.analyzeHackathon)
	})

	s.router = r
	return s
}

// Handler returns the Router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, _ *http.Request) {
	if s.runner == nil {
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Service: s.info.Service,
		Version: s.info.Version,
		Cost:    "$0.00",
	})
}

func (s *Server) analyzeHackathon(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, Envelope{Error: MsgInvalidBody})
		return
	}

	// Client disconnects do not abort a run; each stage has its own budget.
	report, err := s.runner.Run(context.WithoutCancel(r.Context()), req.HackathonName)
	switch {
	case errors.Is(err, analyzer.ErrMissingInput):
		s.writeJSON(w, http.StatusBadRequest, Envelope{Error: MsgMissingName})
	case err != nil:
		s.logger.Error("analysis failed",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.String("hackathon", req.HackathonName),
			zap.Error(err),
		)
		s.writeJSON(w, http.StatusInternalServerError, Envelope{Error: MsgAnalysisFailed})
	default:
		s.writeJSON(w, http.StatusOK, Envelope{Success: true, Data: &report})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("write JSON failed", zap.Error(err))
	}
}
