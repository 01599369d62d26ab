// Package http exposes the evaluation service as a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/registry"
	"github.com/aretw0/automata/pkg/runner"
	"github.com/aretw0/automata/pkg/service"
	"github.com/go-chi/chi/v5"
)

// Service is the subset of service.Service used by the handlers.
type Service interface {
	Evaluate(ctx context.Context, name, input string) (domain.Result, error)
	Cached(ctx context.Context, name, input string) (domain.Result, error)
	Catalog() []registry.Entry
}

// EvaluateRequest is the body of POST /automata/{name}/evaluate.
type EvaluateRequest struct {
	Input *string `json:"input"`
}

var errMissingInput = errors.New(`missing "input" field`)

// Server holds the handlers' dependencies.
type Server struct {
	service    Service
	metrics    http.Handler
	logger     *slog.Logger
	apiVersion string
}

// Option configures the HTTP handler.
type Option func(*Server)

// WithMetricsHandler mounts h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for svc. It fails only when the
// embedded OpenAPI document is invalid.
func NewHandler(svc Service, opts ...Option) (http.Handler, error) {
	s := &Server{
		service: svc,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	doc, err := LoadSpec()
	if err != nil {
		return nil, err
	}
	s.apiVersion = doc.Info.Version

	validator, err := validateRequests(doc, s.logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(enableCORS)
	r.Use(validator)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	r.Get("/automata", s.ListAutomata)
	r.Post("/automata/{name}/evaluate", s.Evaluate)
	r.Get("/results/{name}", s.GetResult)

	return r, nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "automata-http",
		"version":     strings.TrimSpace(automata.Version),
		"api_version": s.apiVersion,
	})
}

// ListAutomata handles the GET /automata request.
func (s *Server) ListAutomata(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Catalog())
}

// Evaluate handles the POST /automata/{name}/evaluate request.
func (s *Server) Evaluate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var body EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("evaluate: invalid request body", "err", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Input == nil {
		writeError(w, http.StatusBadRequest, errMissingInput)
		return
	}
	if err := runner.CheckInput(*body.Input); err != nil {
		s.logger.Warn("evaluate: input rejected", "err", err, "size", len(*body.Input))
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := s.service.Evaluate(r.Context(), name, *body.Input)
	if err != nil {
		s.fail(w, "evaluate", err)
		return
	}
	writeJSON(w, http.StatusOK, runner.NewLine(res))
}

// GetResult handles the GET /results/{name} request.
func (s *Server) GetResult(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	input := r.URL.Query().Get("input")

	res, err := s.service.Cached(r.Context(), name, input)
	if err != nil {
		s.fail(w, "get result", err)
		return
	}
	writeJSON(w, http.StatusOK, runner.NewLine(res))
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, registry.ErrUnknownAutomaton), errors.Is(err, domain.ErrResultNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, service.ErrNoStore):
		writeError(w, http.StatusNotImplemented, err)
	default:
		s.logger.Error(op+" failed", "err", err)
		writeError(w, http.StatusInternalServerError, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
