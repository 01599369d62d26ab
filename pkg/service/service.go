// Package service orchestrates evaluations for the network adapters: it
// resolves automata by name, serves repeated inputs from a result store and
// records metrics.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/metrics"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/registry"
)

// ErrNoStore is returned by Cached when the service runs without a result store.
var ErrNoStore = errors.New("no result store configured")

// Service evaluates inputs against registered automata.
// Safe for concurrent use.
type Service struct {
	registry *registry.Registry
	store    ports.ResultStore
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithStore enables result caching.
func WithStore(store ports.ResultStore) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithMetrics records every evaluation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger configures a logger for the Service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a Service over the given registry.
func New(reg *registry.Registry, opts ...Option) *Service {
	s := &Service{
		registry: reg,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog lists the registered automata.
func (s *Service) Catalog() []registry.Entry {
	return s.registry.Entries()
}

// Evaluate runs input through the automaton registered as name.
// A stored result for the same pair is returned without re-running the automaton.
// Store failures are logged and never fail the evaluation.
func (s *Service) Evaluate(ctx context.Context, name, input string) (domain.Result, error) {
	entry, err := s.registry.Lookup(name)
	if err != nil {
		return domain.Result{}, err
	}

	key := entry.ResultKey(input)
	if s.store != nil {
		cached, err := s.store.Load(ctx, key)
		switch {
		case err == nil:
			s.logger.Debug("result served from store", "automaton", name, "input", input)
			if s.metrics != nil {
				s.metrics.ObserveCacheHit(name)
			}
			return cached, nil
		case !errors.Is(err, domain.ErrResultNotFound):
			s.logger.Warn("result store lookup failed", "automaton", name, "err", err)
		}
	}

	res := entry.Evaluator.Evaluate(input)
	res.Automaton = name

	s.logger.Debug("evaluated",
		"automaton", name,
		"input", input,
		"outcome", res.Outcome,
		"final", res.Final.String(),
	)
	if s.metrics != nil {
		s.metrics.Observe(name, res)
	}

	if s.store != nil {
		if err := s.store.Save(ctx, key, res); err != nil {
			s.logger.Warn("failed to store result", "automaton", name, "err", err)
		}
	}
	return res, nil
}

// Cached returns the stored result for name and input without evaluating.
func (s *Service) Cached(ctx context.Context, name, input string) (domain.Result, error) {
	entry, err := s.registry.Lookup(name)
	if err != nil {
		return domain.Result{}, err
	}
	if s.store == nil {
		return domain.Result{}, ErrNoStore
	}
	res, err := s.store.Load(ctx, entry.ResultKey(input))
	if err != nil {
		return domain.Result{}, fmt.Errorf("lookup %s: %w", name, err)
	}
	return res, nil
}
