package automata

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/adapters/redis"
	"github.com/aretw0/automata/pkg/metrics"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/registry"
	"github.com/aretw0/automata/pkg/service"
	"github.com/prometheus/client_golang/prometheus"
)

// Version is the release of this module.
//
//go:embed VERSION
var Version string

// Engine is the high-level entry point: the evaluation service plus the
// resources it owns.
type Engine struct {
	*service.Service
	Registry *registry.Registry
	Metrics  *metrics.Metrics
	Store    ports.ResultStore

	logger     *slog.Logger
	registerer prometheus.Registerer
	closers    []func() error
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegisterer registers the engine metrics with reg instead of the
// Prometheus default registerer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.registerer = reg
	}
}

// New builds the registry, result store and metrics described by cfg.
// A Redis backend is pinged before New returns.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Engine, error) {
	e := &Engine{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	reg, err := registry.NewDefault(cfg.DFA.ZeroModulus, cfg.DFA.OneModulus)
	if err != nil {
		return nil, err
	}
	e.Registry = reg

	store, err := e.openStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	e.Store = store

	if e.registerer == nil {
		e.registerer = prometheus.DefaultRegisterer
	}
	e.Metrics = metrics.New(e.registerer)

	svcOpts := []service.Option{
		service.WithMetrics(e.Metrics),
		service.WithLogger(e.logger),
	}
	if store != nil {
		svcOpts = append(svcOpts, service.WithStore(store))
	}
	e.Service = service.New(reg, svcOpts...)

	e.logger.Debug("engine ready",
		"store", cfg.Store.Backend,
		"zero_modulus", cfg.DFA.ZeroModulus,
		"one_modulus", cfg.DFA.OneModulus,
	)
	return e, nil
}

func (e *Engine) openStore(ctx context.Context, cfg config.StoreConfig) (ports.ResultStore, error) {
	switch cfg.Backend {
	case config.BackendNone:
		return nil, nil
	case config.BackendMemory, "":
		return memory.NewStore(), nil
	case config.BackendRedis:
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
		)
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.Addr, err)
		}
		e.closers = append(e.closers, store.Close)
		return store, nil
	case config.BackendFile:
		return file.NewStore(cfg.File.Dir), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
}

// Close releases the result store connection, if any.
func (e *Engine) Close() error {
	var errs []error
	for _, c := range e.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
