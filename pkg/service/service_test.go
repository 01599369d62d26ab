package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/metrics"
	"github.com/aretw0/automata/pkg/registry"
	"github.com/aretw0/automata/pkg/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("connection refused")

type failingStore struct{}

func (failingStore) Save(context.Context, string, domain.Result) error { return errDown }
func (failingStore) Load(context.Context, string) (domain.Result, error) {
	return domain.Result{}, errDown
}
func (failingStore) Delete(context.Context, string) error { return errDown }
func (failingStore) List(context.Context) ([]string, error) { return nil, errDown }

func newService(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	reg, err := registry.NewDefault(5, 3)
	require.NoError(t, err)
	return service.New(reg, opts...)
}

func TestEvaluate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	res, err := svc.Evaluate(ctx, registry.ModCounter, "00000111")
	require.NoError(t, err)
	assert.Equal(t, registry.ModCounter, res.Automaton)
	assert.Equal(t, domain.OutcomeAccepted, res.Outcome)

	res, err = svc.Evaluate(ctx, registry.EpsilonAB, "b")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejected, res.Outcome)

	_, err = svc.Evaluate(ctx, "missing", "0")
	assert.ErrorIs(t, err, registry.ErrUnknownAutomaton)
}

func TestEvaluate_CachesResults(t *testing.T) {
	store := memory.NewStore()
	m := metrics.New(prometheus.NewRegistry())
	svc := newService(t, service.WithStore(store), service.WithMetrics(m))
	ctx := context.Background()

	_, err := svc.Cached(ctx, registry.ModCounter, "0")
	assert.ErrorIs(t, err, domain.ErrResultNotFound)

	first, err := svc.Evaluate(ctx, registry.ModCounter, "0")
	require.NoError(t, err)

	second, err := svc.Evaluate(ctx, registry.ModCounter, "0")
	require.NoError(t, err)
	assert.Equal(t, first.Outcome, second.Outcome)
	assert.Equal(t, first.Final, second.Final)

	cached, err := svc.Cached(ctx, registry.ModCounter, "0")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejected, cached.Outcome)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues(registry.ModCounter, "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHits.WithLabelValues(registry.ModCounter)))
}

func TestEvaluate_StoreFailureIsNotFatal(t *testing.T) {
	svc := newService(t, service.WithStore(failingStore{}))

	res, err := svc.Evaluate(context.Background(), registry.EpsilonAB, "ba")
	require.NoError(t, err)
	assert.True(t, res.Accepted())
}

func TestCached_WithoutStore(t *testing.T) {
	svc := newService(t)
	_, err := svc.Cached(context.Background(), registry.ModCounter, "0")
	assert.ErrorIs(t, err, service.ErrNoStore)
}
