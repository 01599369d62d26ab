package automata_test

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/registry"
	"github.com/aretw0/automata/pkg/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, cfg *config.Config) *automata.Engine {
	t.Helper()
	eng, err := automata.New(context.Background(), cfg,
		automata.WithRegisterer(prometheus.NewRegistry()))
	require.NoError(t, err)
	t.Cleanup(func() { eng.Close() })
	return eng
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(automata.Version))
}

func TestNew_MemoryStore(t *testing.T) {
	eng := newEngine(t, config.NewDefault())
	ctx := context.Background()

	res, err := eng.Evaluate(ctx, registry.ModCounter, "000001110000011100000")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, res.Outcome)

	cached, err := eng.Cached(ctx, registry.ModCounter, "000001110000011100000")
	require.NoError(t, err)
	assert.Equal(t, res.Outcome, cached.Outcome)

	res, err = eng.Evaluate(ctx, registry.EpsilonAB, "ba")
	require.NoError(t, err)
	assert.True(t, res.Accepted())
}

func TestNew_CustomModuli(t *testing.T) {
	cfg := config.NewDefault()
	cfg.DFA.ZeroModulus = 2
	cfg.DFA.OneModulus = 1
	eng := newEngine(t, cfg)

	res, err := eng.Evaluate(context.Background(), registry.ModCounter, "0011")
	require.NoError(t, err)
	assert.True(t, res.Accepted())
}

func TestNew_NoStore(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Store.Backend = config.BackendNone
	eng := newEngine(t, cfg)

	assert.Nil(t, eng.Store)
	_, err := eng.Cached(context.Background(), registry.ModCounter, "")
	assert.ErrorIs(t, err, service.ErrNoStore)
}

func TestNew_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.NewDefault()
	cfg.Store.Backend = config.BackendRedis
	cfg.Store.Redis.Addr = mr.Addr()
	eng := newEngine(t, cfg)
	ctx := context.Background()

	_, err := eng.Evaluate(ctx, registry.EpsilonAB, "a")
	require.NoError(t, err)

	keys, err := eng.Store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"epsilon-ab:a"}, keys)
	assert.True(t, mr.Exists(config.DefaultRedisPrefix+"epsilon-ab:a"))
}

func TestNew_FileStore(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Store.Backend = config.BackendFile
	cfg.Store.File.Dir = t.TempDir()
	eng := newEngine(t, cfg)
	ctx := context.Background()

	_, err := eng.Evaluate(ctx, registry.ModCounter, "111")
	require.NoError(t, err)

	cached, err := eng.Cached(ctx, registry.ModCounter, "111")
	require.NoError(t, err)
	assert.True(t, cached.Accepted())
}

func TestNew_FileStoreModuliChange(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	cfg := config.NewDefault()
	cfg.Store.Backend = config.BackendFile
	cfg.Store.File.Dir = dir

	res, err := newEngine(t, cfg).Evaluate(ctx, registry.ModCounter, "00")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejected, res.Outcome)

	cfg.DFA.ZeroModulus = 2
	cfg.DFA.OneModulus = 1
	eng := newEngine(t, cfg)

	_, err = eng.Cached(ctx, registry.ModCounter, "00")
	assert.ErrorIs(t, err, domain.ErrResultNotFound)

	res, err = eng.Evaluate(ctx, registry.ModCounter, "00")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, res.Outcome)

	keys, err := eng.Store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"mod-counter@5x3:00", "mod-counter@2x1:00"}, keys)
}

func TestNew_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := config.NewDefault()
	cfg.Store.Backend = config.BackendRedis
	cfg.Store.Redis.Addr = addr

	_, err := automata.New(context.Background(), cfg,
		automata.WithRegisterer(prometheus.NewRegistry()))
	assert.Error(t, err)
}

func TestNew_InvalidModulus(t *testing.T) {
	cfg := config.NewDefault()
	cfg.DFA.ZeroModulus = 0

	_, err := automata.New(context.Background(), cfg,
		automata.WithRegisterer(prometheus.NewRegistry()))
	assert.Error(t, err)
}
