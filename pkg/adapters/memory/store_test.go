package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunResultStoreContract(t, store)
}

func TestMemoryStore_Isolation(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	res := domain.Result{Input: "0", Outcome: domain.OutcomeRejected, Final: domain.StateSet{3}}
	require.NoError(t, store.Save(ctx, "k", res))

	res.Final[0] = 9

	loaded, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, domain.StateSet{3}, loaded.Final)

	loaded.Final[0] = 7
	again, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, domain.StateSet{3}, again.Final)
}
