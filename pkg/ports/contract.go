package ports

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore
// implementation adheres to the interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405")

	sample := func(input string) domain.Result {
		return domain.Result{
			Automaton: "mod-counter",
			Input:     input,
			Outcome:   domain.OutcomeAccepted,
			Steps:     []domain.StateSet{{3}, {0}},
			Final:     domain.StateSet{0},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		key := ResultKey(prefix, "00000")
		want := sample("00000")

		require.NoError(t, store.Save(ctx, key, want), "Save should not return error")

		got, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, want.Input, got.Input)
		assert.Equal(t, want.Outcome, got.Outcome)
		assert.Equal(t, want.Final, got.Final)
		assert.Equal(t, want.Steps, got.Steps)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, ResultKey(prefix, "missing"))
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := ResultKey(prefix, "0")
		require.NoError(t, store.Save(ctx, key, sample("0")))

		updated := sample("0")
		updated.Outcome = domain.OutcomeRejected
		require.NoError(t, store.Save(ctx, key, updated))

		got, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeRejected, got.Outcome)
	})

	t.Run("Delete", func(t *testing.T) {
		key := ResultKey(prefix, "111")
		require.NoError(t, store.Save(ctx, key, sample("111")))

		require.NoError(t, store.Delete(ctx, key), "Delete should not return error")

		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound, "Load after Delete should return ErrResultNotFound")
	})

	t.Run("Long Input", func(t *testing.T) {
		input := strings.Repeat("01", 2048)
		key := ResultKey(prefix, input)
		require.NoError(t, store.Save(ctx, key, sample(input)))
		defer func() { _ = store.Delete(ctx, key) }()

		got, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, input, got.Input)

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, key)
	})

	t.Run("List", func(t *testing.T) {
		k1 := ResultKey(prefix, "list-1")
		k2 := ResultKey(prefix, "list-2")
		_ = store.Save(ctx, k1, sample("list-1"))
		_ = store.Save(ctx, k2, sample("list-2"))
		defer func() {
			_ = store.Delete(ctx, k1)
			_ = store.Delete(ctx, k2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, k1)
		assert.Contains(t, keys, k2)
	})
}
