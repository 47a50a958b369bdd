// Package storetest holds the behavior every store backend must share.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Porismic/JupiterBot/internal/platform/store"
)

type document struct {
	Name    string            `json:"name"`
	Count   int               `json:"count"`
	Tags    []string          `json:"tags,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Run exercises a fresh, empty store.
func Run(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		var doc document
		err := s.Get(ctx, "docs", "missing", &doc)
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})

	t.Run("put get round trip", func(t *testing.T) {
		in := document{Name: "a", Count: 3, Tags: []string{"x", "y"}, Details: map[string]string{"k": "v"}}
		require.NoError(t, s.Put(ctx, "docs", "a", in))

		var out document
		require.NoError(t, s.Get(ctx, "docs", "a", &out))
		assert.Equal(t, in, out)
	})

	t.Run("put replaces", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "docs", "b", document{Name: "b", Count: 1}))
		require.NoError(t, s.Put(ctx, "docs", "b", document{Name: "b", Count: 2}))

		var out document
		require.NoError(t, s.Get(ctx, "docs", "b", &out))
		assert.Equal(t, 2, out.Count)
	})

	t.Run("keys are sorted and scoped to dataset", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "other", "z", document{Name: "z"}))

		keys, err := s.Keys(ctx, "docs")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, keys)

		keys, err = s.Keys(ctx, "empty")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "docs", "a"))
		require.NoError(t, s.Delete(ctx, "docs", "a"))

		var out document
		assert.True(t, errors.Is(s.Get(ctx, "docs", "a", &out), store.ErrNotFound))

		keys, err := s.Keys(ctx, "docs")
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, keys)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, s.Ping(ctx))
	})
}
