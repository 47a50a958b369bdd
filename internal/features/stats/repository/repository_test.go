package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Porismic/JupiterBot/internal/domain/member"
	"github.com/Porismic/JupiterBot/internal/platform/store"
)

func TestStatsRepository(t *testing.T) {
	ctx := context.Background()
	repo := New(store.NewMemory())

	_, err := repo.Get(ctx, "u1")
	assert.True(t, errors.Is(err, member.ErrStatsNotFound))

	require.NoError(t, repo.Save(ctx, "u2", &member.Stats{XP: 10, DailyMessages: 2}))
	require.NoError(t, repo.Save(ctx, "u1", &member.Stats{XP: 5}))

	got, err := repo.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, member.Stats{XP: 10, DailyMessages: 2}, *got)

	ids, err := repo.UserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, ids)
}
