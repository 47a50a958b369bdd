package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Porismic/JupiterBot/internal/common/errors"
	"github.com/Porismic/JupiterBot/internal/common/logger"
	"github.com/Porismic/JupiterBot/internal/domain/member"
	"github.com/Porismic/JupiterBot/internal/features/stats/repository"
	"github.com/Porismic/JupiterBot/internal/platform/metrics"
	"github.com/Porismic/JupiterBot/internal/platform/store"
)

func newService() *Service {
	return NewService(repository.New(store.NewMemory()), nil, logger.Nop())
}

func TestRecordMessage(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	p, err := svc.RecordMessage(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, member.Stats{XP: 5, DailyMessages: 1, WeeklyMessages: 1, MonthlyMessages: 1, AllTimeMessages: 1}, p.Stats)
	assert.Equal(t, 0, p.Level)
	assert.False(t, p.LeveledUp)

	// 100 XP is level 1: the 20th message levels up.
	for i := 0; i < 18; i++ {
		p, err = svc.RecordMessage(ctx, "u1")
		require.NoError(t, err)
		assert.False(t, p.LeveledUp)
	}
	p, err = svc.RecordMessage(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), p.Stats.XP)
	assert.Equal(t, 1, p.Level)
	assert.True(t, p.LeveledUp)
	assert.Equal(t, int64(20), p.Stats.AllTimeMessages)
}

func TestRecordMessage_CountsMetric(t *testing.T) {
	m := metrics.New()
	svc := NewService(repository.New(store.NewMemory()), m, logger.Nop())

	_, err := svc.RecordMessage(context.Background(), "u1")
	require.NoError(t, err)
	_, err = svc.AddXP(context.Background(), "u1", 10)
	require.NoError(t, err)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() == "jupiter_stats_messages_total" {
			found = true
			assert.Equal(t, float64(1), f.GetMetric()[0].GetCounter().GetValue())
		}
	}
	assert.True(t, found)
}

func TestAddXP(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	p, err := svc.AddXP(ctx, "u1", 400)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Level)
	assert.True(t, p.LeveledUp)
	assert.Zero(t, p.Stats.AllTimeMessages)

	_, err = svc.AddXP(ctx, "u1", 0)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}

func TestResetBucket(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	for _, id := range []string{"a", "a", "b"} {
		_, err := svc.RecordMessage(ctx, id)
		require.NoError(t, err)
	}
	_, err := svc.AddXP(ctx, "c", 50)
	require.NoError(t, err)

	n, err := svc.ResetBucket(ctx, member.BucketDaily)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "c has no daily messages")

	a, err := svc.Snapshot(ctx, "a")
	require.NoError(t, err)
	assert.Zero(t, a.DailyMessages)
	assert.Equal(t, int64(2), a.WeeklyMessages)
	assert.Equal(t, int64(2), a.MonthlyMessages)
	assert.Equal(t, int64(2), a.AllTimeMessages)
	assert.Equal(t, int64(10), a.XP)

	n, err = svc.ResetBucket(ctx, member.BucketDaily)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.ResetBucket(ctx, member.BucketAllTime)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	_, err = svc.ResetBucket(ctx, member.Bucket("hourly"))
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}

func TestGet_UnknownIsZero(t *testing.T) {
	svc := newService()

	p, err := svc.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, member.Stats{}, p.Stats)
	assert.Zero(t, p.Level)

	_, err = svc.Get(context.Background(), "")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}
