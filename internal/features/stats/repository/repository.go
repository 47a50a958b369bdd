package repository

import (
	"context"
	"errors"

	"github.com/Porismic/JupiterBot/internal/domain/member"
	"github.com/Porismic/JupiterBot/internal/platform/store"
)

type storeRepository struct {
	store store.Store
}

// New returns a member stats repository persisting through s.
func New(s store.Store) member.StatsRepository {
	return &storeRepository{store: s}
}

func (r *storeRepository) Get(ctx context.Context, userID string) (*member.Stats, error) {
	var st member.Stats
	if err := r.store.Get(ctx, store.DatasetMemberStats, userID, &st); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, member.ErrStatsNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (r *storeRepository) Save(ctx context.Context, userID string, st *member.Stats) error {
	return r.store.Put(ctx, store.DatasetMemberStats, userID, st)
}

func (r *storeRepository) UserIDs(ctx context.Context) ([]string, error) {
	return r.store.Keys(ctx, store.DatasetMemberStats)
}
