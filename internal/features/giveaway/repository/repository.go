package repository

import (
	"context"
	"errors"

	"github.com/Porismic/JupiterBot/internal/domain/giveaway"
	"github.com/Porismic/JupiterBot/internal/platform/store"
)

type storeRepository struct {
	store store.Store
}

// New returns a giveaway repository persisting through s.
func New(s store.Store) giveaway.Repository {
	return &storeRepository{store: s}
}

func (r *storeRepository) Get(ctx context.Context, id string) (*giveaway.Giveaway, error) {
	var g giveaway.Giveaway
	if err := r.store.Get(ctx, store.DatasetGiveaways, id, &g); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, giveaway.ErrNotFound
		}
		return nil, err
	}
	normalize(&g)
	return &g, nil
}

func (r *storeRepository) Save(ctx context.Context, g *giveaway.Giveaway) error {
	return r.store.Put(ctx, store.DatasetGiveaways, g.ID, g)
}

func (r *storeRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.DatasetGiveaways, id)
}

func (r *storeRepository) IDs(ctx context.Context) ([]string, error) {
	return r.store.Keys(ctx, store.DatasetGiveaways)
}

func (r *storeRepository) List(ctx context.Context) ([]giveaway.Giveaway, error) {
	keys, err := r.IDs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]giveaway.Giveaway, 0, len(keys))
	for _, id := range keys {
		g, err := r.Get(ctx, id)
		if errors.Is(err, giveaway.ErrNotFound) {
			// deleted between Keys and Get
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, nil
}

// normalize replaces null collections from older documents with empty ones.
func normalize(g *giveaway.Giveaway) {
	if g.Participants == nil {
		g.Participants = []giveaway.Participant{}
	}
	if g.Claims == nil {
		g.Claims = map[string]giveaway.Claim{}
	}
	if g.Winners == nil {
		g.Winners = []string{}
	}
}
