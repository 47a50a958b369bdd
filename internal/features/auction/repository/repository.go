package repository

import (
	"context"
	"errors"

	"github.com/Porismic/JupiterBot/internal/domain/auction"
	"github.com/Porismic/JupiterBot/internal/platform/store"
)

type storeRepository struct {
	store store.Store
}

func New(s store.Store) auction.Repository {
	return &storeRepository{store: s}
}

func (r *storeRepository) Get(ctx context.Context, id string) (*auction.Auction, error) {
	var a auction.Auction
	if err := r.store.Get(ctx, store.DatasetAuctions, id, &a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, auction.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *storeRepository) Save(ctx context.Context, a *auction.Auction) error {
	return r.store.Put(ctx, store.DatasetAuctions, a.ID, a)
}

func (r *storeRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.DatasetAuctions, id)
}

func (r *storeRepository) List(ctx context.Context) ([]auction.Auction, error) {
	keys, err := r.store.Keys(ctx, store.DatasetAuctions)
	if err != nil {
		return nil, err
	}
	out := make([]auction.Auction, 0, len(keys))
	for _, id := range keys {
		a, err := r.Get(ctx, id)
		if errors.Is(err, auction.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}
