package repository

import (
	"context"
	"errors"

	"github.com/Porismic/JupiterBot/internal/domain/slots"
	"github.com/Porismic/JupiterBot/internal/platform/store"
)

type storeRepository struct {
	store store.Store
}

// New returns a slot record repository persisting through s.
func New(s store.Store) slots.Repository {
	return &storeRepository{store: s}
}

func (r *storeRepository) Get(ctx context.Context, userID string) (*slots.Record, error) {
	var rec slots.Record
	if err := r.store.Get(ctx, store.DatasetPremiumSlots, userID, &rec); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, slots.ErrNotFound
		}
		return nil, err
	}
	rec.UserID = userID
	return &rec, nil
}

func (r *storeRepository) Save(ctx context.Context, rec *slots.Record) error {
	return r.store.Put(ctx, store.DatasetPremiumSlots, rec.UserID, rec)
}
