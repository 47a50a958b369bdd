package giveaway

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no giveaway has the requested id.
var ErrNotFound = errors.New("giveaway not found")

// Repository defines persistence operations for the Giveaway aggregate.
type Repository interface {
	Get(ctx context.Context, id string) (*Giveaway, error)
	Save(ctx context.Context, g *Giveaway) error
	Delete(ctx context.Context, id string) error
	// IDs returns every stored giveaway id without decoding the documents.
	IDs(ctx context.Context) ([]string, error)
	// List returns every giveaway ordered by id.
	List(ctx context.Context) ([]Giveaway, error)
}
