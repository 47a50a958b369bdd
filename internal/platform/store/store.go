// Package store defines the document store the core persists through.
//
// A store maps (dataset, key) to a JSON document. Backends live in
// internal/platform/{redis,postgres}; NewMemory is the in-process backend.
package store

import (
	"context"
	"errors"
)

// Known datasets.
const (
	DatasetGiveaways    = "giveaways"
	DatasetPremiumSlots = "premium_slots"
	DatasetMemberStats  = "member_stats"
	DatasetAuctions     = "auctions"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("store: document not found")

// Store is a key-value store over JSON documents.
type Store interface {
	// Get decodes the document into dst. Returns ErrNotFound when absent.
	Get(ctx context.Context, dataset, key string, dst any) error
	// Put encodes value and replaces the document.
	Put(ctx context.Context, dataset, key string, value any) error
	// Delete removes the document. Deleting an absent key is not an error.
	Delete(ctx context.Context, dataset, key string) error
	// Keys lists every key of the dataset in ascending order.
	Keys(ctx context.Context, dataset string) ([]string, error)
	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}
