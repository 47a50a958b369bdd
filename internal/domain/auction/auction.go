// Package auction holds the auction bookkeeping that couples to premium slots.
package auction

import (
	"context"
	"errors"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusEnded, StatusCancelled:
		return true
	}
	return false
}

// ErrNotFound is returned when no auction has the requested id.
var ErrNotFound = errors.New("auction not found")

// Auction is a posted auction. Premium auctions hold one of the seller's
// premium slots until they end or are cancelled; SlotReleased records that the
// slot has been given back.
type Auction struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SellerID     string `json:"seller_id"`
	StartingBid  int64  `json:"starting_bid"`
	Premium      bool   `json:"premium"`
	Status       Status `json:"status"`
	SlotReleased bool   `json:"slot_released"`
	CreatedAt    int64  `json:"created_at"`
	ClosedAt     int64  `json:"closed_at,omitempty"`
}

// HoldsSlot reports whether the auction still owes its seller a slot release.
func (a *Auction) HoldsSlot() bool {
	return a.Premium && !a.SlotReleased
}

type Repository interface {
	Get(ctx context.Context, id string) (*Auction, error)
	Save(ctx context.Context, a *Auction) error
	Delete(ctx context.Context, id string) error
	// List returns every auction ordered by id.
	List(ctx context.Context) ([]Auction, error)
}
