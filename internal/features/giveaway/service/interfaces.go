package service

import (
	"context"

	"github.com/Porismic/JupiterBot/internal/domain/giveaway"
)

// Announcer publishes giveaway messages to the chat platform.
type Announcer interface {
	// PublishGiveaway posts the participation surface and returns its message id.
	PublishGiveaway(ctx context.Context, g *giveaway.Giveaway) (string, error)
	AnnounceWinners(ctx context.Context, g *giveaway.Giveaway, rerolled bool) error
	AnnounceNoParticipants(ctx context.Context, g *giveaway.Giveaway) error
}

// NopAnnouncer publishes nothing. PublishGiveaway returns an empty message id.
type NopAnnouncer struct{}

func (NopAnnouncer) PublishGiveaway(context.Context, *giveaway.Giveaway) (string, error) {
	return "", nil
}

func (NopAnnouncer) AnnounceWinners(context.Context, *giveaway.Giveaway, bool) error { return nil }

func (NopAnnouncer) AnnounceNoParticipants(context.Context, *giveaway.Giveaway) error { return nil }
