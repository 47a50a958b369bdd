package service

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/Porismic/JupiterBot/internal/domain/giveaway"
	"github.com/Porismic/JupiterBot/internal/domain/member"
)

// MockAnnouncer is a mock implementation of Announcer
type MockAnnouncer struct {
	mock.Mock
}

func (m *MockAnnouncer) PublishGiveaway(ctx context.Context, g *giveaway.Giveaway) (string, error) {
	args := m.Called(ctx, g)
	return args.String(0), args.Error(1)
}

func (m *MockAnnouncer) AnnounceWinners(ctx context.Context, g *giveaway.Giveaway, rerolled bool) error {
	args := m.Called(ctx, g, rerolled)
	return args.Error(0)
}

func (m *MockAnnouncer) AnnounceNoParticipants(ctx context.Context, g *giveaway.Giveaway) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

// fakeStats serves fixed snapshots.
type fakeStats map[string]member.Stats

func (f fakeStats) Snapshot(_ context.Context, userID string) (member.Stats, error) {
	return f[userID], nil
}

var errSaveFailed = errors.New("save failed")

// flakyRepository fails Save for the listed giveaway ids.
type flakyRepository struct {
	giveaway.Repository
	failSave map[string]bool
}

func (r *flakyRepository) Save(ctx context.Context, g *giveaway.Giveaway) error {
	if r.failSave[g.ID] {
		return errSaveFailed
	}
	return r.Repository.Save(ctx, g)
}
