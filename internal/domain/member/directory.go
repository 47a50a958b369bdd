package member

import (
	"context"
	"errors"
	"slices"
)

// ErrUnknownMember is returned by a Directory that cannot resolve a user.
var ErrUnknownMember = errors.New("member: unknown member")

// Member is a resolved guild member.
type Member struct {
	UserID      string
	DisplayName string
	Roles       []string
}

// HasRole reports whether the member holds roleID.
func (m Member) HasRole(roleID string) bool {
	return slices.Contains(m.Roles, roleID)
}

// Directory resolves members against the chat platform. The core never
// mutates it.
type Directory interface {
	Member(ctx context.Context, userID string) (Member, error)
	Members(ctx context.Context) ([]Member, error)
}

// StatsReader exposes read-only activity snapshots.
type StatsReader interface {
	Snapshot(ctx context.Context, userID string) (Stats, error)
}
