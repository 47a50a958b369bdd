package member

import (
	"context"
	"errors"
)

// ErrStatsNotFound is returned when a member has no stats yet.
var ErrStatsNotFound = errors.New("member stats not found")

// StatsRepository persists activity snapshots keyed by user id.
type StatsRepository interface {
	Get(ctx context.Context, userID string) (*Stats, error)
	Save(ctx context.Context, userID string, s *Stats) error
	// UserIDs lists every member with stored stats, ascending.
	UserIDs(ctx context.Context) ([]string, error)
}
