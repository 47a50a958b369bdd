// Package cache keeps resolved guild members for a bounded time so repeated
// joins and slot checks do not hit the platform API.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Porismic/JupiterBot/internal/common/clock"
	"github.com/Porismic/JupiterBot/internal/domain/member"
)

// MemberCache stores members by user id.
type MemberCache interface {
	// Get reports false on a miss or an expired entry.
	Get(ctx context.Context, userID string) (member.Member, bool, error)
	Set(ctx context.Context, m member.Member) error
	Delete(ctx context.Context, userID string) error
}

// Directory is a read-through member directory.
type Directory struct {
	next   member.Directory
	cache  MemberCache
	logger zerolog.Logger
}

var _ member.Directory = (*Directory)(nil)

func NewDirectory(next member.Directory, cache MemberCache, logger zerolog.Logger) *Directory {
	return &Directory{next: next, cache: cache, logger: logger}
}

// Member serves from the cache and falls through on a miss. Cache failures
// only cost a lookup.
func (d *Directory) Member(ctx context.Context, userID string) (member.Member, error) {
	m, ok, err := d.cache.Get(ctx, userID)
	if err != nil {
		d.logger.Warn().Err(err).Str("user_id", userID).Msg("Member cache read failed")
	}
	if ok {
		return m, nil
	}

	m, err = d.next.Member(ctx, userID)
	if err != nil {
		return member.Member{}, err
	}
	if err := d.cache.Set(ctx, m); err != nil {
		d.logger.Warn().Err(err).Str("user_id", userID).Msg("Member cache write failed")
	}
	return m, nil
}

// Members always asks the underlying directory.
func (d *Directory) Members(ctx context.Context) ([]member.Member, error) {
	return d.next.Members(ctx)
}

// Invalidate drops a member, typically after a role change.
func (d *Directory) Invalidate(ctx context.Context, userID string) error {
	return d.cache.Delete(ctx, userID)
}

type entry struct {
	member  member.Member
	expires time.Time
}

// Memory is an in-process MemberCache.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   clock.Clock
	entries map[string]entry
}

func NewMemory(ttl time.Duration, clk clock.Clock) *Memory {
	if clk == nil {
		clk = clock.System{}
	}
	return &Memory{ttl: ttl, clock: clk, entries: make(map[string]entry)}
}

func (c *Memory) Get(_ context.Context, userID string) (member.Member, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[userID]
	if !ok {
		return member.Member{}, false, nil
	}
	if !c.clock.Now().Before(e.expires) {
		delete(c.entries, userID)
		return member.Member{}, false, nil
	}
	return e.member, true, nil
}

func (c *Memory) Set(_ context.Context, m member.Member) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[m.UserID] = entry{member: m, expires: c.clock.Now().Add(c.ttl)}
	return nil
}

func (c *Memory) Delete(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
	return nil
}
