package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Porismic/JupiterBot/internal/domain/member"
	rplatform "github.com/Porismic/JupiterBot/internal/platform/redis"
)

// MemberCache keeps members as JSON under "<prefix>:member:<user_id>" with a TTL.
type MemberCache struct {
	client *rplatform.Client
	prefix string
	ttl    time.Duration
}

func NewMemberCache(client *rplatform.Client, prefix string, ttl time.Duration) *MemberCache {
	return &MemberCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *MemberCache) key(userID string) string { return c.prefix + ":member:" + userID }

func (c *MemberCache) Get(ctx context.Context, userID string) (member.Member, bool, error) {
	b, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return member.Member{}, false, nil
	}
	if err != nil {
		return member.Member{}, false, err
	}
	var m member.Member
	if err := json.Unmarshal(b, &m); err != nil {
		return member.Member{}, false, err
	}
	return m, true, nil
}

func (c *MemberCache) Set(ctx context.Context, m member.Member) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(m.UserID), b, c.ttl).Err()
}

func (c *MemberCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
