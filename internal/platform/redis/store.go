package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/Porismic/JupiterBot/internal/platform/store"
)

// Store keeps each document under "<prefix>:<dataset>:<key>" and tracks the
// keys of a dataset in the set "<prefix>:<dataset>:index".
type Store struct {
	client *Client
	prefix string
}

// NewStore returns a document store over an opened client.
func NewStore(client *Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

var _ store.Store = (*Store)(nil)

func (s *Store) docKey(dataset, key string) string {
	return s.prefix + ":" + dataset + ":" + key
}

func (s *Store) indexKey(dataset string) string {
	return s.prefix + ":" + dataset + ":index"
}

func (s *Store) Get(ctx context.Context, dataset, key string, dst any) error {
	data, err := s.client.Get(ctx, s.docKey(dataset, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return store.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get %s/%s: %w", dataset, key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to unmarshal %s/%s: %w", dataset, key, err)
	}
	return nil
}

func (s *Store) Put(ctx context.Context, dataset, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", dataset, key, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.docKey(dataset, key), data, 0)
	pipe.SAdd(ctx, s.indexKey(dataset), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to put %s/%s: %w", dataset, key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, dataset, key string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.docKey(dataset, key))
	pipe.SRem(ctx, s.indexKey(dataset), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", dataset, key, err)
	}
	return nil
}

func (s *Store) Keys(ctx context.Context, dataset string) ([]string, error) {
	keys, err := s.client.SMembers(ctx, s.indexKey(dataset)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dataset, err)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
