package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Porismic/JupiterBot/internal/platform/store"
)

// Store keeps documents in the documents table, one row per (dataset, key).
type Store struct {
	db *DB
}

func NewStore(db *DB) *Store {
	return &Store{db: db}
}

var _ store.Store = (*Store)(nil)

func (s *Store) Get(ctx context.Context, dataset, key string, dst any) error {
	var raw []byte
	err := s.db.QueryRow(ctx,
		`SELECT value FROM documents WHERE dataset = $1 AND key = $2`,
		dataset, key,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get %s/%s: %w", dataset, key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to unmarshal %s/%s: %w", dataset, key, err)
	}
	return nil
}

func (s *Store) Put(ctx context.Context, dataset, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", dataset, key, err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO documents (dataset, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (dataset, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		dataset, key, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to put %s/%s: %w", dataset, key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, dataset, key string) error {
	if _, err := s.db.Exec(ctx,
		`DELETE FROM documents WHERE dataset = $1 AND key = $2`,
		dataset, key,
	); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", dataset, key, err)
	}
	return nil
}

func (s *Store) Keys(ctx context.Context, dataset string) ([]string, error) {
	rows, err := s.db.Query(ctx,
		`SELECT key FROM documents WHERE dataset = $1 ORDER BY key COLLATE "C"`,
		dataset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dataset, err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s keys: %w", dataset, err)
	}
	return keys, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Close() error {
	s.db.Close()
	return nil
}
