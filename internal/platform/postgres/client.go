package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// DB is a PostgreSQL connection pool.
type DB struct {
	*pgxpool.Pool
}

// Open creates the pool and pings the database.
func Open(ctx context.Context, databaseURL string, log zerolog.Logger) (*DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("empty postgres database url")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	cfg := pool.Config().ConnConfig
	log.Info().
		Str("host", cfg.Host).
		Uint16("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("PostgreSQL client initialized")

	return &DB{Pool: pool}, nil
}
