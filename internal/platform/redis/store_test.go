package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Porismic/JupiterBot/internal/platform/redis"
	"github.com/Porismic/JupiterBot/internal/platform/redis/redistest"
	"github.com/Porismic/JupiterBot/internal/platform/store/storetest"
)

func TestStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	client := redistest.Start(t)
	storetest.Run(t, redis.NewStore(client, "jupiter_test"))
}

func TestOpen_EmptyAddr(t *testing.T) {
	_, err := redis.Open(context.Background(), "", "", 0)
	require.Error(t, err)
}
