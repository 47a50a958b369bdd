package workers

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Porismic/JupiterBot/internal/common/logger"
	"github.com/Porismic/JupiterBot/internal/dispatch"
	"github.com/Porismic/JupiterBot/internal/platform/redis/redistest"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		want    dispatch.Command
		wantErr bool
	}{
		{
			name:   "message",
			values: map[string]any{"type": "message", "user_id": "u1"},
			want:   dispatch.RecordMessage{UserID: "u1"},
		},
		{
			name:   "member update with roles",
			values: map[string]any{"type": "member_update", "user_id": "u1", "roles": "a, b,,c"},
			want:   dispatch.ReconcileSlots{UserID: "u1", Roles: []string{"a", "b", "c"}},
		},
		{
			name:   "member update with no roles left",
			values: map[string]any{"type": "member_update", "user_id": "u1", "roles": ""},
			want:   dispatch.ReconcileSlots{UserID: "u1", Roles: []string{}},
		},
		{
			name:   "member update resolves roles",
			values: map[string]any{"type": "member_update", "user_id": "u1"},
			want:   dispatch.ReconcileSlots{UserID: "u1"},
		},
		{
			name:   "guild sync",
			values: map[string]any{"type": "guild_sync"},
			want:   dispatch.ReconcileAllSlots{},
		},
		{name: "missing user", values: map[string]any{"type": "message"}, wantErr: true},
		{name: "missing type", values: map[string]any{"user_id": "u1"}, wantErr: true},
		{name: "unknown type", values: map[string]any{"type": "reaction", "user_id": "u1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEvent(tt.values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventStreamWorker(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	client := redistest.Start(t)
	d := &recordingDispatcher{}
	w := NewEventStreamWorker(client, d, StreamConfig{
		Stream:   "jupiter:events",
		Group:    "core",
		Consumer: "test",
		Block:    100 * time.Millisecond,
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// The group is created at "$", so give the worker a moment before producing.
	require.Eventually(t, func() bool {
		groups, err := client.XInfoGroups(context.Background(), "jupiter:events").Result()
		return err == nil && len(groups) == 1
	}, 5*time.Second, 10*time.Millisecond)

	for _, values := range []map[string]any{
		{"type": "message", "user_id": "u1"},
		{"type": "bogus"},
		{"type": "member_update", "user_id": "u2", "roles": "r1"},
	} {
		require.NoError(t, client.XAdd(context.Background(), &goredis.XAddArgs{Stream: "jupiter:events", Values: values}).Err())
	}

	require.Eventually(t, func() bool { return len(d.commands()) == 2 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []dispatch.Command{
		dispatch.RecordMessage{UserID: "u1"},
		dispatch.ReconcileSlots{UserID: "u2", Roles: []string{"r1"}},
	}, d.commands())

	// Every entry is acked, malformed ones included.
	assert.Eventually(t, func() bool {
		pending, err := client.XPending(context.Background(), "jupiter:events", "core").Result()
		return err == nil && pending.Count == 0
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}
