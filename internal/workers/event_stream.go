package workers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Porismic/JupiterBot/internal/dispatch"
	"github.com/Porismic/JupiterBot/internal/platform/redis"
)

// Event types accepted on the stream.
const (
	EventMessage      = "message"
	EventMemberUpdate = "member_update"
	EventGuildSync    = "guild_sync"
)

// StreamConfig names the stream and the consumer group.
type StreamConfig struct {
	Stream   string
	Group    string
	Consumer string
	// Block bounds each read; defaults to 5s.
	Block time.Duration
}

// EventStreamWorker turns entries of a Redis stream into commands. It lets
// sidecar processes feed member activity without a gateway connection.
type EventStreamWorker struct {
	rdb        *redis.Client
	dispatcher Dispatcher
	cfg        StreamConfig
	logger     zerolog.Logger
}

func NewEventStreamWorker(rdb *redis.Client, d Dispatcher, cfg StreamConfig, logger zerolog.Logger) *EventStreamWorker {
	if cfg.Block <= 0 {
		cfg.Block = 5 * time.Second
	}
	return &EventStreamWorker{rdb: rdb, dispatcher: d, cfg: cfg, logger: logger}
}

// Run consumes the stream until ctx is done.
func (w *EventStreamWorker) Run(ctx context.Context) error {
	err := w.rdb.XGroupCreateMkStream(ctx, w.cfg.Stream, w.cfg.Group, "$").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create consumer group: %w", err)
	}

	w.logger.Info().Str("stream", w.cfg.Stream).Str("group", w.cfg.Group).Msg("Starting event stream worker")
	for {
		if ctx.Err() != nil {
			w.logger.Info().Msg("Stopping event stream worker")
			return nil
		}

		streams, err := w.rdb.XReadGroup(ctx, &goredis.XReadGroupArgs{
			Group:    w.cfg.Group,
			Consumer: w.cfg.Consumer,
			Streams:  []string{w.cfg.Stream, ">"},
			Count:    16,
			Block:    w.cfg.Block,
		}).Result()
		if err != nil {
			if errors.Is(err, goredis.Nil) || ctx.Err() != nil {
				continue
			}
			w.logger.Error().Err(err).Msg("Failed to read event stream")
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
			}
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				w.handle(ctx, msg)
				if err := w.rdb.XAck(ctx, w.cfg.Stream, w.cfg.Group, msg.ID).Err(); err != nil {
					w.logger.Error().Err(err).Str("entry_id", msg.ID).Msg("Failed to ack event")
				}
			}
		}
	}
}

func (w *EventStreamWorker) handle(ctx context.Context, msg goredis.XMessage) {
	cmd, err := ParseEvent(msg.Values)
	if err != nil {
		w.logger.Warn().Err(err).Str("entry_id", msg.ID).Msg("Dropping malformed event")
		return
	}
	if _, err := w.dispatcher.Dispatch(ctx, cmd); err != nil {
		w.logger.Error().Err(err).Str("entry_id", msg.ID).Str("command", cmd.CommandName()).Msg("Event command failed")
	}
}

// ParseEvent maps stream entry fields to a command. Roles are a comma
// separated list; an empty list means the member holds no roles.
func ParseEvent(values map[string]any) (dispatch.Command, error) {
	eventType, _ := values["type"].(string)
	userID, _ := values["user_id"].(string)

	switch eventType {
	case EventMessage:
		if userID == "" {
			return nil, errors.New("message event without user_id")
		}
		return dispatch.RecordMessage{UserID: userID}, nil
	case EventMemberUpdate:
		if userID == "" {
			return nil, errors.New("member_update event without user_id")
		}
		raw, ok := values["roles"].(string)
		if !ok {
			return dispatch.ReconcileSlots{UserID: userID}, nil
		}
		return dispatch.ReconcileSlots{UserID: userID, Roles: splitRoles(raw)}, nil
	case EventGuildSync:
		return dispatch.ReconcileAllSlots{}, nil
	case "":
		return nil, errors.New("event without type")
	}
	return nil, fmt.Errorf("unknown event type %q", eventType)
}

func splitRoles(raw string) []string {
	roles := []string{}
	for _, r := range strings.Split(raw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}
