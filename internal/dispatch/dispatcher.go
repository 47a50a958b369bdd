// Package dispatch routes commands to the core services one at a time.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Porismic/JupiterBot/internal/common/clock"
	apperrors "github.com/Porismic/JupiterBot/internal/common/errors"
	"github.com/Porismic/JupiterBot/internal/domain/member"
	asvc "github.com/Porismic/JupiterBot/internal/features/auction/service"
	gsvc "github.com/Porismic/JupiterBot/internal/features/giveaway/service"
	ssvc "github.com/Porismic/JupiterBot/internal/features/slots/service"
	stsvc "github.com/Porismic/JupiterBot/internal/features/stats/service"
	"github.com/Porismic/JupiterBot/internal/platform/metrics"
)

// Services are the handlers commands are routed to.
type Services struct {
	Giveaways *gsvc.Service
	Slots     *ssvc.Service
	Auctions  *asvc.Service
	Stats     *stsvc.Service
}

// JoinResult is the outcome of a successful join.
type JoinResult struct {
	GiveawayID string `json:"giveaway_id"`
	UserID     string `json:"user_id"`
	Entries    int    `json:"entries"`
}

// ReconcileAllResult counts the members reconciled.
type ReconcileAllResult struct {
	Members int `json:"members"`
}

// ResetBucketResult counts the members whose bucket was zeroed.
type ResetBucketResult struct {
	Bucket  member.Bucket `json:"bucket"`
	Members int           `json:"members"`
}

// Dispatcher serializes every command behind one mutex so each runs to
// completion before the next starts.
type Dispatcher struct {
	mu        sync.Mutex
	services  Services
	directory member.Directory
	clock     clock.Clock
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// New builds a dispatcher. directory may be nil; commands that need it then
// fail with a platform error.
func New(services Services, directory member.Directory, clk clock.Clock, m *metrics.Metrics, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		services:  services,
		directory: directory,
		clock:     clk,
		metrics:   m,
		logger:    logger,
	}
}

// Dispatch runs cmd and returns its result.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (any, error) {
	if cmd == nil {
		return nil, apperrors.NewValidationError("command", "must not be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	start := time.Now()
	result, err := d.route(ctx, cmd)
	elapsed := time.Since(start)

	code := ""
	if err != nil {
		code = string(apperrors.CodeOf(err))
	}
	d.metrics.ObserveDispatch(cmd.CommandName(), code, elapsed)

	ev := d.logger.Debug().Str("command", cmd.CommandName()).Dur("duration", elapsed)
	if err != nil {
		ev = ev.Str("code", code).Err(err)
	}
	ev.Msg("Command dispatched")
	return result, err
}

// Sender is anything commands can be dispatched to.
type Sender interface {
	Dispatch(ctx context.Context, cmd Command) (any, error)
}

// Run dispatches cmd and asserts the result type.
func Run[T any](ctx context.Context, d Sender, cmd Command) (T, error) {
	var zero T
	result, err := d.Dispatch(ctx, cmd)
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, apperrors.Newf(apperrors.ErrCodeInternal, "command %s returned %T", cmd.CommandName(), result)
	}
	return typed, nil
}

func (d *Dispatcher) route(ctx context.Context, cmd Command) (any, error) {
	g, sl, au, st := d.services.Giveaways, d.services.Slots, d.services.Auctions, d.services.Stats

	switch c := cmd.(type) {
	case CreateGiveaway:
		return g.Create(ctx, c.Input)
	case ActivateGiveaway:
		return g.Activate(ctx, c.GiveawayID)
	case AddRequiredRole:
		return g.AddRequiredRole(ctx, c.GiveawayID, c.RoleID)
	case AddExtraEntryRole:
		return g.AddExtraEntryRole(ctx, c.GiveawayID, c.RoleID, c.Entries)
	case AddBypassRole:
		return g.AddBypassRole(ctx, c.GiveawayID, c.RoleID)
	case JoinGiveaway:
		roles, err := d.roles(ctx, c.UserID, c.Roles)
		if err != nil {
			return nil, err
		}
		entries, err := g.Join(ctx, c.GiveawayID, c.UserID, roles)
		if err != nil {
			return nil, err
		}
		return &JoinResult{GiveawayID: c.GiveawayID, UserID: c.UserID, Entries: entries}, nil
	case ViewParticipants:
		return g.ViewParticipants(ctx, c.GiveawayID)
	case CloseGiveaway:
		return g.Close(ctx, c.GiveawayID, d.clock.Now())
	case RerollGiveaway:
		return g.Reroll(ctx, c.GiveawayID, c.Targets)
	case RecordClaim:
		return g.RecordClaim(ctx, c.GiveawayID, c.UserID, c.RecorderID, d.clock.Now())
	case QueryUnclaimed:
		return g.QueryUnclaimed(ctx, c.GiveawayID)
	case GetGiveaway:
		return g.Get(ctx, c.GiveawayID)
	case ListGiveaways:
		return g.List(ctx, c.Status)
	case SweepExpired:
		return g.SweepExpired(ctx, d.clock.Now())
	case PurgeEnded:
		return g.PurgeEnded(ctx, d.clock.Now(), c.Retention)

	case ReconcileSlots:
		roles, err := d.roles(ctx, c.UserID, c.Roles)
		if err != nil {
			return nil, err
		}
		return sl.Reconcile(ctx, c.UserID, roles)
	case ReconcileAllSlots:
		if d.directory == nil {
			return nil, errNoDirectory()
		}
		members, err := d.directory.Members(ctx)
		if err != nil {
			return nil, apperrors.NewPlatformError("list members", err)
		}
		n, err := sl.ReconcileAll(ctx, members)
		if err != nil {
			return nil, err
		}
		return &ReconcileAllResult{Members: n}, nil
	case ConsumeSlot:
		return sl.Consume(ctx, c.UserID)
	case ReleaseSlot:
		return sl.Release(ctx, c.UserID)
	case GrantSlots:
		return sl.GrantManual(ctx, c.UserID, c.Amount)
	case RevokeSlots:
		return sl.RevokeManual(ctx, c.UserID, c.Amount)
	case ResetSlots:
		return sl.ResetUsed(ctx, c.UserID)
	case ViewSlots:
		return sl.Get(ctx, c.UserID)

	case PostAuction:
		return au.Post(ctx, asvc.PostInput{
			Name:        c.Name,
			SellerID:    c.SellerID,
			StartingBid: c.StartingBid,
			Premium:     c.Premium,
		})
	case EndAuction:
		return au.End(ctx, c.AuctionID)
	case CancelAuction:
		return au.Cancel(ctx, c.AuctionID)
	case GetAuction:
		return au.Get(ctx, c.AuctionID)
	case ListAuctions:
		return au.List(ctx, c.Status)

	case RecordMessage:
		return st.RecordMessage(ctx, c.UserID)
	case AddXP:
		return st.AddXP(ctx, c.UserID, c.Amount)
	case ResetStatsBucket:
		n, err := st.ResetBucket(ctx, c.Bucket)
		if err != nil {
			return nil, err
		}
		return &ResetBucketResult{Bucket: c.Bucket, Members: n}, nil
	case GetStats:
		return st.Get(ctx, c.UserID)
	}

	return nil, apperrors.NewValidationError("command", fmt.Sprintf("unknown command %q", cmd.CommandName()))
}

func errNoDirectory() error {
	return apperrors.New(apperrors.ErrCodePlatform, "member directory is not configured")
}

// roles returns explicit roles, or looks them up when none were given.
func (d *Dispatcher) roles(ctx context.Context, userID string, explicit []string) ([]string, error) {
	if explicit != nil {
		return explicit, nil
	}
	if d.directory == nil {
		return nil, errNoDirectory()
	}
	m, err := d.directory.Member(ctx, userID)
	if errors.Is(err, member.ErrUnknownMember) {
		return nil, apperrors.NewNotFoundError("member", userID)
	}
	if err != nil {
		return nil, apperrors.NewPlatformError("resolve member roles", err).WithDetail("user_id", userID)
	}
	return m.Roles, nil
}
