package dispatch

import (
	"time"

	"github.com/Porismic/JupiterBot/internal/domain/auction"
	"github.com/Porismic/JupiterBot/internal/domain/giveaway"
	"github.com/Porismic/JupiterBot/internal/domain/member"
	gsvc "github.com/Porismic/JupiterBot/internal/features/giveaway/service"
)

// Command is a request routed by the Dispatcher.
type Command interface {
	CommandName() string
}

// Giveaways.

type CreateGiveaway struct{ Input gsvc.CreateInput }

type ActivateGiveaway struct{ GiveawayID string }

type AddRequiredRole struct{ GiveawayID, RoleID string }

type AddExtraEntryRole struct {
	GiveawayID string
	RoleID     string
	Entries    int
}

type AddBypassRole struct{ GiveawayID, RoleID string }

// JoinGiveaway admits a member. When Roles is nil the roles are resolved
// through the member directory.
type JoinGiveaway struct {
	GiveawayID string
	UserID     string
	Roles      []string
}

type ViewParticipants struct{ GiveawayID string }

type CloseGiveaway struct{ GiveawayID string }

// RerollGiveaway replaces every winner when Targets is empty, otherwise only
// the targeted ones.
type RerollGiveaway struct {
	GiveawayID string
	Targets    []string
}

type RecordClaim struct{ GiveawayID, UserID, RecorderID string }

type QueryUnclaimed struct{ GiveawayID string }

type GetGiveaway struct{ GiveawayID string }

type ListGiveaways struct{ Status giveaway.Status }

type SweepExpired struct{}

type PurgeEnded struct{ Retention time.Duration }

// Premium slots.

// ReconcileSlots recomputes a member's total. When Roles is nil the roles are
// resolved through the member directory.
type ReconcileSlots struct {
	UserID string
	Roles  []string
}

// ReconcileAllSlots reconciles every member the directory knows.
type ReconcileAllSlots struct{}

type ConsumeSlot struct{ UserID string }

type ReleaseSlot struct{ UserID string }

type GrantSlots struct {
	UserID string
	Amount int
}

type RevokeSlots struct {
	UserID string
	Amount int
}

type ResetSlots struct{ UserID string }

type ViewSlots struct{ UserID string }

// Auctions.

type PostAuction struct {
	Name        string
	SellerID    string
	StartingBid int64
	Premium     bool
}

type EndAuction struct{ AuctionID string }

type CancelAuction struct{ AuctionID string }

type GetAuction struct{ AuctionID string }

type ListAuctions struct{ Status auction.Status }

// Member stats.

type RecordMessage struct{ UserID string }

type AddXP struct {
	UserID string
	Amount int64
}

type ResetStatsBucket struct{ Bucket member.Bucket }

type GetStats struct{ UserID string }

func (CreateGiveaway) CommandName() string    { return "create_giveaway" }
func (ActivateGiveaway) CommandName() string  { return "activate_giveaway" }
func (AddRequiredRole) CommandName() string   { return "add_required_role" }
func (AddExtraEntryRole) CommandName() string { return "add_extra_entry_role" }
func (AddBypassRole) CommandName() string     { return "add_bypass_role" }
func (JoinGiveaway) CommandName() string      { return "join_giveaway" }
func (ViewParticipants) CommandName() string  { return "view_participants" }
func (CloseGiveaway) CommandName() string     { return "close_giveaway" }
func (RerollGiveaway) CommandName() string    { return "reroll_giveaway" }
func (RecordClaim) CommandName() string       { return "record_claim" }
func (QueryUnclaimed) CommandName() string    { return "query_unclaimed" }
func (GetGiveaway) CommandName() string       { return "get_giveaway" }
func (ListGiveaways) CommandName() string     { return "list_giveaways" }
func (SweepExpired) CommandName() string      { return "sweep_expired" }
func (PurgeEnded) CommandName() string        { return "purge_ended" }
func (ReconcileSlots) CommandName() string    { return "reconcile_slots" }
func (ReconcileAllSlots) CommandName() string { return "reconcile_all_slots" }
func (ConsumeSlot) CommandName() string       { return "consume_slot" }
func (ReleaseSlot) CommandName() string       { return "release_slot" }
func (GrantSlots) CommandName() string        { return "grant_slots" }
func (RevokeSlots) CommandName() string       { return "revoke_slots" }
func (ResetSlots) CommandName() string        { return "reset_slots" }
func (ViewSlots) CommandName() string         { return "view_slots" }
func (PostAuction) CommandName() string       { return "post_auction" }
func (EndAuction) CommandName() string        { return "end_auction" }
func (CancelAuction) CommandName() string     { return "cancel_auction" }
func (GetAuction) CommandName() string        { return "get_auction" }
func (ListAuctions) CommandName() string      { return "list_auctions" }
func (RecordMessage) CommandName() string     { return "record_message" }
func (AddXP) CommandName() string             { return "add_xp" }
func (ResetStatsBucket) CommandName() string  { return "reset_stats_bucket" }
func (GetStats) CommandName() string          { return "get_stats" }
