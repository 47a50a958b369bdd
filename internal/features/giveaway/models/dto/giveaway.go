package dto

import "github.com/Porismic/JupiterBot/internal/domain/giveaway"

// MessageRequirement gates entry on a message counter.
type MessageRequirement struct {
	Bucket string `json:"bucket" binding:"required,oneof=daily weekly monthly all_time" example:"weekly"`
	Amount int64  `json:"amount" binding:"min=1" example:"50"`
}

// CreateGiveawayRequest is the body of POST /giveaways.
type CreateGiveawayRequest struct {
	Name             string              `json:"name" binding:"required,name" example:"Nitro Classic"`
	Prize            string              `json:"prize" binding:"max=500" example:"1 month of Nitro"`
	HostID           string              `json:"host_id" binding:"required,snowflake" example:"1334277888249303161"`
	ChannelID        string              `json:"channel_id" binding:"required,snowflake" example:"1334277888249303162"`
	Winners          int                 `json:"winners" binding:"required,min=1" example:"1"`
	DurationSeconds  int64               `json:"duration_seconds" binding:"required,min=1" example:"86400"`
	Color            string              `json:"color,omitempty" example:"#5865F2"`
	RoleRestricted   bool                `json:"role_restricted"`
	RequiredLevel    int                 `json:"required_level" binding:"min=0" example:"5"`
	RequiredMessages *MessageRequirement `json:"required_messages,omitempty"`
	ThumbnailURL     string              `json:"thumbnail_url,omitempty" binding:"omitempty,url"`
	ImageURL         string              `json:"image_url,omitempty" binding:"omitempty,url"`
	ClaimTimeHours   *int                `json:"claim_time_hours,omitempty" binding:"omitempty,min=0" example:"24"`
}

// RoleRequest names a role to add to the requirements.
type RoleRequest struct {
	RoleID string `json:"role_id" binding:"required,snowflake" example:"1334276381969874995"`
}

// ExtraEntryRoleRequest grants a role a fixed entry weight.
type ExtraEntryRoleRequest struct {
	RoleID  string `json:"role_id" binding:"required,snowflake" example:"1334276381969874995"`
	Entries int    `json:"entries" binding:"required,min=1" example:"3"`
}

// JoinRequest admits a member. Absent or null roles are resolved from the
// guild; an empty list means the member holds none.
type JoinRequest struct {
	UserID string   `json:"user_id" binding:"required,snowflake" example:"1334277888249303161"`
	Roles  []string `json:"roles" binding:"omitempty,dive,snowflake"`
}

// RerollRequest replaces the listed winners, or all of them when empty.
type RerollRequest struct {
	Targets []string `json:"targets,omitempty" binding:"omitempty,dive,snowflake"`
}

// ClaimRequest records that a winner received the prize.
type ClaimRequest struct {
	UserID     string `json:"user_id" binding:"required,snowflake" example:"1334277888249303161"`
	RecorderID string `json:"recorder_id" binding:"required,snowflake" example:"1334277888249303162"`
}

// PurgeRequest overrides the configured retention.
type PurgeRequest struct {
	RetentionHours int `json:"retention_hours" binding:"omitempty,min=1" example:"720"`
}

// JoinResponse is the entry weight granted to the member.
type JoinResponse struct {
	GiveawayID string `json:"giveaway_id"`
	UserID     string `json:"user_id"`
	Entries    int    `json:"entries"`
}

// GiveawayResponse is a giveaway with its derived counters.
type GiveawayResponse struct {
	giveaway.Giveaway
	EndsAt            string   `json:"ends_at" example:"2025-03-21T15:00:00Z"`
	ParticipantsCount int      `json:"participants_count" example:"42"`
	TotalEntries      int      `json:"total_entries" example:"57"`
	Unclaimed         []string `json:"unclaimed,omitempty"`
}

// UnclaimedResponse lists winners without a claim.
type UnclaimedResponse struct {
	GiveawayID string   `json:"giveaway_id"`
	Unclaimed  []string `json:"unclaimed"`
}
