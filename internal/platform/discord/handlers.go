package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/Porismic/JupiterBot/internal/dispatch"
	"github.com/Porismic/JupiterBot/internal/features/giveaway/service"
)

const eventTimeout = 10 * time.Second

// Invalidator drops cached member data after a role change.
type Invalidator interface {
	Invalidate(ctx context.Context, userID string) error
}

// Handlers turns gateway events into dispatcher commands.
type Handlers struct {
	dispatcher  dispatch.Sender
	invalidator Invalidator
	guildID     string
	logger      zerolog.Logger
}

// NewHandlers builds the gateway handlers. invalidator may be nil.
func NewHandlers(d dispatch.Sender, invalidator Invalidator, guildID string, logger zerolog.Logger) *Handlers {
	return &Handlers{dispatcher: d, invalidator: invalidator, guildID: guildID, logger: logger}
}

func (h *Handlers) register(s *discordgo.Session) {
	s.AddHandler(h.onMemberUpdate)
	s.AddHandler(h.onMessageCreate)
	s.AddHandler(h.onGuildCreate)
	s.AddHandler(h.onInteraction)
}

func (h *Handlers) onMemberUpdate(_ *discordgo.Session, e *discordgo.GuildMemberUpdate) {
	if e.Member == nil || e.User == nil || e.GuildID != h.guildID || e.User.Bot {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	if h.invalidator != nil {
		if err := h.invalidator.Invalidate(ctx, e.User.ID); err != nil {
			h.logger.Warn().Err(err).Str("user_id", e.User.ID).Msg("Failed to invalidate cached member")
		}
	}
	cmd := dispatch.ReconcileSlots{UserID: e.User.ID, Roles: append([]string{}, e.Roles...)}
	if _, err := h.dispatcher.Dispatch(ctx, cmd); err != nil {
		h.logger.Error().Err(err).Str("user_id", e.User.ID).Msg("Failed to reconcile slots after role change")
	}
}

func (h *Handlers) onMessageCreate(_ *discordgo.Session, e *discordgo.MessageCreate) {
	if e.Author == nil || e.Author.Bot || e.GuildID != h.guildID {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	if _, err := h.dispatcher.Dispatch(ctx, dispatch.RecordMessage{UserID: e.Author.ID}); err != nil {
		h.logger.Error().Err(err).Str("user_id", e.Author.ID).Msg("Failed to record message")
	}
}

func (h *Handlers) onGuildCreate(_ *discordgo.Session, e *discordgo.GuildCreate) {
	if e.Guild == nil || e.ID != h.guildID {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	res, err := dispatch.Run[*dispatch.ReconcileAllResult](ctx, h.dispatcher, dispatch.ReconcileAllSlots{})
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to reconcile slots on guild sync")
		return
	}
	h.logger.Info().Int("members", res.Members).Msg("Slots reconciled on guild sync")
}

func (h *Handlers) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent || i.Member == nil || i.Member.User == nil {
		return
	}
	action, giveawayID, ok := parseCustomID(i.MessageComponentData().CustomID)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	reply := h.handleButton(ctx, action, giveawayID, i.Member.User.ID, i.Member.Roles)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:         reply,
			Flags:           discordgo.MessageFlagsEphemeral,
			AllowedMentions: &discordgo.MessageAllowedMentions{},
		},
	})
	if err != nil {
		h.logger.Error().Err(err).Str("giveaway_id", giveawayID).Msg("Failed to respond to interaction")
	}
}

// handleButton runs the command behind a button and returns the reply text.
func (h *Handlers) handleButton(ctx context.Context, action, giveawayID, userID string, roles []string) string {
	switch action {
	case actionJoin:
		res, err := dispatch.Run[*dispatch.JoinResult](ctx, h.dispatcher, dispatch.JoinGiveaway{
			GiveawayID: giveawayID,
			UserID:     userID,
			Roles:      append([]string{}, roles...),
		})
		if err != nil {
			h.logger.Debug().Err(err).Str("giveaway_id", giveawayID).Str("user_id", userID).Msg("Join refused")
			return errorReply(err)
		}
		return joinReply(res.Entries)
	case actionParticipants:
		view, err := dispatch.Run[*service.ParticipantsView](ctx, h.dispatcher, dispatch.ViewParticipants{GiveawayID: giveawayID})
		if err != nil {
			return errorReply(err)
		}
		return participantsReply(view)
	}
	return errorReply(nil)
}
