package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/Porismic/JupiterBot/internal/domain/giveaway"
	"github.com/Porismic/JupiterBot/internal/features/giveaway/service"
)

// Announcer posts giveaway messages as plain text with participation buttons.
type Announcer struct {
	session *discordgo.Session
	guildID string
}

var _ service.Announcer = (*Announcer)(nil)

func NewAnnouncer(session *discordgo.Session, guildID string) *Announcer {
	return &Announcer{session: session, guildID: guildID}
}

func (a *Announcer) PublishGiveaway(ctx context.Context, g *giveaway.Giveaway) (string, error) {
	msg, err := a.session.ChannelMessageSendComplex(g.ChannelID, &discordgo.MessageSend{
		Content:         giveawayMessage(g),
		Components:      giveawayComponents(g.ID, false),
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("send giveaway message: %w", err)
	}
	return msg.ID, nil
}

func (a *Announcer) AnnounceWinners(ctx context.Context, g *giveaway.Giveaway, rerolled bool) error {
	send := &discordgo.MessageSend{
		Content:         winnersMessage(g, rerolled),
		AllowedMentions: &discordgo.MessageAllowedMentions{Users: g.Winners},
		Reference:       a.reference(g),
	}
	_, err := a.session.ChannelMessageSendComplex(g.ChannelID, send, discordgo.WithContext(ctx))
	if err != nil {
		err = fmt.Errorf("send winners message: %w", err)
	}
	if rerolled {
		return err
	}
	return errors.Join(err, a.closeSurface(ctx, g))
}

func (a *Announcer) AnnounceNoParticipants(ctx context.Context, g *giveaway.Giveaway) error {
	_, err := a.session.ChannelMessageSendComplex(g.ChannelID, &discordgo.MessageSend{
		Content:         noParticipantsMessage(g),
		AllowedMentions: &discordgo.MessageAllowedMentions{},
		Reference:       a.reference(g),
	}, discordgo.WithContext(ctx))
	if err != nil {
		err = fmt.Errorf("send no participants message: %w", err)
	}
	return errors.Join(err, a.closeSurface(ctx, g))
}

func (a *Announcer) reference(g *giveaway.Giveaway) *discordgo.MessageReference {
	if g.MessageID == "" {
		return nil
	}
	return &discordgo.MessageReference{MessageID: g.MessageID, ChannelID: g.ChannelID, GuildID: a.guildID}
}

// closeSurface disables the join button on the original message.
func (a *Announcer) closeSurface(ctx context.Context, g *giveaway.Giveaway) error {
	if g.MessageID == "" {
		return nil
	}
	components := giveawayComponents(g.ID, true)
	_, err := a.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         g.MessageID,
		Channel:    g.ChannelID,
		Components: &components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("disable join button: %w", err)
	}
	return nil
}
