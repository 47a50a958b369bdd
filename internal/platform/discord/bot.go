// Package discord binds the core to a Discord guild through discordgo.
package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

type Config struct {
	Token   string
	GuildID string
}

// Bot owns the gateway session.
type Bot struct {
	session *discordgo.Session
	guildID string
	logger  zerolog.Logger
}

// New creates the session without connecting.
func New(cfg Config, logger zerolog.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildMessages
	s.State.TrackMembers = true
	s.State.TrackRoles = true
	return &Bot{session: s, guildID: cfg.GuildID, logger: logger}, nil
}

func (b *Bot) Directory() *Directory { return NewDirectory(b.session, b.guildID) }

func (b *Bot) Announcer() *Announcer { return NewAnnouncer(b.session, b.guildID) }

// Start registers the gateway handlers and opens the websocket.
func (b *Bot) Start(h *Handlers) error {
	h.register(b.session)
	b.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		b.logger.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("Discord session ready")
	})
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}
