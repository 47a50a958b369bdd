package discord

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Porismic/JupiterBot/internal/app"
	"github.com/Porismic/JupiterBot/internal/common/logger"
	"github.com/Porismic/JupiterBot/internal/dispatch"
	"github.com/Porismic/JupiterBot/internal/domain/giveaway"
	gsvc "github.com/Porismic/JupiterBot/internal/features/giveaway/service"
	"github.com/Porismic/JupiterBot/internal/platform/store"
)

const guildID = "900000000000000001"

// MockSender is a mock implementation of dispatch.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Dispatch(ctx context.Context, cmd dispatch.Command) (any, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0), args.Error(1)
}

type recordingInvalidator struct{ ids []string }

func (r *recordingInvalidator) Invalidate(_ context.Context, userID string) error {
	r.ids = append(r.ids, userID)
	return nil
}

func TestHandleButton_JoinAndParticipants(t *testing.T) {
	ctx := context.Background()
	core := app.NewCore(app.Options{Store: store.NewMemory(), Logger: logger.Nop()})
	h := NewHandlers(core.Dispatcher, nil, guildID, logger.Nop())

	assert.Equal(t, "Giveaway not found.", h.handleButton(ctx, actionJoin, "missing", "u1", nil))

	g, err := dispatch.Run[*giveaway.Giveaway](ctx, core.Dispatcher, dispatch.CreateGiveaway{Input: gsvc.CreateInput{
		Name: "Nitro", Winners: 1, Duration: time.Hour,
	}})
	require.NoError(t, err)
	_, err = dispatch.Run[*giveaway.Giveaway](ctx, core.Dispatcher, dispatch.AddExtraEntryRole{GiveawayID: g.ID, RoleID: "vip", Entries: 2})
	require.NoError(t, err)

	assert.Equal(t, "This giveaway is no longer active.", h.handleButton(ctx, actionJoin, g.ID, "u1", nil))

	_, err = dispatch.Run[*giveaway.Giveaway](ctx, core.Dispatcher, dispatch.ActivateGiveaway{GiveawayID: g.ID})
	require.NoError(t, err)

	assert.Equal(t, "No participants yet.", h.handleButton(ctx, actionParticipants, g.ID, "u1", nil))
	// Button presses carry the member's roles, so no directory is needed.
	assert.Equal(t, "You've joined the giveaway with 2 entries!", h.handleButton(ctx, actionJoin, g.ID, "u1", []string{"vip"}))
	assert.Equal(t, "You've joined the giveaway with 1 entry!", h.handleButton(ctx, actionJoin, g.ID, "u2", nil))

	reply := h.handleButton(ctx, actionParticipants, g.ID, "u3", nil)
	assert.Contains(t, reply, "<@u1> - 2 entries")
	assert.Contains(t, reply, "Total participants: 2 | Total entries: 3")
}

func TestOnMemberUpdate_ReconcilesWithEventRoles(t *testing.T) {
	sender := new(MockSender)
	inv := &recordingInvalidator{}
	h := NewHandlers(sender, inv, guildID, logger.Nop())

	sender.On("Dispatch", mock.Anything, dispatch.ReconcileSlots{UserID: "u1", Roles: []string{"booster"}}).Return(nil, nil).Once()
	h.onMemberUpdate(nil, &discordgo.GuildMemberUpdate{Member: &discordgo.Member{
		GuildID: guildID,
		User:    &discordgo.User{ID: "u1"},
		Roles:   []string{"booster"},
	}})

	// Other guilds and bots are ignored.
	h.onMemberUpdate(nil, &discordgo.GuildMemberUpdate{Member: &discordgo.Member{GuildID: "other", User: &discordgo.User{ID: "u2"}}})
	h.onMemberUpdate(nil, &discordgo.GuildMemberUpdate{Member: &discordgo.Member{GuildID: guildID, User: &discordgo.User{ID: "bot", Bot: true}}})

	sender.AssertExpectations(t)
	assert.Equal(t, []string{"u1"}, inv.ids)
}

func TestOnMemberUpdate_EmptyRolesStillExplicit(t *testing.T) {
	sender := new(MockSender)
	h := NewHandlers(sender, nil, guildID, logger.Nop())

	sender.On("Dispatch", mock.Anything, mock.MatchedBy(func(cmd dispatch.Command) bool {
		c, ok := cmd.(dispatch.ReconcileSlots)
		return ok && c.Roles != nil && len(c.Roles) == 0
	})).Return(nil, nil).Once()
	h.onMemberUpdate(nil, &discordgo.GuildMemberUpdate{Member: &discordgo.Member{GuildID: guildID, User: &discordgo.User{ID: "u1"}}})

	sender.AssertExpectations(t)
}

func TestOnMessageCreate(t *testing.T) {
	sender := new(MockSender)
	h := NewHandlers(sender, nil, guildID, logger.Nop())

	sender.On("Dispatch", mock.Anything, dispatch.RecordMessage{UserID: "u1"}).Return(nil, nil).Once()
	h.onMessageCreate(nil, &discordgo.MessageCreate{Message: &discordgo.Message{GuildID: guildID, Author: &discordgo.User{ID: "u1"}}})
	h.onMessageCreate(nil, &discordgo.MessageCreate{Message: &discordgo.Message{GuildID: guildID, Author: &discordgo.User{ID: "b", Bot: true}}})
	h.onMessageCreate(nil, &discordgo.MessageCreate{Message: &discordgo.Message{GuildID: "", Author: &discordgo.User{ID: "dm"}}})

	sender.AssertExpectations(t)
}

func TestOnGuildCreate(t *testing.T) {
	sender := new(MockSender)
	h := NewHandlers(sender, nil, guildID, logger.Nop())

	sender.On("Dispatch", mock.Anything, dispatch.ReconcileAllSlots{}).Return(&dispatch.ReconcileAllResult{Members: 3}, nil).Once()
	h.onGuildCreate(nil, &discordgo.GuildCreate{Guild: &discordgo.Guild{ID: guildID}})
	h.onGuildCreate(nil, &discordgo.GuildCreate{Guild: &discordgo.Guild{ID: "other"}})

	sender.AssertExpectations(t)
}

func TestToMember(t *testing.T) {
	m := toMember(&discordgo.Member{User: &discordgo.User{ID: "u1", Username: "alice", GlobalName: "Alice"}, Roles: []string{"r"}})
	assert.Equal(t, "Alice", m.DisplayName)
	assert.Equal(t, []string{"r"}, m.Roles)

	m = toMember(&discordgo.Member{User: &discordgo.User{ID: "u1", Username: "alice"}, Nick: "Al"})
	assert.Equal(t, "Al", m.DisplayName)
	assert.NotNil(t, m.Roles)
}
