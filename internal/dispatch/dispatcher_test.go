package dispatch_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Porismic/JupiterBot/internal/app"
	"github.com/Porismic/JupiterBot/internal/common/clock"
	apperrors "github.com/Porismic/JupiterBot/internal/common/errors"
	"github.com/Porismic/JupiterBot/internal/common/logger"
	"github.com/Porismic/JupiterBot/internal/dispatch"
	"github.com/Porismic/JupiterBot/internal/domain/giveaway"
	"github.com/Porismic/JupiterBot/internal/domain/member"
	"github.com/Porismic/JupiterBot/internal/domain/slots"
	gsvc "github.com/Porismic/JupiterBot/internal/features/giveaway/service"
	ssvc "github.com/Porismic/JupiterBot/internal/features/slots/service"
	stsvc "github.com/Porismic/JupiterBot/internal/features/stats/service"
	"github.com/Porismic/JupiterBot/internal/platform/metrics"
	"github.com/Porismic/JupiterBot/internal/platform/store"
	"github.com/Porismic/JupiterBot/internal/utils/random"
)

// MockDirectory is a mock implementation of member.Directory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) Member(ctx context.Context, userID string) (member.Member, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(member.Member), args.Error(1)
}

func (m *MockDirectory) Members(ctx context.Context) ([]member.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]member.Member), args.Error(1)
}

type unknownCommand struct{}

func (unknownCommand) CommandName() string { return "unknown" }

type fixture struct {
	dispatcher *dispatch.Dispatcher
	clock      *clock.Manual
	metrics    *metrics.Metrics
}

func newFixture(dir member.Directory) *fixture {
	clk := clock.NewManual(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	m := metrics.New()
	core := app.NewCore(app.Options{
		Store:        store.NewMemory(),
		Directory:    dir,
		Clock:        clk,
		Random:       random.NewSeeded(7),
		BoosterTiers: map[string]int{"booster": 2},
		LevelTiers:   map[string]int{"lvl30": 1},
		Metrics:      m,
		Logger:       logger.Nop(),
	})
	return &fixture{dispatcher: core.Dispatcher, clock: clk, metrics: m}
}

func TestDispatch_RejectsUnknownAndNil(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	_, err := f.dispatcher.Dispatch(ctx, unknownCommand{})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	_, err = f.dispatcher.Dispatch(ctx, nil)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}

func TestDispatch_GiveawayLifecycle(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	g, err := dispatch.Run[*giveaway.Giveaway](ctx, f.dispatcher, dispatch.CreateGiveaway{Input: gsvc.CreateInput{
		Name:     "Nitro",
		Prize:    "1 month",
		Winners:  1,
		Duration: time.Hour,
	}})
	require.NoError(t, err)

	_, err = dispatch.Run[*giveaway.Giveaway](ctx, f.dispatcher, dispatch.AddExtraEntryRole{GiveawayID: g.ID, RoleID: "vip", Entries: 3})
	require.NoError(t, err)
	_, err = dispatch.Run[*giveaway.Giveaway](ctx, f.dispatcher, dispatch.ActivateGiveaway{GiveawayID: g.ID})
	require.NoError(t, err)

	joined, err := dispatch.Run[*dispatch.JoinResult](ctx, f.dispatcher, dispatch.JoinGiveaway{GiveawayID: g.ID, UserID: "u1", Roles: []string{"vip"}})
	require.NoError(t, err)
	assert.Equal(t, 3, joined.Entries)

	view, err := dispatch.Run[*gsvc.ParticipantsView](ctx, f.dispatcher, dispatch.ViewParticipants{GiveawayID: g.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
	assert.Equal(t, 3, view.TotalEntries)

	f.clock.Advance(2 * time.Hour)
	report, err := dispatch.Run[*gsvc.SweepReport](ctx, f.dispatcher, dispatch.SweepExpired{})
	require.NoError(t, err)
	assert.Equal(t, []string{g.ID}, report.Closed)

	ended, err := dispatch.Run[*giveaway.Giveaway](ctx, f.dispatcher, dispatch.GetGiveaway{GiveawayID: g.ID})
	require.NoError(t, err)
	assert.Equal(t, giveaway.StatusEnded, ended.Status)
	assert.Equal(t, []string{"u1"}, ended.Winners)

	_, err = f.dispatcher.Dispatch(ctx, dispatch.CloseGiveaway{GiveawayID: g.ID})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidState))

	observed := testutil.CollectAndCount(f.metrics.Registry(), "jupiter_dispatch_duration_seconds")
	assert.GreaterOrEqual(t, observed, 7, "one series per command and code")
}

func TestDispatch_ResolvesRolesThroughDirectory(t *testing.T) {
	dir := new(MockDirectory)
	dir.On("Member", mock.Anything, "u1").Return(member.Member{UserID: "u1", Roles: []string{"booster", "lvl30"}}, nil)
	dir.On("Member", mock.Anything, "ghost").Return(member.Member{}, member.ErrUnknownMember)
	f := newFixture(dir)
	ctx := context.Background()

	rec, err := dispatch.Run[*slots.Record](ctx, f.dispatcher, dispatch.ReconcileSlots{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 3, rec.TotalSlots)

	_, err = f.dispatcher.Dispatch(ctx, dispatch.ReconcileSlots{UserID: "ghost"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	// Explicit roles skip the lookup.
	rec, err = dispatch.Run[*slots.Record](ctx, f.dispatcher, dispatch.ReconcileSlots{UserID: "u2", Roles: []string{}})
	require.NoError(t, err)
	assert.Zero(t, rec.TotalSlots)
	dir.AssertNotCalled(t, "Member", mock.Anything, "u2")
}

func TestDispatch_DirectoryRequired(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	_, err := f.dispatcher.Dispatch(ctx, dispatch.JoinGiveaway{GiveawayID: "g", UserID: "u1"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodePlatform))

	_, err = f.dispatcher.Dispatch(ctx, dispatch.ReconcileAllSlots{})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodePlatform))
}

func TestDispatch_ReconcileAllSlots(t *testing.T) {
	dir := new(MockDirectory)
	dir.On("Members", mock.Anything).Return([]member.Member{
		{UserID: "a", Roles: []string{"booster"}},
		{UserID: "b", Roles: []string{"lvl30"}},
	}, nil)
	dir.On("Member", mock.Anything, "a").Return(member.Member{UserID: "a", Roles: []string{"booster"}}, nil)
	f := newFixture(dir)
	ctx := context.Background()

	res, err := dispatch.Run[*dispatch.ReconcileAllResult](ctx, f.dispatcher, dispatch.ReconcileAllSlots{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Members)

	snap, err := dispatch.Run[*ssvc.Snapshot](ctx, f.dispatcher, dispatch.ViewSlots{UserID: "a"})
	require.NoError(t, err)
	assert.Equal(t, 2, snap.TotalSlots)
	assert.Equal(t, 2, snap.Available)
}

func TestDispatch_PremiumAuctionUsesSlots(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	_, err := f.dispatcher.Dispatch(ctx, dispatch.PostAuction{Name: "Sword", SellerID: "s", Premium: true})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeCapacityExceeded))

	_, err = f.dispatcher.Dispatch(ctx, dispatch.GrantSlots{UserID: "s", Amount: 1})
	require.NoError(t, err)
	_, err = f.dispatcher.Dispatch(ctx, dispatch.PostAuction{Name: "Sword", SellerID: "s", Premium: true})
	require.NoError(t, err)

	snap, err := dispatch.Run[*ssvc.Snapshot](ctx, f.dispatcher, dispatch.ViewSlots{UserID: "s"})
	require.NoError(t, err)
	assert.Equal(t, 1, snap.UsedSlots)
	assert.Zero(t, snap.Available)
}

func TestDispatch_SerializesCommands(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.dispatcher.Dispatch(ctx, dispatch.RecordMessage{UserID: "chatty"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p, err := dispatch.Run[*stsvc.Progress](ctx, f.dispatcher, dispatch.GetStats{UserID: "chatty"})
	require.NoError(t, err)
	assert.Equal(t, int64(50), p.Stats.AllTimeMessages)
	assert.Equal(t, int64(250), p.Stats.XP)
}

func TestRun_WrongResultType(t *testing.T) {
	f := newFixture(nil)

	_, err := dispatch.Run[*giveaway.Giveaway](context.Background(), f.dispatcher, dispatch.GetStats{UserID: "u"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInternal))
}
