package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Porismic/JupiterBot/internal/common/clock"
	"github.com/Porismic/JupiterBot/internal/common/logger"
	"github.com/Porismic/JupiterBot/internal/domain/member"
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
	return args.Get(0).([]member.Member), args.Error(1)
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (member.Member, bool, error) {
	return member.Member{}, false, errors.New("cache down")
}
func (brokenCache) Set(context.Context, member.Member) error { return errors.New("cache down") }
func (brokenCache) Delete(context.Context, string) error     { return errors.New("cache down") }

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewManual(time.Unix(1000, 0))
	c := NewMemory(time.Minute, clk)

	require.NoError(t, c.Set(ctx, member.Member{UserID: "u1", Roles: []string{"r"}}))
	m, ok, err := c.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"r"}, m.Roles)

	clk.Advance(time.Minute)
	_, ok, err = c.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDirectory_ReadThrough(t *testing.T) {
	ctx := context.Background()
	next := new(MockDirectory)
	next.On("Member", mock.Anything, "u1").Return(member.Member{UserID: "u1", Roles: []string{"a"}}, nil).Once()
	next.On("Member", mock.Anything, "ghost").Return(member.Member{}, member.ErrUnknownMember)
	d := NewDirectory(next, NewMemory(time.Hour, nil), logger.Nop())

	for i := 0; i < 3; i++ {
		m, err := d.Member(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, m.Roles)
	}
	next.AssertNumberOfCalls(t, "Member", 1)

	next.On("Member", mock.Anything, "u1").Return(member.Member{UserID: "u1", Roles: []string{"b"}}, nil).Once()
	require.NoError(t, d.Invalidate(ctx, "u1"))
	m, err := d.Member(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, m.Roles)

	_, err = d.Member(ctx, "ghost")
	assert.ErrorIs(t, err, member.ErrUnknownMember)
}

func TestDirectory_CacheFailuresFallThrough(t *testing.T) {
	next := new(MockDirectory)
	next.On("Member", mock.Anything, "u1").Return(member.Member{UserID: "u1"}, nil)
	next.On("Members", mock.Anything).Return([]member.Member{{UserID: "u1"}}, nil)
	d := NewDirectory(next, brokenCache{}, logger.Nop())

	m, err := d.Member(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", m.UserID)

	all, err := d.Members(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
