package giveaway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Porismic/JupiterBot/internal/domain/member"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	withRoles := Requirements{RoleRestricted: true, RequiredRoles: []string{"r1", "r2"}}
	withLevel := Requirements{RequiredLevel: 3, BypassRoles: []string{"vip"}}
	withMessages := Requirements{
		RequiredMessages: MessageRequirement{Bucket: member.BucketWeekly, Amount: 10},
		BypassRoles:      []string{"vip"},
	}

	tests := []struct {
		name string
		req  Requirements
		c    Candidate
		want Decision
	}{
		{
			name: "no requirements",
			req:  Requirements{},
			c:    Candidate{},
			want: Decision{Admitted: true},
		},
		{
			name: "holds one of the required roles",
			req:  withRoles,
			c:    Candidate{Roles: []string{"x", "r2"}},
			want: Decision{Admitted: true},
		},
		{
			name: "missing required role",
			req:  withRoles,
			c:    Candidate{Roles: []string{"x"}},
			want: Decision{Reason: DenyMissingRequiredRole},
		},
		{
			name: "bypass does not waive role restriction",
			req:  Requirements{RoleRestricted: true, RequiredRoles: []string{"r1"}, BypassRoles: []string{"vip"}},
			c:    Candidate{Roles: []string{"vip"}},
			want: Decision{Reason: DenyMissingRequiredRole},
		},
		{
			name: "restriction flag without roles admits",
			req:  Requirements{RoleRestricted: true},
			c:    Candidate{},
			want: Decision{Admitted: true},
		},
		{
			name: "roles listed but restriction disabled",
			req:  Requirements{RequiredRoles: []string{"r1"}},
			c:    Candidate{},
			want: Decision{Admitted: true},
		},
		{
			name: "level too low",
			req:  withLevel,
			c:    Candidate{Stats: member.Stats{XP: 899}},
			want: Decision{Reason: DenyLevelTooLow},
		},
		{
			name: "level reached",
			req:  withLevel,
			c:    Candidate{Stats: member.Stats{XP: 900}},
			want: Decision{Admitted: true},
		},
		{
			name: "bypass waives level",
			req:  withLevel,
			c:    Candidate{Roles: []string{"vip"}},
			want: Decision{Admitted: true},
		},
		{
			name: "not enough messages",
			req:  withMessages,
			c:    Candidate{Stats: member.Stats{WeeklyMessages: 9, AllTimeMessages: 500}},
			want: Decision{Reason: DenyNotEnoughMessages},
		},
		{
			name: "enough messages",
			req:  withMessages,
			c:    Candidate{Stats: member.Stats{WeeklyMessages: 10}},
			want: Decision{Admitted: true},
		},
		{
			name: "bypass waives messages",
			req:  withMessages,
			c:    Candidate{Roles: []string{"vip"}},
			want: Decision{Admitted: true},
		},
		{
			name: "role check runs before level check",
			req:  Requirements{RoleRestricted: true, RequiredRoles: []string{"r1"}, RequiredLevel: 5},
			c:    Candidate{},
			want: Decision{Reason: DenyMissingRequiredRole},
		},
		{
			name: "level check runs before message check",
			req: Requirements{
				RequiredLevel:    5,
				RequiredMessages: MessageRequirement{Bucket: member.BucketDaily, Amount: 1},
			},
			c:    Candidate{},
			want: Decision{Reason: DenyLevelTooLow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Evaluate(tt.req, tt.c))
		})
	}
}

func TestRequirements_RoundTripEvaluatesIdentically(t *testing.T) {
	t.Parallel()

	g := Giveaway{
		ID:           "g1",
		Status:       StatusActive,
		WinnersCount: 1,
		Requirements: Requirements{
			RoleRestricted:   true,
			RequiredRoles:    []string{"r1"},
			RequiredLevel:    2,
			RequiredMessages: MessageRequirement{Bucket: member.BucketMonthly, Amount: 20},
			BypassRoles:      []string{"vip"},
			ExtraEntryRoles:  []ExtraEntryRole{{RoleID: "booster", Entries: 3}},
		},
		Participants: []Participant{{UserID: "u1", Entries: 1}},
		Claims:       map[string]Claim{},
		Winners:      []string{},
	}

	candidates := []Candidate{
		{Roles: []string{"r1"}, Stats: member.Stats{XP: 400, MonthlyMessages: 20}},
		{Roles: []string{"r1", "vip"}},
		{Roles: []string{"vip"}},
		{Roles: []string{"r1"}, Stats: member.Stats{XP: 400, MonthlyMessages: 19}},
	}

	raw, err := json.Marshal(g)
	require.NoError(t, err)
	var reloaded Giveaway
	require.NoError(t, json.Unmarshal(raw, &reloaded))

	assert.Equal(t, g, reloaded)
	for _, c := range candidates {
		assert.Equal(t, Evaluate(g.Requirements, c), Evaluate(reloaded.Requirements, c))
	}
}

func TestRequirements_Shaping(t *testing.T) {
	t.Parallel()

	var r Requirements
	r.AddRequiredRole("r1")
	r.AddRequiredRole("r1")
	assert.True(t, r.RoleRestricted)
	assert.Equal(t, []string{"r1"}, r.RequiredRoles)

	r.AddBypassRole("b1")
	r.AddBypassRole("b1")
	assert.Equal(t, []string{"b1"}, r.BypassRoles)

	r.SetExtraEntries("a", 2)
	r.SetExtraEntries("b", 5)
	r.SetExtraEntries("a", 3)
	assert.Equal(t, []ExtraEntryRole{{RoleID: "b", Entries: 5}, {RoleID: "a", Entries: 3}}, r.ExtraEntryRoles)

	n, ok := r.ExtraEntries([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, 5, n, "first configured role wins")

	_, ok = r.ExtraEntries([]string{"c"})
	assert.False(t, ok)
}

func TestGiveaway_Helpers(t *testing.T) {
	t.Parallel()

	g := Giveaway{
		Participants: []Participant{{UserID: "u1", Entries: 1}, {UserID: "u2", Entries: 4}, {UserID: "u3", Entries: 2}},
		Winners:      []string{"u2", "u3"},
		Claims:       map[string]Claim{"u2": {ClaimedAt: 10, ClaimedBy: "staff"}},
	}

	assert.Equal(t, 7, g.TotalEntries())
	assert.Equal(t, 1, g.ParticipantIndex("u2"))
	assert.Equal(t, -1, g.ParticipantIndex("u9"))
	assert.True(t, g.IsWinner("u3"))
	assert.False(t, g.IsWinner("u1"))
	assert.Equal(t, []string{"u3"}, g.Unclaimed())
	assert.Equal(t, []Participant{{UserID: "u1", Entries: 1}}, g.NonWinners())
}
