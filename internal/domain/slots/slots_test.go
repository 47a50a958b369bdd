package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testAllotment = NewAllotment(
	map[string]int{"boost2": 1, "boost3": 2, "boost6": 4},
	map[string]int{"lvl30": 1, "lvl40": 2, "lvl50": 4},
)

func TestAllotment_RoleBased(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		roles []string
		want  int
	}{
		{name: "no roles", roles: nil, want: 0},
		{name: "unrelated roles", roles: []string{"member", "artist"}, want: 0},
		{name: "single booster", roles: []string{"boost3"}, want: 2},
		{name: "booster tier is not cumulative", roles: []string{"boost3", "boost6"}, want: 4},
		{name: "all booster roles", roles: []string{"boost2", "boost3", "boost6"}, want: 4},
		{name: "level tier is not cumulative", roles: []string{"lvl30", "lvl40"}, want: 2},
		{name: "tiers add up", roles: []string{"boost3", "lvl50"}, want: 6},
		{name: "maximum", roles: []string{"boost2", "boost6", "lvl30", "lvl50"}, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, testAllotment.RoleBased(tt.roles))
		})
	}
}

func TestAllotment_MonotonicPerTier(t *testing.T) {
	t.Parallel()

	for _, tier := range [][]string{{"boost2", "boost3", "boost6"}, {"lvl30", "lvl40", "lvl50"}} {
		for i := 1; i < len(tier); i++ {
			lower := testAllotment.RoleBased([]string{tier[i-1]})
			higher := testAllotment.RoleBased([]string{tier[i]})
			assert.GreaterOrEqual(t, higher, lower)
			assert.Equal(t, higher, testAllotment.RoleBased([]string{tier[i-1], tier[i]}))
		}
	}
}

func TestRecord(t *testing.T) {
	t.Parallel()

	r := Record{TotalSlots: 2, UsedSlots: 1}
	assert.Equal(t, 1, r.Available())
	assert.True(t, r.CanConsume())

	r.UsedSlots = 3
	assert.Equal(t, -1, r.Available())
	assert.False(t, r.CanConsume())
}
