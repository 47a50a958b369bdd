package random

import (
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestSampleIndexes(t *testing.T) {
	src := NewSeeded(7)

	for _, tc := range []struct {
		n, k, want int
	}{
		{n: 10, k: 3, want: 3},
		{n: 3, k: 5, want: 3},
		{n: 4, k: 0, want: 0},
		{n: 0, k: 2, want: 0},
	} {
		got := SampleIndexes(src, tc.n, tc.k)
		assert.Len(t, got, tc.want)

		seen := map[int]bool{}
		for _, i := range got {
			assert.GreaterOrEqual(t, i, 0)
			assert.Less(t, i, tc.n)
			assert.False(t, seen[i], "index %d drawn twice", i)
			seen[i] = true
		}
	}
}

func TestCounting(t *testing.T) {
	c := NewCounting(NewSeeded(1))
	SampleIndexes(c, 5, 2)
	assert.Equal(t, int64(2), c.Calls())

	SampleIndexes(c, 5, 0)
	assert.Equal(t, int64(2), c.Calls())
}

func TestCryptoSource_InRange(t *testing.T) {
	var src CryptoSource
	for i := 0; i < 100; i++ {
		v := src.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}

func TestCryptoSource_PanicsWhenEntropyFails(t *testing.T) {
	orig := entropy
	t.Cleanup(func() { entropy = orig })
	entropy = iotest.ErrReader(errors.New("entropy unavailable"))

	assert.PanicsWithValue(t, "random: crypto/rand failed: entropy unavailable", func() {
		CryptoSource{}.Intn(10)
	})
}
