package random

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	mrand "math/rand"
	"sync"
	"sync/atomic"
)

// Source yields uniform integers in [0, n). n is always > 0.
type Source interface {
	Intn(n int) int
}

var entropy io.Reader = rand.Reader

// CryptoSource draws from crypto/rand. It panics when the entropy source fails.
type CryptoSource struct{}

func (CryptoSource) Intn(n int) int {
	v, err := rand.Int(entropy, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("random: crypto/rand failed: %v", err))
	}
	return int(v.Int64())
}

// Seeded is a reproducible source for tests and replays.
type Seeded struct {
	mu  sync.Mutex
	rnd *mrand.Rand
}

func NewSeeded(seed int64) *Seeded {
	return &Seeded{rnd: mrand.New(mrand.NewSource(seed))}
}

func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// Counting wraps a Source and records how many draws were made.
type Counting struct {
	Source
	calls atomic.Int64
}

func NewCounting(src Source) *Counting {
	return &Counting{Source: src}
}

func (c *Counting) Intn(n int) int {
	c.calls.Add(1)
	return c.Source.Intn(n)
}

// Calls returns the number of draws made so far.
func (c *Counting) Calls() int64 {
	return c.calls.Load()
}

// SampleIndexes returns k distinct indexes drawn uniformly from [0, n) using a
// partial Fisher-Yates shuffle. k is clamped to [0, n].
func SampleIndexes(src Source, n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + src.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// Scripted replays fixed values, each reduced modulo n. It panics when the
// script is exhausted.
type Scripted struct {
	mu     sync.Mutex
	values []int
}

func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

func (s *Scripted) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		panic("random: scripted source exhausted")
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}
