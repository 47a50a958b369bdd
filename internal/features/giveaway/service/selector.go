package service

import (
	"slices"

	"github.com/Porismic/JupiterBot/internal/domain/giveaway"
	"github.com/Porismic/JupiterBot/internal/utils/random"
)

// SelectionMode picks the weighted draw algorithm.
type SelectionMode string

const (
	// SelectionLegacy samples positions of the expanded entry pool without
	// replacement and collapses repeated ids afterwards. It can return fewer
	// winners than requested when a heavy participant is drawn more than once.
	SelectionLegacy SelectionMode = "legacy"
	// SelectionDistinct removes a winner's whole weight after each pick, so it
	// always returns min(wanted, distinct participants) ids.
	SelectionDistinct SelectionMode = "distinct"
)

// Selector draws weighted winners.
type Selector struct {
	src  random.Source
	mode SelectionMode
}

func NewSelector(src random.Source, mode SelectionMode) *Selector {
	if mode == "" {
		mode = SelectionLegacy
	}
	return &Selector{src: src, mode: mode}
}

func (s *Selector) Mode() SelectionMode { return s.mode }

// SelectWinners returns ordered unique winner ids drawn from participants.
func (s *Selector) SelectWinners(participants []giveaway.Participant, wanted int) []string {
	k := min(wanted, len(participants))
	if k <= 0 {
		return []string{}
	}
	if s.mode == SelectionDistinct {
		return s.drawDistinct(participants, k)
	}
	return s.drawLegacy(participants, k)
}

// RerollAll draws a fresh winners list.
func (s *Selector) RerollAll(participants []giveaway.Participant, wanted int) []string {
	return s.SelectWinners(participants, wanted)
}

// RerollSpecific drops targets from current and appends replacements drawn
// from available. The result may be shorter than current.
func (s *Selector) RerollSpecific(current []string, available []giveaway.Participant, targets []string) []string {
	retained := make([]string, 0, len(current))
	for _, w := range current {
		if !slices.Contains(targets, w) {
			retained = append(retained, w)
		}
	}

	pool := make([]giveaway.Participant, 0, len(available))
	for _, p := range available {
		if !slices.Contains(retained, p.UserID) && !slices.Contains(targets, p.UserID) {
			pool = append(pool, p)
		}
	}

	for _, id := range s.SelectWinners(pool, len(targets)) {
		if !slices.Contains(retained, id) {
			retained = append(retained, id)
		}
	}
	return retained
}

func (s *Selector) drawLegacy(participants []giveaway.Participant, k int) []string {
	var pool []string
	for _, p := range participants {
		for i := 0; i < p.Entries; i++ {
			pool = append(pool, p.UserID)
		}
	}

	winners := make([]string, 0, k)
	for _, i := range random.SampleIndexes(s.src, len(pool), k) {
		if id := pool[i]; !slices.Contains(winners, id) {
			winners = append(winners, id)
		}
	}
	return winners
}

func (s *Selector) drawDistinct(participants []giveaway.Participant, k int) []string {
	pool := slices.Clone(participants)
	winners := make([]string, 0, k)

	for len(winners) < k && len(pool) > 0 {
		totalWeight := 0
		for _, p := range pool {
			totalWeight += p.Entries
		}
		if totalWeight <= 0 {
			break
		}

		winningTicket := s.src.Intn(totalWeight) + 1
		currentWeight := 0
		for i, p := range pool {
			currentWeight += p.Entries
			if currentWeight >= winningTicket {
				winners = append(winners, p.UserID)
				pool = slices.Delete(pool, i, i+1)
				break
			}
		}
	}
	return winners
}
