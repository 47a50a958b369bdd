package giveaway

import "slices"

// Status represents the lifecycle state of a giveaway.
type Status string

const (
	StatusCreated Status = "created"
	StatusActive  Status = "active"
	StatusEnded   Status = "ended"
)

func (s Status) Valid() bool {
	switch s {
	case StatusCreated, StatusActive, StatusEnded:
		return true
	}
	return false
}

// DefaultColor is used when a giveaway is created without a color.
const DefaultColor = 0x5865F2

// Style holds the announcement styling.
type Style struct {
	Color        int    `json:"color"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

// Participant is a joined member and its entry weight.
type Participant struct {
	UserID  string `json:"user_id"`
	Entries int    `json:"entries"`
}

// Claim records who confirmed a winner's prize and when.
type Claim struct {
	ClaimedAt int64  `json:"claimed_at"`
	ClaimedBy string `json:"claimed_by"`
}

// Giveaway is the aggregate owned by the giveaway state machine.
// Times are epoch seconds.
type Giveaway struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Prize          string           `json:"prize"`
	HostID         string           `json:"host_id"`
	ChannelID      string           `json:"channel_id"`
	MessageID      string           `json:"message_id,omitempty"`
	WinnersCount   int              `json:"winners_count"`
	CreatedAt      int64            `json:"created_at"`
	EndTime        int64            `json:"end_time"`
	Status         Status           `json:"status"`
	Style          Style            `json:"style"`
	Requirements   Requirements     `json:"requirements"`
	Participants   []Participant    `json:"participants"`
	ClaimTimeHours *int             `json:"claim_time_hours,omitempty"`
	ClaimDeadline  *int64           `json:"claim_deadline,omitempty"`
	Claims         map[string]Claim `json:"claims"`
	Winners        []string         `json:"winners"`
	EndedAt        int64            `json:"ended_at,omitempty"`
}

// ParticipantIndex returns the index of the user's entry, or -1.
func (g *Giveaway) ParticipantIndex(userID string) int {
	return slices.IndexFunc(g.Participants, func(p Participant) bool {
		return p.UserID == userID
	})
}

// TotalEntries sums the entry weights.
func (g *Giveaway) TotalEntries() int {
	total := 0
	for _, p := range g.Participants {
		total += p.Entries
	}
	return total
}

func (g *Giveaway) IsWinner(userID string) bool {
	return slices.Contains(g.Winners, userID)
}

// Unclaimed lists winners without a claim, in winner order.
func (g *Giveaway) Unclaimed() []string {
	out := make([]string, 0, len(g.Winners))
	for _, w := range g.Winners {
		if _, ok := g.Claims[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}

// NonWinners lists participants that are not current winners, in join order.
func (g *Giveaway) NonWinners() []Participant {
	out := make([]Participant, 0, len(g.Participants))
	for _, p := range g.Participants {
		if !g.IsWinner(p.UserID) {
			out = append(out, p)
		}
	}
	return out
}
