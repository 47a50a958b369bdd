package mapper

import (
	"time"

	"github.com/Porismic/JupiterBot/internal/domain/giveaway"
	"github.com/Porismic/JupiterBot/internal/domain/member"
	"github.com/Porismic/JupiterBot/internal/features/giveaway/models/dto"
	"github.com/Porismic/JupiterBot/internal/features/giveaway/service"
)

// ToCreateInput maps the create request onto the service input.
func ToCreateInput(req dto.CreateGiveawayRequest) service.CreateInput {
	in := service.CreateInput{
		Name:           req.Name,
		Prize:          req.Prize,
		HostID:         req.HostID,
		ChannelID:      req.ChannelID,
		Winners:        req.Winners,
		Duration:       time.Duration(req.DurationSeconds) * time.Second,
		Color:          req.Color,
		RoleRestricted: req.RoleRestricted,
		RequiredLevel:  req.RequiredLevel,
		ThumbnailURL:   req.ThumbnailURL,
		ImageURL:       req.ImageURL,
		ClaimTimeHours: req.ClaimTimeHours,
	}
	if req.RequiredMessages != nil {
		in.RequiredMessages = giveaway.MessageRequirement{
			Bucket: member.Bucket(req.RequiredMessages.Bucket),
			Amount: req.RequiredMessages.Amount,
		}
	}
	return in
}

// ToGiveawayResponse adds the derived counters. Unclaimed winners are listed
// only once the giveaway has ended.
func ToGiveawayResponse(g *giveaway.Giveaway) *dto.GiveawayResponse {
	resp := &dto.GiveawayResponse{
		Giveaway:          *g,
		EndsAt:            time.Unix(g.EndTime, 0).UTC().Format(time.RFC3339),
		ParticipantsCount: len(g.Participants),
		TotalEntries:      g.TotalEntries(),
	}
	if g.Status == giveaway.StatusEnded {
		resp.Unclaimed = g.Unclaimed()
	}
	return resp
}

func ToGiveawayResponses(gs []giveaway.Giveaway) []*dto.GiveawayResponse {
	out := make([]*dto.GiveawayResponse, 0, len(gs))
	for i := range gs {
		out = append(out, ToGiveawayResponse(&gs[i]))
	}
	return out
}
