package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	apperrors "github.com/Porismic/JupiterBot/internal/common/errors"
	"github.com/Porismic/JupiterBot/internal/domain/giveaway"
	"github.com/Porismic/JupiterBot/internal/features/giveaway/service"
)

const (
	actionJoin         = "join"
	actionParticipants = "participants"

	customIDPrefix = "giveaway"
	// Shown at most in the ephemeral participants reply.
	participantsShown = 20
)

func customID(action, giveawayID string) string {
	return customIDPrefix + ":" + action + ":" + giveawayID
}

// parseCustomID splits "giveaway:<action>:<id>".
func parseCustomID(id string) (action, giveawayID string, ok bool) {
	parts := strings.SplitN(id, ":", 3)
	if len(parts) != 3 || parts[0] != customIDPrefix || parts[2] == "" {
		return "", "", false
	}
	switch parts[1] {
	case actionJoin, actionParticipants:
		return parts[1], parts[2], true
	}
	return "", "", false
}

func giveawayComponents(giveawayID string, closed bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "🎉 Join Giveaway",
					Style:    discordgo.PrimaryButton,
					CustomID: customID(actionJoin, giveawayID),
					Disabled: closed,
				},
				discordgo.Button{
					Label:    "📊 View Participants",
					Style:    discordgo.SecondaryButton,
					CustomID: customID(actionParticipants, giveawayID),
				},
			},
		},
	}
}

func mentionUsers(ids []string) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = "<@" + id + ">"
	}
	return strings.Join(out, " ")
}

func mentionRoles(ids []string, sep string) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = "<@&" + id + ">"
	}
	return strings.Join(out, sep)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func giveawayMessage(g *giveaway.Giveaway) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎉 **GIVEAWAY: %s** 🎉\n", g.Name)
	if g.Prize != "" {
		fmt.Fprintf(&b, "**Prize:** %s\n", g.Prize)
	}
	fmt.Fprintf(&b, "**Winners:** %d\n", g.WinnersCount)
	fmt.Fprintf(&b, "**Hosted by:** <@%s>\n", g.HostID)
	fmt.Fprintf(&b, "**Ends:** <t:%d:R> (<t:%d:F>)\n", g.EndTime, g.EndTime)

	r := g.Requirements
	if r.RoleRestricted && len(r.RequiredRoles) > 0 {
		fmt.Fprintf(&b, "**Required roles:** %s\n", mentionRoles(r.RequiredRoles, " or "))
	}
	if r.RequiredLevel > 0 {
		fmt.Fprintf(&b, "**Required level:** %d\n", r.RequiredLevel)
	}
	if r.RequiredMessages.Amount > 0 {
		fmt.Fprintf(&b, "**Required messages:** %d %s\n", r.RequiredMessages.Amount, strings.ReplaceAll(string(r.RequiredMessages.Bucket), "_", " "))
	}
	if len(r.BypassRoles) > 0 {
		fmt.Fprintf(&b, "**Bypass roles:** %s\n", mentionRoles(r.BypassRoles, ", "))
	}
	for _, e := range r.ExtraEntryRoles {
		fmt.Fprintf(&b, "**Extra entries:** <@&%s> (%d %s)\n", e.RoleID, e.Entries, plural(e.Entries, "entry", "entries"))
	}
	if g.ClaimTimeHours != nil && *g.ClaimTimeHours > 0 {
		fmt.Fprintf(&b, "**Claim window:** %d %s\n", *g.ClaimTimeHours, plural(*g.ClaimTimeHours, "hour", "hours"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func winnersMessage(g *giveaway.Giveaway, rerolled bool) string {
	var b strings.Builder
	if rerolled {
		b.WriteString("🔁 **Giveaway Rerolled!**\n")
	} else {
		b.WriteString("🎉 **Giveaway Ended!**\n")
	}
	fmt.Fprintf(&b, "**%s**\n", g.Name)
	if g.Prize != "" {
		fmt.Fprintf(&b, "**Prize:** %s\n", g.Prize)
	}
	fmt.Fprintf(&b, "**Winners:** %s\n", mentionUsers(g.Winners))
	if g.ClaimDeadline != nil {
		fmt.Fprintf(&b, "**Claim by:** <t:%d:F>\n", *g.ClaimDeadline)
	}
	fmt.Fprintf(&b, "Congratulations %s!", mentionUsers(g.Winners))
	return b.String()
}

func noParticipantsMessage(g *giveaway.Giveaway) string {
	return fmt.Sprintf("**%s** ended with no participants.", g.Name)
}

func joinReply(entries int) string {
	return fmt.Sprintf("You've joined the giveaway with %d %s!", entries, plural(entries, "entry", "entries"))
}

func participantsReply(v *service.ParticipantsView) string {
	if v == nil || v.Count == 0 {
		return "No participants yet."
	}
	var b strings.Builder
	b.WriteString("**Giveaway Participants**\n")
	for i, p := range v.Entries {
		if i == participantsShown {
			fmt.Fprintf(&b, "... and %d more\n", len(v.Entries)-participantsShown)
			break
		}
		fmt.Fprintf(&b, "<@%s> - %d %s\n", p.UserID, p.Entries, plural(p.Entries, "entry", "entries"))
	}
	fmt.Fprintf(&b, "Total participants: %d | Total entries: %d", v.Count, v.TotalEntries)
	return b.String()
}

// errorReply turns a command failure into text safe to show the member.
func errorReply(err error) string {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		return "Something went wrong. Please try again later."
	}
	switch appErr.Code {
	case apperrors.ErrCodeNotFound:
		return "Giveaway not found."
	case apperrors.ErrCodeInvalidState:
		return "This giveaway is no longer active."
	case apperrors.ErrCodeNotEligible, apperrors.ErrCodeValidation, apperrors.ErrCodeCapacityExceeded:
		return appErr.Message
	}
	return "Something went wrong. Please try again later."
}
