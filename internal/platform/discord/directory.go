package discord

import (
	"context"
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/Porismic/JupiterBot/internal/domain/member"
)

const membersPageSize = 1000

// Directory resolves guild members from the gateway state cache and falls
// back to the REST API.
type Directory struct {
	session *discordgo.Session
	guildID string
}

var _ member.Directory = (*Directory)(nil)

func NewDirectory(session *discordgo.Session, guildID string) *Directory {
	return &Directory{session: session, guildID: guildID}
}

func (d *Directory) Member(ctx context.Context, userID string) (member.Member, error) {
	if m, err := d.session.State.Member(d.guildID, userID); err == nil {
		return toMember(m), nil
	}
	m, err := d.session.GuildMember(d.guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		if isUnknownMember(err) {
			return member.Member{}, member.ErrUnknownMember
		}
		return member.Member{}, err
	}
	return toMember(m), nil
}

// Members pages through the guild member list. Bots are skipped.
func (d *Directory) Members(ctx context.Context) ([]member.Member, error) {
	var out []member.Member
	after := ""
	for {
		page, err := d.session.GuildMembers(d.guildID, after, membersPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		var last string
		out, last = appendPage(out, page)
		if len(page) < membersPageSize || last == "" {
			return out, nil
		}
		after = last
	}
}

// appendPage adds the human members of page to out and returns the id to
// resume paging after. Entries without a user are skipped.
func appendPage(out []member.Member, page []*discordgo.Member) ([]member.Member, string) {
	last := ""
	for _, m := range page {
		if m == nil || m.User == nil {
			continue
		}
		last = m.User.ID
		if m.User.Bot {
			continue
		}
		out = append(out, toMember(m))
	}
	return out, last
}

func toMember(m *discordgo.Member) member.Member {
	out := member.Member{Roles: append([]string{}, m.Roles...)}
	if m.User != nil {
		out.UserID = m.User.ID
		out.DisplayName = m.User.Username
		if m.User.GlobalName != "" {
			out.DisplayName = m.User.GlobalName
		}
	}
	if m.Nick != "" {
		out.DisplayName = m.Nick
	}
	return out
}

func isUnknownMember(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownMember {
		return true
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}
