package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Porismic/JupiterBot/internal/common/clock"
	apperrors "github.com/Porismic/JupiterBot/internal/common/errors"
	"github.com/Porismic/JupiterBot/internal/domain/giveaway"
	"github.com/Porismic/JupiterBot/internal/domain/member"
	"github.com/Porismic/JupiterBot/internal/platform/metrics"
)

// CreateInput configures a new giveaway.
type CreateInput struct {
	Name      string
	Prize     string
	HostID    string
	ChannelID string
	Winners   int
	Duration  time.Duration
	// Color is a hex string such as "#ff8800". Empty uses the default color.
	Color            string
	RoleRestricted   bool
	RequiredLevel    int
	RequiredMessages giveaway.MessageRequirement
	ThumbnailURL     string
	ImageURL         string
	ClaimTimeHours   *int
}

// ParticipantsView is the read-only participant listing.
type ParticipantsView struct {
	Entries      []giveaway.Participant `json:"entries"`
	Count        int                    `json:"count"`
	TotalEntries int                    `json:"total_entries"`
}

// SweepReport summarizes one sweep pass.
type SweepReport struct {
	Closed []string `json:"closed"`
	Failed []string `json:"failed"`
}

// PurgeReport lists the giveaways removed by PurgeEnded.
type PurgeReport struct {
	Deleted []string `json:"deleted"`
}

// Service owns the giveaway lifecycle.
type Service struct {
	repo      giveaway.Repository
	stats     member.StatsReader
	selector  *Selector
	announcer Announcer
	clock     clock.Clock
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

func NewService(
	repo giveaway.Repository,
	stats member.StatsReader,
	selector *Selector,
	announcer Announcer,
	clk clock.Clock,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *Service {
	if announcer == nil {
		announcer = NopAnnouncer{}
	}
	return &Service{
		repo:      repo,
		stats:     stats,
		selector:  selector,
		announcer: announcer,
		clock:     clk,
		metrics:   m,
		logger:    logger,
	}
}

// Create validates input and stores a giveaway in the created state.
func (s *Service) Create(ctx context.Context, in CreateInput) (*giveaway.Giveaway, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}
	if in.Winners < 1 {
		return nil, apperrors.NewValidationError("winners", "must be at least 1")
	}
	if in.Duration <= 0 {
		return nil, apperrors.NewValidationError("duration", "must be positive")
	}
	if in.RequiredLevel < 0 {
		return nil, apperrors.NewValidationError("required_level", "must not be negative")
	}
	if in.RequiredMessages.Amount < 0 {
		return nil, apperrors.NewValidationError("required_messages.amount", "must not be negative")
	}
	if in.RequiredMessages.Amount > 0 && !in.RequiredMessages.Bucket.Valid() {
		return nil, apperrors.NewValidationError("required_messages.bucket", "must be one of daily, weekly, monthly, all_time")
	}
	if in.ClaimTimeHours != nil && *in.ClaimTimeHours < 0 {
		return nil, apperrors.NewValidationError("claim_time_hours", "must not be negative")
	}
	color, err := parseColor(in.Color)
	if err != nil {
		return nil, apperrors.NewValidationError("color", "invalid hex color format")
	}

	now := s.clock.Now()
	g := &giveaway.Giveaway{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Prize:        in.Prize,
		HostID:       in.HostID,
		ChannelID:    in.ChannelID,
		WinnersCount: in.Winners,
		CreatedAt:    now.Unix(),
		EndTime:      now.Add(in.Duration).Unix(),
		Status:       giveaway.StatusCreated,
		Style: giveaway.Style{
			Color:        color,
			ThumbnailURL: in.ThumbnailURL,
			ImageURL:     in.ImageURL,
		},
		Requirements: giveaway.Requirements{
			RoleRestricted:   in.RoleRestricted,
			RequiredRoles:    []string{},
			RequiredLevel:    in.RequiredLevel,
			RequiredMessages: in.RequiredMessages,
			BypassRoles:      []string{},
			ExtraEntryRoles:  []giveaway.ExtraEntryRole{},
		},
		Participants:   []giveaway.Participant{},
		ClaimTimeHours: in.ClaimTimeHours,
		Claims:         map[string]giveaway.Claim{},
		Winners:        []string{},
	}

	if err := s.save(ctx, g); err != nil {
		return nil, err
	}
	s.metrics.GiveawayCreated()
	s.logger.Info().
		Str("giveaway_id", g.ID).
		Str("name", g.Name).
		Int("winners", g.WinnersCount).
		Int64("end_time", g.EndTime).
		Msg("Giveaway created")
	return g, nil
}

// AddRequiredRole restricts the giveaway to holders of roleID (or any other
// required role).
func (s *Service) AddRequiredRole(ctx context.Context, id, roleID string) (*giveaway.Giveaway, error) {
	return s.shape(ctx, id, "add required role to", roleID, func(r *giveaway.Requirements) {
		r.AddRequiredRole(roleID)
	})
}

// AddExtraEntryRole gives holders of roleID a weight of entries.
func (s *Service) AddExtraEntryRole(ctx context.Context, id, roleID string, entries int) (*giveaway.Giveaway, error) {
	if entries < 1 {
		return nil, apperrors.NewValidationError("entries", "must be at least 1")
	}
	return s.shape(ctx, id, "add extra entry role to", roleID, func(r *giveaway.Requirements) {
		r.SetExtraEntries(roleID, entries)
	})
}

func (s *Service) AddBypassRole(ctx context.Context, id, roleID string) (*giveaway.Giveaway, error) {
	return s.shape(ctx, id, "add bypass role to", roleID, func(r *giveaway.Requirements) {
		r.AddBypassRole(roleID)
	})
}

func (s *Service) shape(ctx context.Context, id, operation, roleID string, apply func(*giveaway.Requirements)) (*giveaway.Giveaway, error) {
	if strings.TrimSpace(roleID) == "" {
		return nil, apperrors.NewValidationError("role_id", "must not be empty")
	}
	g, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Status != giveaway.StatusCreated {
		return nil, apperrors.NewInvalidStateError(resourceGiveaway, operation, string(g.Status))
	}
	apply(&g.Requirements)
	if err := s.save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Activate publishes the giveaway and opens it to joiners. When publishing
// fails the giveaway stays in the created state.
func (s *Service) Activate(ctx context.Context, id string) (*giveaway.Giveaway, error) {
	g, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Status != giveaway.StatusCreated {
		return nil, apperrors.NewInvalidStateError(resourceGiveaway, "activate", string(g.Status))
	}

	messageID, err := s.announcer.PublishGiveaway(ctx, g)
	if err != nil {
		return nil, apperrors.NewPlatformError("publish giveaway", err).WithDetail("giveaway_id", id)
	}
	g.MessageID = messageID
	g.Status = giveaway.StatusActive

	if err := s.save(ctx, g); err != nil {
		return nil, err
	}
	s.logger.Info().Str("giveaway_id", id).Str("message_id", messageID).Msg("Giveaway activated")
	return g, nil
}

// Join admits userID and returns the entry weight.
func (s *Service) Join(ctx context.Context, id, userID string, roles []string) (int, error) {
	if userID == "" {
		return 0, apperrors.NewValidationError("user_id", "must not be empty")
	}
	g, err := s.load(ctx, id)
	if err != nil {
		return 0, err
	}
	if g.Status != giveaway.StatusActive {
		return 0, apperrors.NewInvalidStateError(resourceGiveaway, "join", string(g.Status))
	}

	stats, err := s.stats.Snapshot(ctx, userID)
	if err != nil {
		return 0, apperrors.NewStoreError("load member stats", err)
	}

	decision := giveaway.Evaluate(g.Requirements, giveaway.Candidate{Roles: roles, Stats: stats})
	if !decision.Admitted {
		s.metrics.Join(string(decision.Reason))
		return 0, apperrors.NewNotEligibleError(string(decision.Reason), denyMessage(g.Requirements, decision.Reason)).
			WithDetail("giveaway_id", id)
	}

	changed := false
	idx := g.ParticipantIndex(userID)
	if idx < 0 {
		g.Participants = append(g.Participants, giveaway.Participant{UserID: userID, Entries: 1})
		idx = len(g.Participants) - 1
		changed = true
	}
	if entries, ok := g.Requirements.ExtraEntries(roles); ok && g.Participants[idx].Entries != entries {
		g.Participants[idx].Entries = entries
		changed = true
	}

	if changed {
		if err := s.save(ctx, g); err != nil {
			return 0, err
		}
	}
	s.metrics.Join("")

	weight := g.Participants[idx].Entries
	s.logger.Debug().Str("giveaway_id", id).Str("user_id", userID).Int("entries", weight).Msg("Participant joined")
	return weight, nil
}

// ViewParticipants lists participants in join order.
func (s *Service) ViewParticipants(ctx context.Context, id string) (*ParticipantsView, error) {
	g, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ParticipantsView{
		Entries:      slices.Clone(g.Participants),
		Count:        len(g.Participants),
		TotalEntries: g.TotalEntries(),
	}, nil
}

// Close ends an active giveaway and draws its winners.
func (s *Service) Close(ctx context.Context, id string, now time.Time) (*giveaway.Giveaway, error) {
	g, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Status != giveaway.StatusActive {
		return nil, apperrors.NewInvalidStateError(resourceGiveaway, "close", string(g.Status))
	}

	empty := len(g.Participants) == 0
	if empty {
		g.Winners = []string{}
	} else {
		g.Winners = s.selector.SelectWinners(g.Participants, g.WinnersCount)
		if g.ClaimTimeHours != nil && *g.ClaimTimeHours > 0 {
			deadline := now.Unix() + int64(*g.ClaimTimeHours)*secondsPerHour
			g.ClaimDeadline = &deadline
		}
	}
	g.Status = giveaway.StatusEnded
	g.EndedAt = now.Unix()

	if err := s.save(ctx, g); err != nil {
		return nil, err
	}
	s.metrics.GiveawayClosed(empty)

	if empty {
		s.announce(g, s.announcer.AnnounceNoParticipants(ctx, g))
	} else {
		s.announce(g, s.announcer.AnnounceWinners(ctx, g, false))
	}

	s.logger.Info().
		Str("giveaway_id", id).
		Strs("winners", g.Winners).
		Int("participants", len(g.Participants)).
		Msg("Giveaway closed")
	return g, nil
}

// Reroll redraws winners of an ended giveaway. With no targets every winner
// is replaced. Otherwise each target must be a current winner and is replaced
// by a participant who is not. The claim deadline is left as it was.
func (s *Service) Reroll(ctx context.Context, id string, targets []string) (*giveaway.Giveaway, error) {
	g, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Status != giveaway.StatusEnded {
		return nil, apperrors.NewInvalidStateError(resourceGiveaway, "reroll", string(g.Status))
	}
	for _, t := range targets {
		if !g.IsWinner(t) {
			return nil, apperrors.NewValidationError("targets", fmt.Sprintf("%s is not a current winner", t)).
				WithDetail("user_id", t)
		}
	}

	if len(g.Participants) == 0 {
		s.announce(g, s.announcer.AnnounceNoParticipants(ctx, g))
		return g, nil
	}

	if len(targets) == 0 {
		g.Winners = s.selector.RerollAll(g.Participants, g.WinnersCount)
	} else {
		g.Winners = s.selector.RerollSpecific(g.Winners, g.NonWinners(), targets)
	}

	if err := s.save(ctx, g); err != nil {
		return nil, err
	}
	s.metrics.Reroll(len(targets) > 0)
	s.announce(g, s.announcer.AnnounceWinners(ctx, g, true))

	s.logger.Info().
		Str("giveaway_id", id).
		Strs("targets", targets).
		Strs("winners", g.Winners).
		Msg("Giveaway rerolled")
	return g, nil
}

// RecordClaim marks userID's prize as claimed, replacing any earlier claim.
func (s *Service) RecordClaim(ctx context.Context, id, userID, recorderID string, now time.Time) (*giveaway.Giveaway, error) {
	g, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Status != giveaway.StatusEnded {
		return nil, apperrors.NewInvalidStateError(resourceGiveaway, "record claim on", string(g.Status))
	}
	if !g.IsWinner(userID) {
		return nil, apperrors.NewValidationError("user_id", "was not a winner of this giveaway").
			WithDetail("user_id", userID)
	}

	g.Claims[userID] = giveaway.Claim{ClaimedAt: now.Unix(), ClaimedBy: recorderID}
	if err := s.save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// QueryUnclaimed lists winners without a recorded claim.
func (s *Service) QueryUnclaimed(ctx context.Context, id string) ([]string, error) {
	g, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Status != giveaway.StatusEnded {
		return nil, apperrors.NewInvalidStateError(resourceGiveaway, "query unclaimed of", string(g.Status))
	}
	return g.Unclaimed(), nil
}

func (s *Service) Get(ctx context.Context, id string) (*giveaway.Giveaway, error) {
	return s.load(ctx, id)
}

// List returns giveaways ordered by id. An empty status lists all of them.
func (s *Service) List(ctx context.Context, status giveaway.Status) ([]giveaway.Giveaway, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.NewValidationError("status", "must be one of created, active, ended")
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("list giveaways", err)
	}
	if status == "" {
		return all, nil
	}
	out := make([]giveaway.Giveaway, 0, len(all))
	for _, g := range all {
		if g.Status == status {
			out = append(out, g)
		}
	}
	return out, nil
}

// SweepExpired closes every active giveaway whose end time has passed. A
// giveaway that fails to load or close is logged and skipped.
func (s *Service) SweepExpired(ctx context.Context, now time.Time) (*SweepReport, error) {
	ids, err := s.repo.IDs(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("list giveaways", err)
	}

	report := &SweepReport{Closed: []string{}, Failed: []string{}}
	for _, id := range ids {
		g, err := s.repo.Get(ctx, id)
		if errors.Is(err, giveaway.ErrNotFound) {
			continue
		}
		if err != nil {
			s.metrics.SweepFailure()
			s.logger.Error().Err(err).Str("giveaway_id", id).Msg("Failed to load giveaway for sweep")
			report.Failed = append(report.Failed, id)
			continue
		}
		if g.Status != giveaway.StatusActive || now.Unix() < g.EndTime {
			continue
		}
		if _, err := s.Close(ctx, g.ID, now); err != nil {
			s.metrics.SweepFailure()
			s.logger.Error().Err(err).Str("giveaway_id", g.ID).Msg("Failed to close expired giveaway")
			report.Failed = append(report.Failed, g.ID)
			continue
		}
		report.Closed = append(report.Closed, g.ID)
	}

	if len(report.Closed) > 0 || len(report.Failed) > 0 {
		s.logger.Info().
			Int("closed", len(report.Closed)).
			Int("failed", len(report.Failed)).
			Msg("Giveaway sweep finished")
	}
	return report, nil
}

// PurgeEnded deletes ended giveaways whose end time is older than retention.
func (s *Service) PurgeEnded(ctx context.Context, now time.Time, retention time.Duration) (*PurgeReport, error) {
	if retention <= 0 {
		return nil, apperrors.NewValidationError("retention", "must be positive")
	}
	ended, err := s.List(ctx, giveaway.StatusEnded)
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(-retention).Unix()
	report := &PurgeReport{Deleted: []string{}}
	for _, g := range ended {
		if g.EndTime >= cutoff {
			continue
		}
		if err := s.repo.Delete(ctx, g.ID); err != nil {
			s.logger.Error().Err(err).Str("giveaway_id", g.ID).Msg("Failed to delete old giveaway")
			continue
		}
		report.Deleted = append(report.Deleted, g.ID)
	}

	if len(report.Deleted) > 0 {
		s.logger.Info().Int("deleted", len(report.Deleted)).Msg("Cleaned up old giveaways")
	}
	return report, nil
}

func (s *Service) load(ctx context.Context, id string) (*giveaway.Giveaway, error) {
	g, err := s.repo.Get(ctx, id)
	if errors.Is(err, giveaway.ErrNotFound) {
		return nil, apperrors.NewNotFoundError(resourceGiveaway, id)
	}
	if err != nil {
		return nil, apperrors.NewStoreError("load giveaway", err)
	}
	return g, nil
}

func (s *Service) save(ctx context.Context, g *giveaway.Giveaway) error {
	if err := s.repo.Save(ctx, g); err != nil {
		return apperrors.NewStoreError("save giveaway", err).WithDetail("giveaway_id", g.ID)
	}
	return nil
}

// announce logs a failed announcement. The state change it reports is
// already persisted.
func (s *Service) announce(g *giveaway.Giveaway, err error) {
	if err != nil {
		s.logger.Warn().Err(err).Str("giveaway_id", g.ID).Msg("Failed to announce giveaway result")
	}
}

func parseColor(hex string) (int, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if hex == "" {
		return giveaway.DefaultColor, nil
	}
	v, err := strconv.ParseInt(hex, 16, 32)
	if err != nil || v < 0 || v > 0xFFFFFF {
		return 0, fmt.Errorf("invalid color %q", hex)
	}
	return int(v), nil
}

func denyMessage(req giveaway.Requirements, reason giveaway.DenyReason) string {
	switch reason {
	case giveaway.DenyMissingRequiredRole:
		return "You don't have the required roles to join this giveaway."
	case giveaway.DenyLevelTooLow:
		return fmt.Sprintf("You need to be Level %d or higher to join this giveaway.", req.RequiredLevel)
	case giveaway.DenyNotEnoughMessages:
		bucket := strings.ReplaceAll(string(req.RequiredMessages.Bucket), "_", " ")
		return fmt.Sprintf("You need %d %s messages to join this giveaway.", req.RequiredMessages.Amount, bucket)
	}
	return "You are not eligible to join this giveaway."
}
