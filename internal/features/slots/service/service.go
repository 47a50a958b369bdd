package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	apperrors "github.com/Porismic/JupiterBot/internal/common/errors"
	"github.com/Porismic/JupiterBot/internal/domain/member"
	"github.com/Porismic/JupiterBot/internal/domain/slots"
	"github.com/Porismic/JupiterBot/internal/platform/metrics"
)

const resourceSlots = "premium slots"

// Snapshot is a record with its breakdown.
type Snapshot struct {
	slots.Record
	RoleBased int `json:"role_based"`
	Available int `json:"available"`
}

// Service is the premium slot ledger.
type Service struct {
	repo      slots.Repository
	allotment slots.Allotment
	directory member.Directory
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewService builds the ledger. directory may be nil, in which case the lazy
// reconcile before slot-dependent operations is skipped.
func NewService(repo slots.Repository, allotment slots.Allotment, directory member.Directory, m *metrics.Metrics, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		allotment: allotment,
		directory: directory,
		metrics:   m,
		logger:    logger,
	}
}

// RoleBasedAllotment is the slot count the roles are worth.
func (s *Service) RoleBasedAllotment(roles []string) int {
	return s.allotment.RoleBased(roles)
}

// Reconcile recomputes the total from roles. The used count is untouched.
func (s *Service) Reconcile(ctx context.Context, userID string, roles []string) (*slots.Record, error) {
	rec, created, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := s.allotment.RoleBased(roles) + rec.ManualSlots
	if total == rec.TotalSlots && !created {
		return rec, nil
	}

	previous := rec.TotalSlots
	rec.TotalSlots = total
	if err := s.save(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Debug().
		Str("user_id", userID).
		Int("previous_total", previous).
		Int("total", total).
		Int("used", rec.UsedSlots).
		Msg("Premium slots reconciled")
	return rec, nil
}

// ReconcileAll reconciles every given member and returns how many records
// were processed. A failing member is logged and skipped.
func (s *Service) ReconcileAll(ctx context.Context, members []member.Member) (int, error) {
	done := 0
	for _, m := range members {
		if _, err := s.Reconcile(ctx, m.UserID, m.Roles); err != nil {
			s.logger.Error().Err(err).Str("user_id", m.UserID).Msg("Failed to reconcile premium slots")
			continue
		}
		done++
	}
	s.logger.Info().Int("members", done).Msg("Premium slots reconciled for guild")
	return done, nil
}

// Consume uses one slot. It fails with CapacityExceeded when every slot is used.
func (s *Service) Consume(ctx context.Context, userID string) (*slots.Record, error) {
	rec, err := s.refreshed(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !rec.CanConsume() {
		s.metrics.SlotConsume(false)
		return nil, apperrors.NewCapacityExceededError(resourceSlots, rec.UsedSlots, rec.TotalSlots).
			WithDetail("user_id", userID).
			WithDetail("available", rec.Available())
	}

	rec.UsedSlots++
	if err := s.save(ctx, rec); err != nil {
		return nil, err
	}
	s.metrics.SlotConsume(true)
	return rec, nil
}

// Release returns one slot. Releasing with nothing used is a no-op.
func (s *Service) Release(ctx context.Context, userID string) (*slots.Record, error) {
	rec, err := s.refreshed(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec.UsedSlots <= 0 {
		rec.UsedSlots = 0
		return rec, nil
	}

	rec.UsedSlots--
	if err := s.save(ctx, rec); err != nil {
		return nil, err
	}
	s.metrics.SlotRelease()
	return rec, nil
}

// GrantManual adds manually granted slots.
func (s *Service) GrantManual(ctx context.Context, userID string, amount int) (*slots.Record, error) {
	if amount <= 0 {
		return nil, apperrors.NewValidationError("amount", "must be positive")
	}
	rec, err := s.refreshed(ctx, userID)
	if err != nil {
		return nil, err
	}

	rec.ManualSlots += amount
	rec.TotalSlots += amount
	if err := s.save(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", userID).Int("amount", amount).Int("total", rec.TotalSlots).Msg("Premium slots granted")
	return rec, nil
}

// RevokeManual removes manually granted slots. amount may not exceed the
// manual grant.
func (s *Service) RevokeManual(ctx context.Context, userID string, amount int) (*slots.Record, error) {
	if amount <= 0 {
		return nil, apperrors.NewValidationError("amount", "must be positive")
	}
	rec, err := s.refreshed(ctx, userID)
	if err != nil {
		return nil, err
	}
	if amount > rec.ManualSlots {
		return nil, apperrors.NewValidationError("amount", "exceeds manually granted slots").
			WithDetail("manual_slots", rec.ManualSlots)
	}

	rec.ManualSlots -= amount
	rec.TotalSlots -= amount
	if err := s.save(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", userID).Int("amount", amount).Int("total", rec.TotalSlots).Msg("Premium slots revoked")
	return rec, nil
}

// ResetUsed zeroes the used count. Live postings are not touched.
func (s *Service) ResetUsed(ctx context.Context, userID string) (*slots.Record, error) {
	rec, _, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	previous := rec.UsedSlots
	rec.UsedSlots = 0
	if err := s.save(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", userID).Int("previous_used", previous).Msg("Premium slot usage reset")
	return rec, nil
}

// Get returns the record and its role-based and available breakdown.
func (s *Service) Get(ctx context.Context, userID string) (*Snapshot, error) {
	rec, err := s.refreshed(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Record:    *rec,
		RoleBased: rec.TotalSlots - rec.ManualSlots,
		Available: rec.Available(),
	}, nil
}

// refreshed loads the record and reconciles it against the directory when
// the member can be resolved.
func (s *Service) refreshed(ctx context.Context, userID string) (*slots.Record, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user_id", "must not be empty")
	}
	if s.directory != nil {
		m, err := s.directory.Member(ctx, userID)
		switch {
		case err == nil:
			return s.Reconcile(ctx, userID, m.Roles)
		case errors.Is(err, member.ErrUnknownMember):
		default:
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("Member lookup failed, using stored slot total")
		}
	}
	rec, _, err := s.load(ctx, userID)
	return rec, err
}

// load returns the stored record, or a zero record when none exists yet.
func (s *Service) load(ctx context.Context, userID string) (*slots.Record, bool, error) {
	if userID == "" {
		return nil, false, apperrors.NewValidationError("user_id", "must not be empty")
	}
	rec, err := s.repo.Get(ctx, userID)
	if errors.Is(err, slots.ErrNotFound) {
		return &slots.Record{UserID: userID}, true, nil
	}
	if err != nil {
		return nil, false, apperrors.NewStoreError("load premium slots", err)
	}
	return rec, false, nil
}

func (s *Service) save(ctx context.Context, rec *slots.Record) error {
	if err := s.repo.Save(ctx, rec); err != nil {
		return apperrors.NewStoreError("save premium slots", err).WithDetail("user_id", rec.UserID)
	}
	return nil
}
