package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	apperrors "github.com/Porismic/JupiterBot/internal/common/errors"
	"github.com/Porismic/JupiterBot/internal/domain/member"
	"github.com/Porismic/JupiterBot/internal/platform/metrics"
)

// Progress is a member's stats after an update.
type Progress struct {
	Stats     member.Stats `json:"stats"`
	Level     int          `json:"level"`
	LeveledUp bool         `json:"leveled_up"`
}

// Service tracks member activity. It satisfies member.StatsReader.
type Service struct {
	repo    member.StatsRepository
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

var _ member.StatsReader = (*Service)(nil)

func NewService(repo member.StatsRepository, m *metrics.Metrics, logger zerolog.Logger) *Service {
	return &Service{repo: repo, metrics: m, logger: logger}
}

// RecordMessage counts one message in every bucket and awards MessageXP.
func (s *Service) RecordMessage(ctx context.Context, userID string) (*Progress, error) {
	return s.update(ctx, userID, func(st *member.Stats) {
		st.XP += member.MessageXP
		st.DailyMessages++
		st.WeeklyMessages++
		st.MonthlyMessages++
		st.AllTimeMessages++
	}, true)
}

// AddXP awards amount XP without counting a message.
func (s *Service) AddXP(ctx context.Context, userID string, amount int64) (*Progress, error) {
	if amount <= 0 {
		return nil, apperrors.NewValidationError("amount", "must be positive")
	}
	return s.update(ctx, userID, func(st *member.Stats) {
		st.XP += amount
	}, false)
}

func (s *Service) update(ctx context.Context, userID string, apply func(*member.Stats), message bool) (*Progress, error) {
	st, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	before := st.Level()
	apply(st)
	if err := s.repo.Save(ctx, userID, st); err != nil {
		return nil, apperrors.NewStoreError("save member stats", err).WithDetail("user_id", userID)
	}
	if message {
		s.metrics.Message()
	}

	p := &Progress{Stats: *st, Level: st.Level()}
	p.LeveledUp = p.Level > before
	if p.LeveledUp {
		s.logger.Info().Str("user_id", userID).Int("level", p.Level).Msg("Member leveled up")
	}
	return p, nil
}

// ResetBucket zeroes one periodic counter for every member and returns how
// many records changed. The all-time counter cannot be reset.
func (s *Service) ResetBucket(ctx context.Context, bucket member.Bucket) (int, error) {
	if !bucket.Resettable() {
		return 0, apperrors.NewValidationError("bucket", "must be one of daily, weekly, monthly")
	}
	ids, err := s.repo.UserIDs(ctx)
	if err != nil {
		return 0, apperrors.NewStoreError("list member stats", err)
	}

	reset := 0
	for _, id := range ids {
		st, err := s.load(ctx, id)
		if err != nil {
			return reset, err
		}
		if !zero(st, bucket) {
			continue
		}
		if err := s.repo.Save(ctx, id, st); err != nil {
			return reset, apperrors.NewStoreError("save member stats", err).WithDetail("user_id", id)
		}
		reset++
	}
	s.logger.Info().Str("bucket", string(bucket)).Int("members", reset).Msg("Message bucket reset")
	return reset, nil
}

// zero clears the bucket and reports whether anything changed.
func zero(st *member.Stats, bucket member.Bucket) bool {
	var counter *int64
	switch bucket {
	case member.BucketDaily:
		counter = &st.DailyMessages
	case member.BucketWeekly:
		counter = &st.WeeklyMessages
	case member.BucketMonthly:
		counter = &st.MonthlyMessages
	default:
		return false
	}
	if *counter == 0 {
		return false
	}
	*counter = 0
	return true
}

// Get returns the member's stats, the zero value when none are stored.
func (s *Service) Get(ctx context.Context, userID string) (*Progress, error) {
	st, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Progress{Stats: *st, Level: st.Level()}, nil
}

func (s *Service) Snapshot(ctx context.Context, userID string) (member.Stats, error) {
	st, err := s.load(ctx, userID)
	if err != nil {
		return member.Stats{}, err
	}
	return *st, nil
}

func (s *Service) load(ctx context.Context, userID string) (*member.Stats, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user_id", "must not be empty")
	}
	st, err := s.repo.Get(ctx, userID)
	if errors.Is(err, member.ErrStatsNotFound) {
		return &member.Stats{}, nil
	}
	if err != nil {
		return nil, apperrors.NewStoreError("load member stats", err)
	}
	return st, nil
}
