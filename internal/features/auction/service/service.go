package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Porismic/JupiterBot/internal/common/clock"
	apperrors "github.com/Porismic/JupiterBot/internal/common/errors"
	"github.com/Porismic/JupiterBot/internal/domain/auction"
	"github.com/Porismic/JupiterBot/internal/domain/slots"
	"github.com/Porismic/JupiterBot/internal/platform/metrics"
)

const resourceAuction = "auction"

// SlotLedger is the part of the premium slot ledger auctions use.
type SlotLedger interface {
	Consume(ctx context.Context, userID string) (*slots.Record, error)
	Release(ctx context.Context, userID string) (*slots.Record, error)
}

type PostInput struct {
	Name        string
	SellerID    string
	StartingBid int64
	Premium     bool
}

type Service struct {
	repo    auction.Repository
	ledger  SlotLedger
	clock   clock.Clock
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewService(repo auction.Repository, ledger SlotLedger, clk clock.Clock, m *metrics.Metrics, logger zerolog.Logger) *Service {
	return &Service{repo: repo, ledger: ledger, clock: clk, metrics: m, logger: logger}
}

// Post records a new active auction. A premium auction consumes one of the
// seller's slots first and gives it back if the auction cannot be stored.
func (s *Service) Post(ctx context.Context, in PostInput) (*auction.Auction, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}
	if in.SellerID == "" {
		return nil, apperrors.NewValidationError("seller_id", "must not be empty")
	}
	if in.StartingBid < 0 {
		return nil, apperrors.NewValidationError("starting_bid", "must not be negative")
	}

	if in.Premium {
		if _, err := s.ledger.Consume(ctx, in.SellerID); err != nil {
			return nil, err
		}
	}

	a := &auction.Auction{
		ID:          uuid.NewString(),
		Name:        in.Name,
		SellerID:    in.SellerID,
		StartingBid: in.StartingBid,
		Premium:     in.Premium,
		Status:      auction.StatusActive,
		CreatedAt:   s.clock.Now().Unix(),
	}
	if err := s.repo.Save(ctx, a); err != nil {
		if in.Premium {
			if _, relErr := s.ledger.Release(ctx, in.SellerID); relErr != nil {
				s.logger.Error().Err(relErr).Str("seller_id", in.SellerID).Msg("Failed to return premium slot after failed post")
			}
		}
		return nil, apperrors.NewStoreError("save auction", err)
	}

	s.metrics.AuctionPosted(in.Premium)
	s.logger.Info().
		Str("auction_id", a.ID).
		Str("seller_id", a.SellerID).
		Bool("premium", a.Premium).
		Msg("Auction posted")
	return a, nil
}

// End closes an active auction and returns its premium slot.
func (s *Service) End(ctx context.Context, id string) (*auction.Auction, error) {
	return s.close(ctx, id, auction.StatusEnded, "end")
}

// Cancel withdraws an active auction and returns its premium slot.
func (s *Service) Cancel(ctx context.Context, id string) (*auction.Auction, error) {
	return s.close(ctx, id, auction.StatusCancelled, "cancel")
}

func (s *Service) close(ctx context.Context, id string, to auction.Status, operation string) (*auction.Auction, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != auction.StatusActive {
		return nil, apperrors.NewInvalidStateError(resourceAuction, operation, string(a.Status))
	}

	if a.HoldsSlot() {
		if _, err := s.ledger.Release(ctx, a.SellerID); err != nil {
			return nil, err
		}
		a.SlotReleased = true
	}
	a.Status = to
	a.ClosedAt = s.clock.Now().Unix()

	if err := s.repo.Save(ctx, a); err != nil {
		return nil, apperrors.NewStoreError("save auction", err)
	}
	s.metrics.AuctionClosed(string(to))
	s.logger.Info().Str("auction_id", id).Str("status", string(to)).Msg("Auction closed")
	return a, nil
}

func (s *Service) Get(ctx context.Context, id string) (*auction.Auction, error) {
	return s.load(ctx, id)
}

// List returns auctions ordered by id. An empty status lists all of them.
func (s *Service) List(ctx context.Context, status auction.Status) ([]auction.Auction, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.NewValidationError("status", "must be one of active, ended, cancelled")
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("list auctions", err)
	}
	if status == "" {
		return all, nil
	}
	out := make([]auction.Auction, 0, len(all))
	for _, a := range all {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Service) load(ctx context.Context, id string) (*auction.Auction, error) {
	a, err := s.repo.Get(ctx, id)
	if errors.Is(err, auction.ErrNotFound) {
		return nil, apperrors.NewNotFoundError(resourceAuction, id)
	}
	if err != nil {
		return nil, apperrors.NewStoreError("load auction", err)
	}
	return a, nil
}
