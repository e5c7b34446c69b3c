// Package leaderboard serves the ranked points view.
package leaderboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/observability"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

//go:generate moq -out ranking_repo_mock_test.go -pkg leaderboard . rankingRepo
//go:generate moq -out page_cache_mock_test.go -pkg leaderboard . pageCache

type rankingRepo interface {
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type pageCache interface {
	Get(ctx context.Context, limit int) ([]domain.LeaderboardEntry, bool, error)
	Set(ctx context.Context, limit int, entries []domain.LeaderboardEntry) error
}

// Service reads the leaderboard, through the cache when one is configured.
// Cached pages may lag committed points by up to the cache TTL.
type Service struct {
	log     *slog.Logger
	users   rankingRepo
	cache   pageCache
	metrics *observability.Metrics
}

// NewService creates a leaderboard service. cache may be nil.
func NewService(log *slog.Logger, users rankingRepo, cache pageCache, metrics *observability.Metrics) *Service {
	return &Service{
		log:     log.With("service", "leaderboard"),
		users:   users,
		cache:   cache,
		metrics: metrics,
	}
}

// Top returns up to limit users by points descending, ties by uid
// ascending. A zero limit means DefaultLimit.
func (s *Service) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 || limit > MaxLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxLimit))
	}

	if s.cache != nil {
		entries, ok, err := s.cache.Get(ctx, limit)
		if err != nil {
			s.log.WarnContext(ctx, "leaderboard cache read failed", slog.String("error", err.Error()))
		}
		s.metrics.ObserveCache("leaderboard", ok)
		if ok {
			return entries, nil
		}
	}

	entries, err := s.users.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard.Top: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, limit, entries); err != nil {
			s.log.WarnContext(ctx, "leaderboard cache write failed", slog.String("error", err.Error()))
		}
	}

	return entries, nil
}
