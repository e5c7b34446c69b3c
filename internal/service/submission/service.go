// Package submission scores a rewrite against its original, applies the
// pass/fail policy, and records the outcome on the player's profile.
package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/observability"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/scoring"
)

//go:generate moq -out scorer_mock_test.go -pkg submission . scorer
//go:generate moq -out user_repo_mock_test.go -pkg submission . userRepo
//go:generate moq -out history_repo_mock_test.go -pkg submission . historyRepo
//go:generate moq -out tx_manager_mock_test.go -pkg submission . txManager

type scorer interface {
	ScorePercent(ctx context.Context, text string) (float64, error)
}

type userRepo interface {
	EnsureUser(ctx context.Context, id domain.Identity) (*domain.User, error)
	AddPoints(ctx context.Context, uid string, delta int) (int64, error)
}

type historyRepo interface {
	Append(ctx context.Context, uid string, f domain.HistoryItemFields) (*domain.HistoryItem, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs the submission pipeline.
type Service struct {
	log       *slog.Logger
	scorer    scorer
	users     userRepo
	history   historyRepo
	tx        txManager
	policy    scoring.Policy
	threshold float64
	persist   time.Duration
	metrics   *observability.Metrics
}

// defaultPersistTimeout bounds the persistence phase when none is configured.
const defaultPersistTimeout = 10 * time.Second

// NewService creates a submission service. threshold is on the 0-100 scale
// and is passed to policy unchanged. persistTimeout bounds the write phase,
// which outlives client cancellation; non-positive means the default.
func NewService(
	log *slog.Logger,
	scorer scorer,
	users userRepo,
	history historyRepo,
	tx txManager,
	policy scoring.Policy,
	threshold float64,
	persistTimeout time.Duration,
	metrics *observability.Metrics,
) *Service {
	if persistTimeout <= 0 {
		persistTimeout = defaultPersistTimeout
	}
	return &Service{
		log:       log.With("service", "submission"),
		scorer:    scorer,
		users:     users,
		history:   history,
		tx:        tx,
		policy:    policy,
		threshold: threshold,
		persist:   persistTimeout,
		metrics:   metrics,
	}
}

// Threshold returns the pass threshold submissions are judged against.
func (s *Service) Threshold() float64 { return s.threshold }
