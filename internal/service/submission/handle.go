package submission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
)

const (
	outcomePassed = "passed"
	outcomeFailed = "failed"
	outcomeError  = "error"
)

// HandleSubmission scores the original and the rewrite, decides pass/fail,
// and persists the result.
//
// Nothing is written unless both scores are produced. The user row, the
// history item and the point increment commit in one transaction, with the
// history item written before the increment. Persistence runs detached from
// ctx cancellation so a disconnecting client cannot cut it short, but is
// bounded by the configured persist timeout.
func (s *Service) HandleSubmission(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	original := strings.TrimSpace(input.Original)
	rewrite := strings.TrimSpace(input.Rewrite)
	uid := input.Caller.UID

	origScore, rewriteScore, err := s.scorePair(ctx, original, rewrite)
	if err != nil {
		s.metrics.ObserveSubmission(input.Mode.String(), outcomeError, 0)
		return nil, fmt.Errorf("submission.HandleSubmission score: %w", err)
	}

	decision := s.policy.Decide(origScore, rewriteScore, s.threshold)

	fields := domain.HistoryItemFields{
		Mode:          input.Mode,
		BiasType:      input.Mode.BiasType(),
		Original:      original,
		Rewrite:       rewrite,
		OriginalScore: origScore,
		RewriteScore:  rewriteScore,
		Delta:         decision.Delta,
		Threshold:     s.threshold,
		Passed:        decision.Passed,
		PointsAwarded: decision.PointsAwarded,
	}

	var (
		item  *domain.HistoryItem
		total int64
	)
	// Writes survive client cancellation but not a hung store.
	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.persist)
	defer cancel()

	err = s.tx.RunInTx(persistCtx, func(txCtx context.Context) error {
		u, err := s.users.EnsureUser(txCtx, input.Caller)
		if err != nil {
			return fmt.Errorf("ensure user: %w", err)
		}
		total = u.Points

		item, err = s.history.Append(txCtx, uid, fields)
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		if decision.PointsAwarded > 0 {
			total, err = s.users.AddPoints(txCtx, uid, decision.PointsAwarded)
			if err != nil {
				return fmt.Errorf("add points: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.metrics.ObserveSubmission(input.Mode.String(), outcomeError, 0)
		s.log.ErrorContext(ctx, "submission not persisted",
			slog.String("uid", uid),
			slog.String("mode", input.Mode.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("submission.HandleSubmission persist: %w", err)
	}

	outcome := outcomeFailed
	if decision.Passed {
		outcome = outcomePassed
	}
	s.metrics.ObserveSubmission(input.Mode.String(), outcome, decision.PointsAwarded)

	s.log.InfoContext(ctx, "submission scored",
		slog.String("uid", uid),
		slog.String("mode", input.Mode.String()),
		slog.Float64("original_score", origScore),
		slog.Float64("rewrite_score", rewriteScore),
		slog.Bool("passed", decision.Passed),
		slog.Int("points_awarded", decision.PointsAwarded),
		slog.Int64("history_id", item.ID),
	)

	return &Result{
		BiasType:      fields.BiasType,
		OriginalScore: origScore,
		RewriteScore:  rewriteScore,
		Delta:         decision.Delta,
		Threshold:     s.threshold,
		Passed:        decision.Passed,
		PointsAwarded: decision.PointsAwarded,
		TotalPoints:   total,
		HistoryItem:   item,
	}, nil
}

// scorePair scores both sentences concurrently. The first failure cancels
// the other call.
func (s *Service) scorePair(ctx context.Context, original, rewrite string) (float64, float64, error) {
	var origScore, rewriteScore float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.scorer.ScorePercent(gctx, original)
		if err != nil {
			return fmt.Errorf("original: %w", err)
		}
		origScore = v
		return nil
	})
	g.Go(func() error {
		v, err := s.scorer.ScorePercent(gctx, rewrite)
		if err != nil {
			return fmt.Errorf("rewrite: %w", err)
		}
		rewriteScore = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	return origScore, rewriteScore, nil
}
