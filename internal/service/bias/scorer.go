// Package bias turns text-classifier output into the 0-100 bias scores the
// game awards points on.
package bias

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/observability"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/provider"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/scoring"
)

// classifier is the remote model the scorer reads from.
type classifier interface {
	Load(ctx context.Context) error
	Classify(ctx context.Context, text string) ([]provider.LabelScore, error)
}

// Scorer produces deterministic bias scores. The model is loaded lazily on
// first use, exactly once per process; a failed load is retried by the next
// caller. After loading, Scorer is safe for concurrent use.
type Scorer struct {
	log     *slog.Logger
	model   classifier
	cache   *lru.Cache[string, float64]
	metrics *observability.Metrics

	loadMu sync.Mutex
	loaded atomic.Bool
}

// NewScorer creates a Scorer. cacheSize bounds the memo of text → probability;
// zero disables it.
func NewScorer(logger *slog.Logger, model classifier, cacheSize int, metrics *observability.Metrics) (*Scorer, error) {
	s := &Scorer{
		log:     logger.With("service", "bias"),
		model:   model,
		metrics: metrics,
	}
	if cacheSize > 0 {
		c, err := lru.New[string, float64](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("bias.NewScorer: %w", err)
		}
		s.cache = c
	}
	return s, nil
}

// ScoreProbability returns the model's toxicity probability for text,
// clamped to [0, 1] and rounded to 4 decimals.
func (s *Scorer) ScoreProbability(ctx context.Context, text string) (float64, error) {
	if s.cache != nil {
		if p, ok := s.cache.Get(text); ok {
			s.metrics.ObserveCache("score", true)
			return p, nil
		}
		s.metrics.ObserveCache("score", false)
	}

	if err := s.ensureLoaded(ctx); err != nil {
		return 0, err
	}

	start := time.Now()
	labels, err := s.model.Classify(ctx, text)
	s.metrics.ObserveScore(time.Since(start))
	if err != nil {
		return 0, fmt.Errorf("bias.ScoreProbability: %w", err)
	}

	raw, ok := pickToxic(labels)
	if !ok || math.IsNaN(raw) {
		return 0, fmt.Errorf("bias.ScoreProbability: unusable model output: %w", domain.ErrModelUnavailable)
	}

	p := scoring.Round(scoring.Clamp(raw, 0, 1), 4)
	if s.cache != nil {
		s.cache.Add(text, p)
	}
	return p, nil
}

// ScorePercent returns the bias score on the 0-100 scale, rounded to 2
// decimals. Both sentences of a submission must be scored through this.
func (s *Scorer) ScorePercent(ctx context.Context, text string) (float64, error) {
	p, err := s.ScoreProbability(ctx, text)
	if err != nil {
		return 0, err
	}
	return scoring.Round(p*100, 2), nil
}

func (s *Scorer) ensureLoaded(ctx context.Context) error {
	if s.loaded.Load() {
		return nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.loaded.Load() {
		return nil
	}

	if err := s.model.Load(ctx); err != nil {
		s.log.ErrorContext(ctx, "bias model load failed", slog.String("error", err.Error()))
		return fmt.Errorf("bias.load: %w", err)
	}

	s.loaded.Store(true)
	return nil
}

// pickToxic selects the probability to report: the highest score among
// labels whose name contains "toxic" (case-insensitive), otherwise the
// highest-scoring label overall. The result does not depend on label order.
// It reports false for an empty label set.
func pickToxic(labels []provider.LabelScore) (float64, bool) {
	if len(labels) == 0 {
		return 0, false
	}

	var (
		toxic float64
		found bool
	)
	for _, l := range labels {
		if !strings.Contains(strings.ToLower(l.Label), "toxic") {
			continue
		}
		if !found || l.Score > toxic {
			toxic = l.Score
		}
		found = true
	}
	if found {
		return toxic, true
	}

	best := labels[0]
	for _, l := range labels[1:] {
		if l.Score > best.Score {
			best = l
		}
	}
	return best.Score, true
}
