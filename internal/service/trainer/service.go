// Package trainer drives one round of the game: it produces example
// sentences, rewrites them on instruction, and grades the result.
package trainer

import (
	"context"
	"log/slog"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/generator"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/submission"
)

//go:generate moq -out sentence_generator_mock_test.go -pkg trainer . sentenceGenerator
//go:generate moq -out submitter_mock_test.go -pkg trainer . submitter
//go:generate moq -out scorer_mock_test.go -pkg trainer . scorer

type sentenceGenerator interface {
	Sample(ctx context.Context, mode domain.Mode) (string, error)
	Rewrite(ctx context.Context, input generator.RewriteInput) (string, error)
}

type submitter interface {
	HandleSubmission(ctx context.Context, input submission.Input) (*submission.Result, error)
}

type scorer interface {
	ScorePercent(ctx context.Context, text string) (float64, error)
}

// Service provides the round operations.
type Service struct {
	log       *slog.Logger
	generator sentenceGenerator
	submitter submitter
	scorer    scorer
}

// NewService creates a new trainer service.
func NewService(
	log *slog.Logger,
	generator sentenceGenerator,
	submitter submitter,
	scorer scorer,
) *Service {
	return &Service{
		log:       log.With("service", "trainer"),
		generator: generator,
		submitter: submitter,
		scorer:    scorer,
	}
}
