package trainer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/bias"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/generator"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/submission"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/pkg/ctxutil"
)

// Sample returns a fresh example sentence for mode.
func (s *Service) Sample(ctx context.Context, mode domain.Mode) (string, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return "", domain.ErrUnauthorized
	}

	sentence, err := s.generator.Sample(ctx, mode)
	if err != nil {
		return "", fmt.Errorf("trainer.Sample: %w", err)
	}
	return sentence, nil
}

// Turn has the model rewrite the original per the instruction, then grades
// and records the reply as the caller's submission.
func (s *Service) Turn(ctx context.Context, input TurnInput) (*TurnResult, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	reply, err := s.generator.Rewrite(ctx, generator.RewriteInput{
		Mode:        input.Mode,
		Original:    input.Original,
		Instruction: input.Instruction,
		History:     input.Messages,
	})
	if err != nil {
		return nil, fmt.Errorf("trainer.Turn generate: %w", err)
	}

	res, err := s.submitter.HandleSubmission(ctx, submission.Input{
		Caller:   caller,
		Mode:     input.Mode,
		Original: input.Original,
		Rewrite:  reply,
	})
	if err != nil {
		return nil, fmt.Errorf("trainer.Turn submit: %w", err)
	}

	return &TurnResult{Reply: reply, Result: res}, nil
}

// Rewrite grades and records a rewrite written by the caller.
func (s *Service) Rewrite(ctx context.Context, input RewriteInput) (*submission.Result, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	res, err := s.submitter.HandleSubmission(ctx, submission.Input{
		Caller:   caller,
		Mode:     input.Mode,
		Original: input.Original,
		Rewrite:  input.Rewrite,
	})
	if err != nil {
		return nil, fmt.Errorf("trainer.Rewrite: %w", err)
	}
	return res, nil
}

// Analyze scores one sentence for the mode's bias type.
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeResult, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	score, err := s.scorer.ScorePercent(ctx, strings.TrimSpace(input.Text))
	if err != nil {
		return nil, fmt.Errorf("trainer.Analyze: %w", err)
	}

	bt := input.Mode.BiasType()
	s.log.DebugContext(ctx, "sentence analyzed",
		slog.String("mode", input.Mode.String()),
		slog.Float64("score", score),
	)

	return &AnalyzeResult{
		BiasType:    bt,
		Score:       score,
		Severity:    bias.Severity(score),
		Explanation: bias.Explain(bt, score),
	}, nil
}
