package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/provider"
)

// Sample returns a short example sentence exhibiting the mode's bias type.
func (s *Service) Sample(ctx context.Context, mode domain.Mode) (string, error) {
	if !mode.IsValid() {
		return "", domain.NewValidationError("mode", "unknown mode")
	}

	return s.generate(ctx, mode, "sample", provider.TextRequest{
		System: sampleSystem(mode.BiasType()),
		Prompt: sampleNudge,
	})
}

// Rewrite applies the instruction to the original sentence with minimal
// edits. Prior chat turns are passed through to the provider.
func (s *Service) Rewrite(ctx context.Context, input RewriteInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	return s.generate(ctx, input.Mode, "rewrite", provider.TextRequest{
		System:  constrainedSystem(input.Original, input.Instruction),
		History: input.History,
		Prompt:  rewriteNudge,
	})
}

func (s *Service) generate(ctx context.Context, mode domain.Mode, kind string, req provider.TextRequest) (string, error) {
	p := s.route(mode)
	start := time.Now()

	raw, err := p.Generate(ctx, req)
	switch {
	case err != nil && !errors.Is(err, domain.ErrProviderUnavailable):
		err = fmt.Errorf("%s: %w: %v", p.Name(), domain.ErrProviderUnavailable, err)
	case err == nil && Sanitize(raw) == "":
		err = fmt.Errorf("%s returned no usable text: %w", p.Name(), domain.ErrProviderUnavailable)
	}
	s.metrics.ObserveGeneration(p.Name(), err)

	if err != nil {
		s.log.WarnContext(ctx, "generation failed",
			slog.String("provider", p.Name()),
			slog.String("mode", mode.String()),
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("generator.%s: %w", kind, err)
	}

	text := Sanitize(raw)
	s.log.InfoContext(ctx, "sentence generated",
		slog.String("provider", p.Name()),
		slog.String("mode", mode.String()),
		slog.String("kind", kind),
		slog.Duration("took", time.Since(start)),
	)
	return text, nil
}
