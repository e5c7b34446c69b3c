// Package generator produces example and rewritten sentences through the
// configured language-model providers.
package generator

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/observability"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/provider"
)

//go:generate moq -out text_provider_mock_test.go -pkg generator . TextProvider

// TextProvider is one language-model backend.
type TextProvider interface {
	Name() string
	Generate(ctx context.Context, req provider.TextRequest) (string, error)
}

// Provider names used for routing.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Service routes generation requests to a provider by mode.
type Service struct {
	log       *slog.Logger
	providers map[string]TextProvider
	fallback  TextProvider
	metrics   *observability.Metrics
}

// NewService creates a generator over the given providers. The first
// provider is used for modes whose preferred provider is not configured.
func NewService(log *slog.Logger, metrics *observability.Metrics, providers ...TextProvider) (*Service, error) {
	if len(providers) == 0 {
		return nil, errors.New("generator.NewService: at least one provider is required")
	}

	byName := make(map[string]TextProvider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}

	return &Service{
		log:       log.With("service", "generator"),
		providers: byName,
		fallback:  providers[0],
		metrics:   metrics,
	}, nil
}

// preferredProvider returns the provider a mode is designed for.
// Modes prefixed "gemini" go to Gemini; every other mode goes to Claude.
func preferredProvider(mode domain.Mode) string {
	if strings.HasPrefix(string(mode), "gemini") {
		return ProviderGemini
	}
	return ProviderAnthropic
}

// route picks the provider for mode. The choice depends only on which
// providers were configured at startup; a failing provider is not swapped
// for another at request time.
func (s *Service) route(mode domain.Mode) TextProvider {
	if p, ok := s.providers[preferredProvider(mode)]; ok {
		return p
	}
	return s.fallback
}
