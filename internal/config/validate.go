package config

import (
	"fmt"
	"math"
	"net/url"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/scoring"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.FirebaseProjectID == "" {
		return fmt.Errorf("auth.firebase_project_id is required")
	}

	if err := c.Scoring.validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if c.RateLimit.GeneratePerMinute <= 0 {
		return fmt.Errorf("rate_limit.generate_per_minute must be > 0 (got %d)", c.RateLimit.GeneratePerMinute)
	}

	return nil
}

func (s *ScoringConfig) validate() error {
	if _, ok := scoring.ByName(s.Policy, s.Reward); !ok {
		return fmt.Errorf("unknown policy %q", s.Policy)
	}
	if math.IsNaN(s.Threshold) || s.Threshold < 0 || s.Threshold > 100 {
		return fmt.Errorf("threshold must be within [0, 100] (got %v)", s.Threshold)
	}
	if s.Reward <= 0 {
		return fmt.Errorf("reward must be > 0 (got %d)", s.Reward)
	}
	if s.ModelName == "" {
		return fmt.Errorf("model_name is required")
	}
	if _, err := url.ParseRequestURI(s.InferenceURL); err != nil {
		return fmt.Errorf("inference_url: %w", err)
	}
	if s.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0 (got %d)", s.CacheSize)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	if len(l.ProvidersConfigured()) == 0 {
		return fmt.Errorf("at least one provider must be configured (Anthropic or Gemini)")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2] (got %v)", l.Temperature)
	}
	return nil
}
