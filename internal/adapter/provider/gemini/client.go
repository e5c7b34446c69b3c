// Package gemini generates sentences with Google Gemini models.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/config"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/provider"
)

// Name identifies this generator in logs and metrics.
const Name = "gemini"

// Client wraps a genai client bound to one model.
type Client struct {
	client      *genai.Client
	model       string
	maxTokens   int32
	temperature float32
	log         *slog.Logger
}

// NewClient creates a Client. Close must be called on shutdown.
func NewClient(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{
		client:      client,
		model:       cfg.GeminiModel,
		maxTokens:   int32(cfg.MaxTokens),
		temperature: float32(cfg.Temperature),
		log:         logger.With("adapter", Name, "model", cfg.GeminiModel),
	}, nil
}

// Name returns the provider name.
func (c *Client) Name() string { return Name }

// Generate runs one chat turn. Prior turns are replayed as chat history.
// Failures and empty replies wrap domain.ErrProviderUnavailable.
func (c *Client) Generate(ctx context.Context, req provider.TextRequest) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)
	model.SetMaxOutputTokens(c.maxTokens)
	if req.System != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(req.System))
	}

	cs := model.StartChat()
	cs.History = buildHistory(req.History)

	resp, err := cs.SendMessage(ctx, genai.Text(req.Prompt))
	if err != nil {
		c.log.ErrorContext(ctx, "gemini request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("gemini: generate: %w: %v", domain.ErrProviderUnavailable, err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", fmt.Errorf("gemini: %w: %v", domain.ErrProviderUnavailable, err)
	}
	return text, nil
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// buildHistory maps chat turns to genai contents. Gemini names the
// assistant role "model".
func buildHistory(msgs []provider.Message) []*genai.Content {
	var out []*genai.Content
	for _, m := range msgs {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		role := "user"
		if m.Role == provider.RoleAssistant {
			role = "model"
		} else if m.Role != provider.RoleUser {
			continue
		}
		out = append(out, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}
	return out
}

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	text := strings.TrimSpace(strings.Join(parts, ""))
	if text == "" {
		return "", fmt.Errorf("no text parts in response")
	}
	return text, nil
}
