// Package anthropic generates sentences with Claude models.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/config"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/provider"
)

// Name identifies this generator in logs and metrics.
const Name = "anthropic"

// Client wraps the Messages API.
type Client struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
	log         *slog.Logger
}

// NewClient creates a Client against the public API.
func NewClient(cfg config.LLMConfig, logger *slog.Logger) *Client {
	return newClient(cfg, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(cfg config.LLMConfig, baseURL string, logger *slog.Logger) *Client {
	return newClient(cfg, logger, option.WithBaseURL(baseURL))
}

func newClient(cfg config.LLMConfig, logger *slog.Logger, extra ...option.RequestOption) *Client {
	opts := append([]option.RequestOption{
		option.WithAPIKey(cfg.AnthropicAPIKey),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		option.WithMaxRetries(1),
	}, extra...)

	return &Client{
		client:      anthropic.NewClient(opts...),
		model:       cfg.AnthropicModel,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		log:         logger.With("adapter", Name, "model", cfg.AnthropicModel),
	}
}

// Name returns the provider name.
func (c *Client) Name() string { return Name }

// Generate sends the request and returns the concatenated text blocks of the
// reply. Failures and empty replies wrap domain.ErrProviderUnavailable.
func (c *Client) Generate(ctx context.Context, req provider.TextRequest) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Messages:    buildMessages(req),
		Temperature: anthropic.Float(c.temperature),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		c.log.ErrorContext(ctx, "anthropic request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("anthropic: messages: %w: %v", domain.ErrProviderUnavailable, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("anthropic: empty response: %w", domain.ErrProviderUnavailable)
	}

	c.log.DebugContext(ctx, "anthropic response",
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return text, nil
}

func buildMessages(req provider.TextRequest) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(req.History)+1)
	for _, m := range req.History {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		switch m.Role {
		case provider.RoleAssistant:
			out = append(out, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		case provider.RoleUser:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)))
}
