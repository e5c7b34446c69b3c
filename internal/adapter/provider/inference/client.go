// Package inference calls a hosted text-classification model over HTTP.
// The wire format is the Hugging Face inference API: POST {"inputs": text}
// to <base>/<model>, answered with a list of {label, score}.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/config"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/provider"
)

const maxBodyBytes = 1 << 20

// Client classifies text with one remote model.
type Client struct {
	endpoint   string
	model      string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from the scoring configuration.
func NewClient(cfg config.ScoringConfig, logger *slog.Logger) *Client {
	return &Client{
		endpoint:   strings.TrimRight(cfg.InferenceURL, "/") + "/" + cfg.ModelName,
		model:      cfg.ModelName,
		token:      cfg.InferenceToken,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "inference", "model", cfg.ModelName),
	}
}

// Model returns the model identifier this client targets.
func (c *Client) Model() string { return c.model }

// Load checks that the model is reachable and warm. It blocks while the
// server loads the model.
func (c *Client) Load(ctx context.Context) error {
	start := time.Now()
	if _, err := c.Classify(ctx, "hello"); err != nil {
		return err
	}
	c.log.InfoContext(ctx, "bias model ready", slog.Duration("took", time.Since(start)))
	return nil
}

// Classify returns the label scores for text. Any transport, status or
// decoding failure is reported as domain.ErrModelUnavailable.
func (c *Client) Classify(ctx context.Context, text string) ([]provider.LabelScore, error) {
	payload, err := json.Marshal(request{
		Inputs:  text,
		Options: requestOptions{WaitForModel: true, UseCache: true},
	})
	if err != nil {
		return nil, fmt.Errorf("inference: encode request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, payload)
	if err != nil {
		c.log.ErrorContext(ctx, "inference request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("inference: request failed: %w: %v", domain.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("inference: read body: %w: %v", domain.ErrModelUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		_ = json.Unmarshal(body, &apiErr)
		return nil, fmt.Errorf("inference: unexpected status %d %q: %w",
			resp.StatusCode, apiErr.Error, domain.ErrModelUnavailable)
	}

	labels, err := decodeLabels(body)
	if err != nil {
		return nil, fmt.Errorf("inference: %w: %v", domain.ErrModelUnavailable, err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("inference: no labels returned: %w", domain.ErrModelUnavailable)
	}

	c.log.DebugContext(ctx, "inference response",
		slog.Int("status", resp.StatusCode),
		slog.Int("labels", len(labels)),
	)

	return labels, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, payload []byte) (*http.Response, error) {
	resp, err := c.do(ctx, payload)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "inference retry", slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(500 * time.Millisecond):
	}

	return c.do(ctx, payload)
}

func (c *Client) do(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.httpClient.Do(req)
}
