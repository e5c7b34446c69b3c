package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/provider"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/submission"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/trainer"
)

//go:generate moq -out trainer_service_mock_test.go -pkg rest . trainerService

// trainerService defines the game round operations needed by TrainerHandler.
type trainerService interface {
	Sample(ctx context.Context, mode domain.Mode) (string, error)
	Turn(ctx context.Context, input trainer.TurnInput) (*trainer.TurnResult, error)
	Rewrite(ctx context.Context, input trainer.RewriteInput) (*submission.Result, error)
	Analyze(ctx context.Context, input trainer.AnalyzeInput) (*trainer.AnalyzeResult, error)
}

// TrainerHandler serves the game round endpoints.
type TrainerHandler struct {
	svc trainerService
	log *slog.Logger
}

// NewTrainerHandler creates a TrainerHandler.
func NewTrainerHandler(svc trainerService, logger *slog.Logger) *TrainerHandler {
	return &TrainerHandler{svc: svc, log: logger.With("handler", "trainer")}
}

// SampleSentence handles POST /api/sampleSentence.
func (h *TrainerHandler) SampleSentence(w http.ResponseWriter, r *http.Request) {
	var req sampleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sentence, err := h.svc.Sample(r.Context(), domain.Mode(req.Mode))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sampleResponse{Sentence: sentence})
}

// Turn handles POST /api/turn.
func (h *TrainerHandler) Turn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	messages := make([]provider.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, provider.Message{Role: provider.Role(m.Role), Content: m.Content})
	}

	result, err := h.svc.Turn(r.Context(), trainer.TurnInput{
		Mode:        domain.Mode(req.Mode),
		Original:    req.Original,
		Instruction: req.Instruction,
		Messages:    messages,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTurnResponse(result))
}

// Rewrite handles POST /api/rewrite.
func (h *TrainerHandler) Rewrite(w http.ResponseWriter, r *http.Request) {
	var req rewriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Rewrite(r.Context(), trainer.RewriteInput{
		Mode:     domain.Mode(req.Mode),
		Original: req.Original,
		Rewrite:  req.Rewrite,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGradeResponse(result))
}

// Analyze handles POST /api/analyze.
func (h *TrainerHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Analyze(r.Context(), trainer.AnalyzeInput{
		Mode: domain.Mode(req.Mode),
		Text: req.Text,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalyzeResponse(result))
}
