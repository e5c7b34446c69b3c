package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/profile"
)

//go:generate moq -out profile_service_mock_test.go -pkg rest . profileService

type profileService interface {
	Summary(ctx context.Context) (*domain.User, error)
	UpdateName(ctx context.Context, input profile.UpdateNameInput) (*domain.User, error)
	History(ctx context.Context, input profile.HistoryInput) ([]domain.HistoryItem, error)
}

// ProfileHandler serves the caller's own profile and history.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

// Summary handles GET /api/me/summary. The user row is created on first read.
func (h *ProfileHandler) Summary(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(u))
}

// UpdateName handles POST /api/me/update.
func (h *ProfileHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	var req updateNameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.svc.UpdateName(r.Context(), profile.UpdateNameInput{Name: req.Username}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// History handles GET /api/history?limit=.
func (h *ProfileHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.History(r.Context(), profile.HistoryInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]historyItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toHistoryItemResponse(it))
	}
	writeJSON(w, http.StatusOK, itemsResponse[historyItemResponse]{Items: out})
}
