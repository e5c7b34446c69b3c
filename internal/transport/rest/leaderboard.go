package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
)

//go:generate moq -out leaderboard_service_mock_test.go -pkg rest . leaderboardService

type leaderboardService interface {
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// LeaderboardHandler serves the public ranking.
type LeaderboardHandler struct {
	svc leaderboardService
	log *slog.Logger
}

// NewLeaderboardHandler creates a LeaderboardHandler.
func NewLeaderboardHandler(svc leaderboardService, logger *slog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc, log: logger.With("handler", "leaderboard")}
}

// Top handles GET /api/leaderboard?limit=.
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.Top(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLeaderboardResponse(entries))
}
