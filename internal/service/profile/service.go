// Package profile serves the caller's own profile and submission history.
package profile

import (
	"context"
	"log/slog"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

//go:generate moq -out user_repo_mock_test.go -pkg profile . userRepo
//go:generate moq -out history_repo_mock_test.go -pkg profile . historyRepo

type userRepo interface {
	EnsureUser(ctx context.Context, id domain.Identity) (*domain.User, error)
	UpdateDisplayName(ctx context.Context, uid, name string) (*domain.User, error)
}

type historyRepo interface {
	ListRecent(ctx context.Context, uid string, limit int) ([]domain.HistoryItem, error)
}

// Service implements the profile operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	history historyRepo
}

// NewService creates a new profile service.
func NewService(logger *slog.Logger, users userRepo, history historyRepo) *Service {
	return &Service{
		log:     logger.With("service", "profile"),
		users:   users,
		history: history,
	}
}
