package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/pkg/ctxutil"
)

// Summary returns the caller's profile, creating it with zero points on the
// first read.
func (s *Service) Summary(ctx context.Context) (*domain.User, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.EnsureUser(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("profile.Summary: %w", err)
	}
	return u, nil
}

// UpdateName sets the caller's display name. Points are never touched.
func (s *Service) UpdateName(ctx context.Context, input UpdateNameInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.users.EnsureUser(ctx, caller); err != nil {
		return nil, fmt.Errorf("profile.UpdateName ensure: %w", err)
	}

	u, err := s.users.UpdateDisplayName(ctx, caller.UID, strings.TrimSpace(input.Name))
	if err != nil {
		return nil, fmt.Errorf("profile.UpdateName: %w", err)
	}

	s.log.InfoContext(ctx, "display name updated", slog.String("uid", caller.UID))
	return u, nil
}

// History returns the caller's most recent submissions, newest first.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.HistoryItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	uid, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	items, err := s.history.ListRecent(ctx, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("profile.History: %w", err)
	}
	return items, nil
}
