package profile

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
)

const maxDisplayNameLen = 50

// UpdateNameInput holds the new display name.
type UpdateNameInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i UpdateNameInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return domain.NewValidationError("username", "required")
	}
	if utf8.RuneCountInString(name) > maxDisplayNameLen {
		return domain.NewValidationError("username", fmt.Sprintf("max %d characters", maxDisplayNameLen))
	}
	return nil
}

// HistoryInput holds the paging parameters for the history list.
type HistoryInput struct {
	Limit int
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	if i.Limit < 0 || i.Limit > MaxHistoryLimit {
		return domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxHistoryLimit))
	}
	return nil
}
