package generator

import (
	"strings"
	"unicode/utf8"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/provider"
)

const (
	maxSentenceLen    = 1000
	maxInstructionLen = 500
	maxHistoryTurns   = 20
)

// RewriteInput holds the parameters for a constrained rewrite.
type RewriteInput struct {
	Mode        domain.Mode
	Original    string
	Instruction string
	History     []provider.Message
}

// Validate checks all fields and collects all errors.
func (i RewriteInput) Validate() error {
	var errs []domain.FieldError

	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "unknown mode"})
	}

	original := strings.TrimSpace(i.Original)
	if original == "" {
		errs = append(errs, domain.FieldError{Field: "original", Message: "required"})
	}
	if utf8.RuneCountInString(original) > maxSentenceLen {
		errs = append(errs, domain.FieldError{Field: "original", Message: "max 1000 characters"})
	}

	instruction := strings.TrimSpace(i.Instruction)
	if instruction == "" {
		errs = append(errs, domain.FieldError{Field: "instruction", Message: "required"})
	}
	if utf8.RuneCountInString(instruction) > maxInstructionLen {
		errs = append(errs, domain.FieldError{Field: "instruction", Message: "max 500 characters"})
	}

	if len(i.History) > maxHistoryTurns {
		errs = append(errs, domain.FieldError{Field: "messages", Message: "max 20 messages"})
	}
	for _, m := range i.History {
		if m.Role != provider.RoleUser && m.Role != provider.RoleAssistant {
			errs = append(errs, domain.FieldError{Field: "messages.role", Message: "must be user or assistant"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
