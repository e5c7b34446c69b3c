package trainer

import (
	"strings"
	"unicode/utf8"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/provider"
)

const maxTextLen = 1000

// TurnInput asks the model to rewrite Original per Instruction and grades
// the reply.
type TurnInput struct {
	Mode        domain.Mode
	Original    string
	Instruction string
	Messages    []provider.Message
}

// RewriteInput grades a rewrite the player wrote themselves.
type RewriteInput struct {
	Mode     domain.Mode
	Original string
	Rewrite  string
}

// AnalyzeInput scores a single sentence without recording anything.
type AnalyzeInput struct {
	Mode domain.Mode
	Text string
}

// Validate checks all fields and collects all errors.
func (i AnalyzeInput) Validate() error {
	var errs []domain.FieldError

	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "unknown mode"})
	}

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if utf8.RuneCountInString(text) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
