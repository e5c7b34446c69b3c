package submission

import (
	"strings"
	"unicode/utf8"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
)

const maxSentenceLen = 1000

// Input is one rewrite attempt by a verified caller.
type Input struct {
	Caller   domain.Identity
	Mode     domain.Mode
	Original string
	Rewrite  string
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Caller.UID) == "" {
		errs = append(errs, domain.FieldError{Field: "uid", Message: "required"})
	}
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

	rewrite := strings.TrimSpace(i.Rewrite)
	if rewrite == "" {
		errs = append(errs, domain.FieldError{Field: "rewrite", Message: "required"})
	}
	if utf8.RuneCountInString(rewrite) > maxSentenceLen {
		errs = append(errs, domain.FieldError{Field: "rewrite", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
