package bias

import (
	"fmt"
	"strings"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
)

// Severity buckets a 0-100 score: high from 70, medium from 40, else low.
func Severity(score float64) string {
	switch {
	case score >= 70:
		return "high"
	case score >= 40:
		return "medium"
	default:
		return "low"
	}
}

// Explain renders the player-facing note for a scored sentence.
func Explain(bt domain.BiasType, score float64) string {
	return fmt.Sprintf(
		"This sentence shows %s %s bias risk (score %.2f/100). Try using neutral, inclusive language.",
		Severity(score), strings.ToLower(bt.String()), score,
	)
}
