package trainer

import (
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/submission"
)

// TurnResult is the generated reply and its grade.
type TurnResult struct {
	Reply string
	*submission.Result
}

// AnalyzeResult is the bias score of one sentence with a short explanation.
type AnalyzeResult struct {
	BiasType    domain.BiasType
	Score       float64
	Severity    string
	Explanation string
}
