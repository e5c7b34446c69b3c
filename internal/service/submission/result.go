package submission

import "github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"

// Result is the consistent view of one persisted submission.
type Result struct {
	BiasType      domain.BiasType
	OriginalScore float64
	RewriteScore  float64
	Delta         float64
	Threshold     float64
	Passed        bool
	PointsAwarded int
	// TotalPoints is the caller's balance after this submission.
	TotalPoints int64
	HistoryItem *domain.HistoryItem
}
