package domain

import "time"

// HistoryItemFields are the caller-supplied fields of a scored submission.
// ID and CreatedAt are assigned by the store on append.
type HistoryItemFields struct {
	Mode          Mode
	BiasType      BiasType
	Original      string
	Rewrite       string
	OriginalScore float64
	RewriteScore  float64
	Delta         float64
	Threshold     float64
	Passed        bool
	PointsAwarded int
}

// HistoryItem is one immutable, persisted submission.
// PointsAwarded > 0 exactly when Passed, which holds exactly when
// RewriteScore <= Threshold under the absolute policy.
type HistoryItem struct {
	ID  int64
	UID string
	HistoryItemFields
	CreatedAt time.Time
}

// PointsDivergence reports a user whose balance does not match the sum of
// their recorded awards.
type PointsDivergence struct {
	UID          string
	Points       int64
	AwardedTotal int64
}
