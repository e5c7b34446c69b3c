package rest

import (
	"time"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/submission"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/service/trainer"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type sampleRequest struct {
	Mode string `json:"mode"`
}

type messageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type turnRequest struct {
	Mode        string           `json:"mode"`
	Original    string           `json:"original"`
	Instruction string           `json:"instruction"`
	Messages    []messageRequest `json:"messages"`
}

type rewriteRequest struct {
	Mode     string `json:"mode"`
	Original string `json:"original"`
	Rewrite  string `json:"rewrite"`
}

type analyzeRequest struct {
	Mode string `json:"mode"`
	Text string `json:"text"`
}

type updateNameRequest struct {
	Username string `json:"username"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type sampleResponse struct {
	Sentence string `json:"sentence"`
}

type gradeResponse struct {
	BiasType      string               `json:"biasType"`
	Score         float64              `json:"score"`
	OriginalScore float64              `json:"originalScore"`
	Delta         float64              `json:"delta"`
	Threshold     float64              `json:"threshold"`
	Passed        bool                 `json:"passed"`
	PointsAwarded int                  `json:"pointsAwarded"`
	TotalPoints   int64                `json:"totalPoints"`
	HistoryItem   *historyItemResponse `json:"historyItem,omitempty"`
}

type turnResponse struct {
	Reply string `json:"reply"`
	gradeResponse
}

type analyzeResponse struct {
	BiasType    string  `json:"biasType"`
	Score       float64 `json:"score"`
	Severity    string  `json:"severity"`
	Explanation string  `json:"explanation"`
}

type summaryResponse struct {
	UID      string  `json:"uid"`
	Username *string `json:"username"`
	Points   int64   `json:"points"`
	PhotoURL *string `json:"photoURL"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type historyItemResponse struct {
	ID            int64     `json:"id"`
	Mode          string    `json:"mode"`
	BiasType      string    `json:"biasType"`
	Original      string    `json:"original"`
	Rewrite       string    `json:"rewrite"`
	OriginalScore float64   `json:"originalScore"`
	RewriteScore  float64   `json:"rewriteScore"`
	Delta         float64   `json:"delta"`
	Threshold     float64   `json:"threshold"`
	Passed        bool      `json:"passed"`
	PointsAwarded int       `json:"pointsAwarded"`
	CreatedAt     time.Time `json:"createdAt"`
}

type leaderboardEntryResponse struct {
	Rank     int     `json:"rank"`
	UID      string  `json:"uid"`
	Username *string `json:"username"`
	PhotoURL *string `json:"photoURL"`
	Points   int64   `json:"points"`
}

type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

// ---------------------------------------------------------------------------
// Mappers
// ---------------------------------------------------------------------------

func toGradeResponse(r *submission.Result) gradeResponse {
	out := gradeResponse{
		BiasType:      r.BiasType.String(),
		Score:         r.RewriteScore,
		OriginalScore: r.OriginalScore,
		Delta:         r.Delta,
		Threshold:     r.Threshold,
		Passed:        r.Passed,
		PointsAwarded: r.PointsAwarded,
		TotalPoints:   r.TotalPoints,
	}
	if r.HistoryItem != nil {
		item := toHistoryItemResponse(*r.HistoryItem)
		out.HistoryItem = &item
	}
	return out
}

func toTurnResponse(r *trainer.TurnResult) turnResponse {
	return turnResponse{Reply: r.Reply, gradeResponse: toGradeResponse(r.Result)}
}

func toAnalyzeResponse(r *trainer.AnalyzeResult) analyzeResponse {
	return analyzeResponse{
		BiasType:    r.BiasType.String(),
		Score:       r.Score,
		Severity:    r.Severity,
		Explanation: r.Explanation,
	}
}

func toSummaryResponse(u *domain.User) summaryResponse {
	return summaryResponse{
		UID:      u.UID,
		Username: u.DisplayName,
		Points:   u.Points,
		PhotoURL: u.PhotoURL,
	}
}

func toHistoryItemResponse(h domain.HistoryItem) historyItemResponse {
	return historyItemResponse{
		ID:            h.ID,
		Mode:          h.Mode.String(),
		BiasType:      h.BiasType.String(),
		Original:      h.Original,
		Rewrite:       h.Rewrite,
		OriginalScore: h.OriginalScore,
		RewriteScore:  h.RewriteScore,
		Delta:         h.Delta,
		Threshold:     h.Threshold,
		Passed:        h.Passed,
		PointsAwarded: h.PointsAwarded,
		CreatedAt:     h.CreatedAt,
	}
}

func toLeaderboardResponse(entries []domain.LeaderboardEntry) itemsResponse[leaderboardEntryResponse] {
	items := make([]leaderboardEntryResponse, 0, len(entries))
	for i, e := range entries {
		items = append(items, leaderboardEntryResponse{
			Rank:     i + 1,
			UID:      e.UID,
			Username: e.Name,
			PhotoURL: e.PhotoURL,
			Points:   e.Points,
		})
	}
	return itemsResponse[leaderboardEntryResponse]{Items: items}
}
