package inference

import (
	"encoding/json"
	"fmt"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/provider"
)

// label is one class score as it appears on the wire.
type label struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type request struct {
	Inputs  string         `json:"inputs"`
	Options requestOptions `json:"options"`
}

type requestOptions struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

type apiError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// decodeLabels accepts both the batched shape [[{...}]] and the flat
// shape [{...}] that classification servers emit for a single input.
func decodeLabels(body []byte) ([]provider.LabelScore, error) {
	var flat []label

	var batched [][]label
	if err := json.Unmarshal(body, &batched); err == nil {
		if len(batched) == 0 {
			return nil, fmt.Errorf("empty response")
		}
		flat = batched[0]
	} else if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	out := make([]provider.LabelScore, len(flat))
	for i, l := range flat {
		out[i] = provider.LabelScore{Label: l.Label, Score: l.Score}
	}
	return out, nil
}
