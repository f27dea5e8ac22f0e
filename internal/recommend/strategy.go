// Package recommend derives a single role suggestion from a skill list.
// Suggestions are an in-app annotation only and are never included in
// exported output.
package recommend

import "context"

type Suggestion struct {
	Role   string `json:"role"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Strategy is the capability both the rule table and the external AI
// call implement. A (nil, nil) return means "no suggestion": the caller
// suppresses the UI element instead of surfacing an error.
type Strategy interface {
	Name() string
	Suggest(ctx context.Context, skills []string) (*Suggestion, error)
}

// Confidence bands layered on the numeric score. Thresholds are fixed
// configuration, recomputed wherever the score is shown.
const (
	BandHigh        = "High Confidence"
	BandMedium      = "Medium Confidence"
	BandExploratory = "Exploratory"

	bandHighMin   = 85
	bandMediumMin = 75
)

func ConfidenceBand(score int) string {
	switch {
	case score >= bandHighMin:
		return BandHigh
	case score >= bandMediumMin:
		return BandMedium
	default:
		return BandExploratory
	}
}
