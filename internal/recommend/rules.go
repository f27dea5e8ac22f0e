package recommend

import (
	"context"
	"strings"
)

// ruleGroup maps a keyword set to a fixed suggestion. Groups are
// checked in priority order; the first group with any keyword present
// wins, not the best fit.
type ruleGroup struct {
	keywords   []string
	suggestion Suggestion
}

var ruleGroups = []ruleGroup{
	{
		keywords: []string{"python", "machine learning", "data science"},
		suggestion: Suggestion{
			Role:   "Data Scientist",
			Score:  90,
			Reason: "Strong alignment with data analysis, machine learning, and Python skills.",
		},
	},
	{
		keywords: []string{"react", "javascript"},
		suggestion: Suggestion{
			Role:   "Frontend Developer",
			Score:  85,
			Reason: "Excellent fit for frontend frameworks and UI development.",
		},
	},
	{
		keywords: []string{"node", "backend", "api"},
		suggestion: Suggestion{
			Role:   "Backend Developer",
			Score:  80,
			Reason: "Backend systems and API experience detected.",
		},
	},
}

var defaultSuggestion = Suggestion{
	Role:   "Software Engineer",
	Score:  70,
	Reason: "General software engineering skills detected.",
}

type RuleStrategy struct{}

func NewRuleStrategy() *RuleStrategy {
	return &RuleStrategy{}
}

func (s *RuleStrategy) Name() string { return "rule" }

func (s *RuleStrategy) Suggest(_ context.Context, skills []string) (*Suggestion, error) {
	if len(skills) == 0 {
		return nil, nil
	}

	have := make(map[string]bool, len(skills))
	for _, sk := range skills {
		have[strings.ToLower(strings.TrimSpace(sk))] = true
	}

	for _, g := range ruleGroups {
		for _, kw := range g.keywords {
			if have[kw] {
				out := g.suggestion
				return &out, nil
			}
		}
	}

	out := defaultSuggestion
	return &out, nil
}
