package recommendation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/recommend"
)

type stubStrategy struct {
	name   string
	result *recommend.Suggestion
	calls  int
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Suggest(context.Context, []string) (*recommend.Suggestion, error) {
	s.calls++
	return s.result, nil
}

func TestSuggestUsesRuleStrategyByDefault(t *testing.T) {
	rule := &stubStrategy{name: "rule", result: &recommend.Suggestion{Role: "Backend Developer", Score: 80, Reason: "apis"}}
	external := &stubStrategy{name: "ai", result: &recommend.Suggestion{Role: "ML Engineer", Score: 92, Reason: "models"}}
	svc := NewService(rule, external, nil)

	res, err := svc.Suggest(context.Background(), []string{"api"}, false)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, "Backend Developer", res.Suggestion.Role)
	assert.Equal(t, recommend.BandMedium, res.Confidence)
	assert.Equal(t, "rule", res.Strategy)
	assert.Equal(t, 1, rule.calls)
	assert.Equal(t, 0, external.calls)
}

func TestSuggestExternalStrategy(t *testing.T) {
	rule := &stubStrategy{name: "rule", result: &recommend.Suggestion{Role: "Backend Developer", Score: 80, Reason: "apis"}}
	external := &stubStrategy{name: "ai", result: &recommend.Suggestion{Role: "ML Engineer", Score: 92, Reason: "models"}}
	svc := NewService(rule, external, nil)

	res, err := svc.Suggest(context.Background(), []string{"python"}, true)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, "ML Engineer", res.Suggestion.Role)
	assert.Equal(t, recommend.BandHigh, res.Confidence)
	assert.Equal(t, "ai", res.Strategy)
}

func TestSuggestFallsBackToRuleWhenExternalMissing(t *testing.T) {
	rule := &stubStrategy{name: "rule", result: &recommend.Suggestion{Role: "Software Engineer", Score: 70, Reason: "general"}}
	svc := NewService(rule, nil, nil)

	res, err := svc.Suggest(context.Background(), []string{"excel"}, true)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, "Software Engineer", res.Suggestion.Role)
	assert.Equal(t, recommend.BandExploratory, res.Confidence)
}

func TestSuggestNilWhenStrategyHasNothing(t *testing.T) {
	rule := &stubStrategy{name: "rule"}
	svc := NewService(rule, nil, nil)

	res, err := svc.Suggest(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Nil(t, res)
}
