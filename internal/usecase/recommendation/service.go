// Package recommendation wires the two suggestion strategies behind a
// redis cache keyed by the skill set. A late reply for a superseded
// skill set only fills a cache entry nobody reads, which is how stale
// in-flight responses are tolerated without cancellation.
package recommendation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"resume-builder/internal/infrastructure/cache"
	"resume-builder/internal/recommend"
)

const cacheTTL = time.Hour

type Result struct {
	Suggestion recommend.Suggestion `json:"suggestion"`
	Confidence string               `json:"confidence"`
	Strategy   string               `json:"strategy"`
}

type Service struct {
	rule     recommend.Strategy
	external recommend.Strategy
	cache    *cache.Redis
}

func NewService(rule, external recommend.Strategy, c *cache.Redis) *Service {
	return &Service{rule: rule, external: external, cache: c}
}

// Suggest returns nil when no suggestion is available; the caller
// hides the annotation rather than showing an error.
func (s *Service) Suggest(ctx context.Context, skills []string, useExternal bool) (*Result, error) {
	strat := s.rule
	if useExternal && s.external != nil {
		strat = s.external
	}

	key := cacheKey(strat.Name(), skills)

	var cached Result
	if found, _ := s.cache.GetJSON(ctx, key, &cached); found {
		return &cached, nil
	}

	sug, err := strat.Suggest(ctx, skills)
	if err != nil || sug == nil {
		return nil, err
	}

	res := Result{
		Suggestion: *sug,
		Confidence: recommend.ConfidenceBand(sug.Score),
		Strategy:   strat.Name(),
	}
	_ = s.cache.SetJSON(ctx, key, res, cacheTTL)
	return &res, nil
}

func cacheKey(strategy string, skills []string) string {
	lowered := make([]string, 0, len(skills))
	for _, sk := range skills {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(sk)))
	}
	sum := sha256.Sum256([]byte(strings.Join(lowered, ",")))
	return "recommend:" + strategy + ":" + hex.EncodeToString(sum[:])
}
