package recommend

import (
	"context"
	"log"
	"regexp"
	"strconv"
	"strings"

	"google.golang.org/genai"
)

const geminiPrompt = `You are a career guidance AI.

Based on these skills:
%SKILLS%

1. Suggest ONE best career role
2. Give a match percentage (0-100)
3. Explain in 2 short lines why

Return response strictly in this format:
Role: <role>
Score: <number>
Reason: <text>`

var (
	roleRe   = regexp.MustCompile(`(?m)^Role:\s*(.+)$`)
	scoreRe  = regexp.MustCompile(`(?m)^Score:\s*(\d+)`)
	reasonRe = regexp.MustCompile(`(?m)^Reason:\s*(.+)$`)
)

// GeminiStrategy asks a hosted model for the suggestion. Every failure
// mode is silent: missing credential, empty skills, transport error, or
// a reply that doesn't match the three-line format all yield
// (nil, nil). One best-effort request, no retry.
type GeminiStrategy struct {
	apiKey string
	model  string
	logger *log.Logger

	client *genai.Client
}

func NewGeminiStrategy(apiKey, model string, logger *log.Logger) *GeminiStrategy {
	if logger == nil {
		logger = log.Default()
	}
	return &GeminiStrategy{apiKey: apiKey, model: model, logger: logger}
}

func (s *GeminiStrategy) Name() string { return "ai" }

func (s *GeminiStrategy) Suggest(ctx context.Context, skills []string) (*Suggestion, error) {
	if s.apiKey == "" || len(skills) == 0 {
		return nil, nil
	}

	client, err := s.ensureClient(ctx)
	if err != nil {
		s.logger.Printf("recommend gemini client error | error=%v", err)
		return nil, nil
	}

	prompt := strings.Replace(geminiPrompt, "%SKILLS%", strings.Join(skills, ", "), 1)

	resp, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		s.logger.Printf("recommend gemini call failed | error=%v", err)
		return nil, nil
	}

	return parseSuggestion(resp.Text()), nil
}

func (s *GeminiStrategy) ensureClient(ctx context.Context) (*genai.Client, error) {
	if s.client != nil {
		return s.client, nil
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	s.client = c
	return c, nil
}

// parseSuggestion extracts the labeled lines. A reply missing any of
// the three labels is treated as malformed and dropped.
func parseSuggestion(text string) *Suggestion {
	if text == "" {
		return nil
	}

	role := firstMatch(roleRe, text)
	scoreStr := firstMatch(scoreRe, text)
	reason := firstMatch(reasonRe, text)
	if role == "" || scoreStr == "" || reason == "" {
		return nil
	}

	score, err := strconv.Atoi(scoreStr)
	if err != nil || score < 0 || score > 100 {
		return nil
	}

	return &Suggestion{
		Role:   strings.TrimSpace(role),
		Score:  score,
		Reason: strings.TrimSpace(reason),
	}
}

func firstMatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
