// Package assistant is the free-text career Q&A collaborator. It never
// blocks resume editing or export: failures surface as a single inline
// warning message in the chat log.
package assistant

import (
	"context"
	"errors"
	"log"
	"strings"

	"google.golang.org/genai"
)

const systemPrompt = `You are an AI resume and career guidance assistant.
Respond in a concise, professional tone.
Limit the response to 2-3 bullet points.

User question:
`

// WarningReply is appended to the message log when the collaborator is
// unavailable or the call fails.
const WarningReply = "The assistant is unavailable right now. Please try again later."

var ErrDisabled = errors.New("assistant disabled: no API key configured")

type Service struct {
	apiKey string
	model  string
	logger *log.Logger

	client *genai.Client
}

func NewService(apiKey, model string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{apiKey: apiKey, model: model, logger: logger}
}

// Reply answers one user message. The error is for the caller's log
// only; user-facing flows should fall back to WarningReply.
func (s *Service) Reply(ctx context.Context, message string) (string, error) {
	if s.apiKey == "" {
		return "", ErrDisabled
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.New("empty message")
	}

	client, err := s.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, genai.Text(systemPrompt+message), nil)
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", errors.New("empty model reply")
	}
	return reply, nil
}

func (s *Service) ensureClient(ctx context.Context) (*genai.Client, error) {
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
