package handler

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"resume-builder/internal/assistant"
	"resume-builder/internal/delivery/http/middleware"
	"resume-builder/internal/pkg/response"
)

// AssistantHandler is the request/response face of the chat
// collaborator. The websocket transport lives in internal/assistant;
// this handler covers clients that prefer plain HTTP.
type AssistantHandler struct {
	svc    *assistant.Service
	ws     *assistant.Handler
	logger *log.Logger
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply     string    `json:"reply"`
	Warning   bool      `json:"warning"`
	Timestamp time.Time `json:"timestamp"`
}

func NewAssistantHandler(svc *assistant.Service, ws *assistant.Handler, logger *log.Logger) *AssistantHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &AssistantHandler{svc: svc, ws: ws, logger: logger}
}

func (h *AssistantHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/chat", h.Chat)
	if h.ws != nil {
		r.Get("/ws", h.ws.HandleChatWS)
	}
}

// Chat answers one message. Assistant failures come back as a warning
// reply with HTTP 200, matching the inline warning entry in the chat
// log rather than an error page.
func (h *AssistantHandler) Chat(c fiber.Ctx) error {
	var req chatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.Message) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Message must not be empty", nil, nil)
	}

	reply, err := h.svc.Reply(c.Context(), req.Message)
	if err != nil {
		if !errors.Is(err, assistant.ErrDisabled) {
			h.logger.Printf("assistant reply error | error=%v", err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, chatResponse{
			Reply:     assistant.WarningReply,
			Warning:   true,
			Timestamp: time.Now().UTC(),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, chatResponse{
		Reply:     reply,
		Timestamp: time.Now().UTC(),
	})
}
