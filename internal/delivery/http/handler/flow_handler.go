package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resume-builder/internal/delivery/http/middleware"
	"resume-builder/internal/flow"
	"resume-builder/internal/pkg/response"
)

// FlowHandler exposes the per-user view state machine: read the current
// session and feed it events.
type FlowHandler struct {
	store *flow.Store
}

type flowEventRequest struct {
	Event    string `json:"event"`
	ResumeID string `json:"resumeId,omitempty"`
}

func NewFlowHandler(store *flow.Store) *FlowHandler {
	return &FlowHandler{store: store}
}

func (h *FlowHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Get)
	r.Post("/events", h.ApplyEvent)
}

func (h *FlowHandler) Get(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	sess, err := h.store.Get(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, sess)
}

func (h *FlowHandler) ApplyEvent(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req flowEventRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ev, err := flow.ParseEvent(req.Event)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown view event", nil, err)
	}

	resumeID := uuid.Nil
	if req.ResumeID != "" {
		resumeID, err = uuid.Parse(req.ResumeID)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
		}
	}

	sess, err := h.store.Apply(c.Context(), userID, ev, resumeID)
	if err != nil {
		if errors.Is(err, flow.ErrIllegalTransition) {
			return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, sess)
}
