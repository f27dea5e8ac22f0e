package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resume-builder/internal/delivery/http/middleware"
	"resume-builder/internal/domain/resume"
	"resume-builder/internal/editor"
	"resume-builder/internal/flow"
	"resume-builder/internal/pkg/response"
	ucresumes "resume-builder/internal/usecase/resumes"
)

type ResumeHandler struct {
	uc *ucresumes.Service
}

type editsRequest struct {
	Ops []editor.Op `json:"ops"`
}

func NewResumeHandler(uc *ucresumes.Service) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Submit)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Submit)
	r.Delete("/:id", h.Delete)
	r.Patch("/:id/edits", h.ApplyEdits)
}

func (h *ResumeHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapResumesUsecaseError(err)
	}
	if items == nil {
		items = []resume.Resume{}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

// Submit serves both the create and the update route: a body without an
// id creates, a body with one updates. The path id, when present, wins.
func (h *ResumeHandler) Submit(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var in resume.Resume
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if raw := c.Params("id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
		}
		in.ID = id
	}

	res, err := h.uc.Submit(c.Context(), userID, in)
	if err != nil {
		return mapResumesUsecaseError(err)
	}

	status := fiber.StatusOK
	if res.Action == editor.ActionCreate {
		status = fiber.StatusCreated
	}
	return response.Success(c, status, response.MessageOK, res.Resume)
}

func (h *ResumeHandler) Get(c fiber.Ctx) error {
	userID, id, appErr := ownerAndResumeID(c)
	if appErr != nil {
		return appErr
	}

	r, err := h.uc.Get(c.Context(), userID, id)
	if err != nil {
		return mapResumesUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, r)
}

func (h *ResumeHandler) Delete(c fiber.Ctx) error {
	userID, id, appErr := ownerAndResumeID(c)
	if appErr != nil {
		return appErr
	}

	if err := h.uc.Delete(c.Context(), userID, id); err != nil {
		return mapResumesUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ResumeHandler) ApplyEdits(c fiber.Ctx) error {
	userID, id, appErr := ownerAndResumeID(c)
	if appErr != nil {
		return appErr
	}

	var req editsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if len(req.Ops) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "At least one edit operation is required", nil, nil)
	}

	r, err := h.uc.ApplyEdits(c.Context(), userID, id, req.Ops)
	if err != nil {
		return mapResumesUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, r)
}

func ownerAndResumeID(c fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}
	return userID, id, nil
}

func mapResumesUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var verr *ucresumes.ValidationError
	if errors.As(err, &verr) {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", verr.Fields, err)
	}

	switch {
	case errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, editor.ErrUnknownCollection),
		errors.Is(err, editor.ErrIndexOutOfRange):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, ucresumes.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	case errors.Is(err, ucresumes.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Resume belongs to another user", nil, err)
	case errors.Is(err, flow.ErrSubmitInFlight):
		return middleware.NewAppError(fiber.StatusConflict, "A submission is already in progress", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
