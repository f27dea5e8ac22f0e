package handler

import (
	"github.com/gofiber/fiber/v3"

	"resume-builder/internal/delivery/http/middleware"
	"resume-builder/internal/pkg/response"
	ucrecommend "resume-builder/internal/usecase/recommendation"
)

type RecommendationHandler struct {
	uc *ucrecommend.Service
}

type recommendationRequest struct {
	Skills   []string `json:"skills"`
	Strategy string   `json:"strategy"`
}

func NewRecommendationHandler(uc *ucrecommend.Service) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Suggest)
}

// Suggest returns a role suggestion for the given skill set, or a null
// payload when no suggestion applies. Clients hide the annotation on
// null instead of surfacing an error.
func (h *RecommendationHandler) Suggest(c fiber.Ctx) error {
	var req recommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	strategy := req.Strategy
	if q := c.Query("strategy"); q != "" {
		strategy = q
	}
	useExternal := strategy == "ai"

	res, err := h.uc.Suggest(c.Context(), req.Skills, useExternal)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
