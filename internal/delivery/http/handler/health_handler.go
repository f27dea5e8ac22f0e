package handler

import (
	"github.com/gofiber/fiber/v3"

	"resume-builder/internal/database"
	"resume-builder/internal/pkg/response"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]string{"database": "up"}
	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			data["database"] = "down"
			return response.Error(c, fiber.StatusServiceUnavailable, "degraded", data)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
