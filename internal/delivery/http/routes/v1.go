package routes

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"resume-builder/internal/assistant"
	"resume-builder/internal/config"
	"resume-builder/internal/database"
	v1 "resume-builder/internal/delivery/http/routes/v1"
	"resume-builder/internal/infrastructure/cache"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, c *cache.Redis, hub *assistant.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, v1.Deps{
		Config: cfg,
		DB:     db,
		Cache:  c,
		Hub:    hub,
		Logger: logger,
	})
}
