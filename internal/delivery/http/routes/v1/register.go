package v1

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"resume-builder/internal/assistant"
	"resume-builder/internal/config"
	"resume-builder/internal/database"
	"resume-builder/internal/delivery/http/handler"
	"resume-builder/internal/delivery/http/middleware"
	"resume-builder/internal/export"
	"resume-builder/internal/flow"
	"resume-builder/internal/infrastructure/cache"
	"resume-builder/internal/infrastructure/persistence/postgres"
	"resume-builder/internal/pkg/jwt"
	"resume-builder/internal/recommend"
	ucauth "resume-builder/internal/usecase/auth"
	ucexport "resume-builder/internal/usecase/exporting"
	ucrecommend "resume-builder/internal/usecase/recommendation"
	ucresumes "resume-builder/internal/usecase/resumes"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *assistant.Hub
	Logger *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	cfg := d.Config

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := postgres.NewUserRepository(d.DB)
	resumeRepo := postgres.NewResumeRepository(d.DB)
	flowStore := flow.NewStore(d.Cache)

	authUC := ucauth.NewService(userRepo, jwtSvc, d.Cache)
	resumesUC := ucresumes.NewService(resumeRepo, flowStore)
	exportUC := ucexport.NewService(resumesUC, export.NewPDFConverter(cfg.Render.ChromePath))

	var external recommend.Strategy
	if cfg.AI.APIKey != "" {
		external = recommend.NewGeminiStrategy(cfg.AI.APIKey, cfg.AI.Model, d.Logger)
	}
	recommendUC := ucrecommend.NewService(recommend.NewRuleStrategy(), external, d.Cache)

	assistantSvc := assistant.NewService(cfg.AI.APIKey, cfg.AI.Model, d.Logger)
	chatWS := assistant.NewHandler(d.Hub, assistantSvc, d.Logger)

	authHandler := handler.NewAuthHandler(authUC)
	resumeHandler := handler.NewResumeHandler(resumesUC)
	exportHandler := handler.NewExportHandler(exportUC)
	recommendationHandler := handler.NewRecommendationHandler(recommendUC)
	flowHandler := handler.NewFlowHandler(flowStore)
	assistantHandler := handler.NewAssistantHandler(assistantSvc, chatWS, d.Logger)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	authHandler.RegisterProtectedRoutes(protected.Group("/auth"))

	resumesGroup := protected.Group("/resumes")
	resumeHandler.RegisterRoutes(resumesGroup)
	exportHandler.RegisterRoutes(resumesGroup)

	recommendationHandler.RegisterRoutes(protected.Group("/recommendations"))
	flowHandler.RegisterRoutes(protected.Group("/flow"))
	assistantHandler.RegisterRoutes(protected.Group("/assistant"))
}
