package routes

import (
	"log"

	"job-matcher/internal/config"
	"job-matcher/internal/delivery/http/handler"
	v1 "job-matcher/internal/delivery/http/routes/v1"
	"job-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	cache  usecase.MatchCache
	logger *log.Logger

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, cache usecase.MatchCache, logger *log.Logger) *Registry {
	return &Registry{cfg: cfg, cache: cache, logger: logger, health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.cache, r.logger)
}
