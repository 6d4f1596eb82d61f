package v1

import (
	"log"

	"job-matcher/internal/config"
	"job-matcher/internal/delivery/http/handler"
	"job-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, cache usecase.MatchCache, logger *log.Logger) {
	if r == nil {
		return
	}

	matchUC := usecase.NewMatchUsecase(cfg.Match.NormalizeSkills, cache, logger)
	handler.NewMatchHandler(matchUC).RegisterRoutes(r)
}
