package app

import (
	"fmt"
	"log"
	"os"
	"strings"

	"job-matcher/internal/config"
	"job-matcher/internal/delivery/http/middleware"
	"job-matcher/internal/delivery/http/routes"
	"job-matcher/internal/infrastructure/cache"
	"job-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, logger *log.Logger, matchCache usecase.MatchCache) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)
	routes.NewRegistry(cfg, matchCache, logger).Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	redisCache := cache.NewRedis(logger)
	app := New(cfg, logger, redisCache)

	cleanup := func() error { return redisCache.Close() }
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
