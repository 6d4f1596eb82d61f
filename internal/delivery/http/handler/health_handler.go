package handler

import (
	"job-matcher/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const livenessMessage = "Job Matcher API Running"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/", h.Home)
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Home(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]string{"message": livenessMessage})
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
