package handler

import (
	"brainfuel/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the health check and the /api group on app.
func RegisterRoutes(app *fiber.App, generation *GenerationHandler, upload *UploadHandler) {
	app.Get("/health", Health)

	api := app.Group("/api")
	api.Post("/generate-explanation", generation.GenerateExplanation)
	api.Post("/generate-quiz", generation.GenerateQuiz)
	api.Get("/daily-facts", generation.DailyFacts)
	api.Post("/daily-facts", generation.DailyFacts)
	api.Post("/upload-file", upload.UploadFile)
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}
