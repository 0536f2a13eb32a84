package handler

import (
	"brainfuel/internal/domain"
	"brainfuel/internal/dto"
	"brainfuel/internal/logger"
	"brainfuel/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderDegraded marks responses served from a built-in fallback.
const HeaderDegraded = "X-Degraded"

// GenerationHandler serves the explanation, quiz and daily-facts endpoints
type GenerationHandler struct {
	explanations service.ExplanationService
	quizzes      service.QuizService
	facts        service.FactsService
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(explanations service.ExplanationService, quizzes service.QuizService, facts service.FactsService) *GenerationHandler {
	return &GenerationHandler{
		explanations: explanations,
		quizzes:      quizzes,
		facts:        facts,
	}
}

// GenerateExplanation godoc
// @Summary Generate an explanation
// @Description Explains a topic at the requested level, optionally grounded on uploaded document text
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.ExplanationRequest true "Topic, level and optional document text"
// @Success 200 {object} dto.ExplanationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-explanation [post]
func (h *GenerationHandler) GenerateExplanation(c *fiber.Ctx) error {
	var req dto.ExplanationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewError(domain.CodeInvalidInput, "invalid request body", err)
	}

	explanation, err := h.explanations.Explain(c.UserContext(), domain.ExplanationRequest{
		Topic:      req.Topic,
		Level:      req.Level,
		SourceText: req.FileContent,
		UserID:     req.UserID,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.ExplanationResponse{Explanation: explanation.Text})
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates multiple-choice questions about a topic. Never fails: on any error a fallback quiz is returned with degraded set.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Topic and level"
// @Success 200 {object} dto.QuizResponse
// @Router /generate-quiz [post]
func (h *GenerationHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Unreadable quiz request body", zap.Error(err))
		req = dto.QuizRequest{}
	}

	result := h.quizzes.Generate(c.UserContext(), req.Topic, req.Level)
	if result.Degraded {
		c.Set(HeaderDegraded, "true")
	}
	return c.JSON(dto.QuizResponse{
		Questions: result.Quiz.Questions,
		Degraded:  result.Degraded,
	})
}

// DailyFacts godoc
// @Summary Get daily facts
// @Description Returns five facts for today. Never fails: on any error the fixed fallback facts are returned with degraded set.
// @Tags generation
// @Produce json
// @Success 200 {object} dto.FactsResponse
// @Router /daily-facts [get]
// @Router /daily-facts [post]
func (h *GenerationHandler) DailyFacts(c *fiber.Ctx) error {
	result := h.facts.Daily(c.UserContext())
	if result.Degraded {
		c.Set(HeaderDegraded, "true")
	}
	return c.JSON(dto.FactsResponse{
		Facts:    result.Batch.Facts,
		Degraded: result.Degraded,
	})
}
