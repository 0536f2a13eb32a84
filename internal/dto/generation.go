package dto

import "brainfuel/internal/domain"

// ExplanationRequest is the body of POST /api/generate-explanation
// @Description Request body for generating an explanation
type ExplanationRequest struct {
	Topic       string `json:"topic" example:"photosynthesis"`
	Level       string `json:"level" example:"basic"`
	FileContent string `json:"fileContent,omitempty"`
	UserID      string `json:"userId,omitempty"`
}

// ExplanationResponse carries the generated explanation text
type ExplanationResponse struct {
	Explanation string `json:"explanation"`
}

// QuizRequest is the body of POST /api/generate-quiz
// @Description Request body for generating a quiz
type QuizRequest struct {
	Topic string `json:"topic" example:"volcanoes"`
	Level string `json:"level" example:"intermediate"`
}

// QuizResponse is a generated or fallback quiz. Degraded is set when the
// questions come from the built-in fallback.
// @Description Quiz questions
type QuizResponse struct {
	Questions []domain.Question `json:"questions"`
	Degraded  bool              `json:"degraded,omitempty"`
}

// FactsResponse is a generated, cached or fallback batch of daily facts.
// @Description Daily facts
type FactsResponse struct {
	Facts    []domain.Fact `json:"facts"`
	Degraded bool          `json:"degraded,omitempty"`
}

// UploadResponse describes a stored file
// @Description Stored file path and extracted text
type UploadResponse struct {
	FilePath    string `json:"filePath"`
	TextContent string `json:"textContent"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
