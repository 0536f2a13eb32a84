package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"brainfuel/internal/config"
	"brainfuel/internal/domain"
	"brainfuel/internal/dto"
	"brainfuel/internal/handler"
	"brainfuel/internal/middleware"
	"brainfuel/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

type MockExplanationService struct {
	ExplainFunc func(ctx context.Context, req domain.ExplanationRequest) (*domain.Explanation, error)
}

func (m *MockExplanationService) Explain(ctx context.Context, req domain.ExplanationRequest) (*domain.Explanation, error) {
	if m.ExplainFunc != nil {
		return m.ExplainFunc(ctx, req)
	}
	panic("MockExplanationService.ExplainFunc not implemented")
}

type MockQuizService struct {
	GenerateFunc func(ctx context.Context, topic, level string) service.QuizResult
}

func (m *MockQuizService) Generate(ctx context.Context, topic, level string) service.QuizResult {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, topic, level)
	}
	panic("MockQuizService.GenerateFunc not implemented")
}

type MockFactsService struct {
	DailyFunc func(ctx context.Context) service.FactsResult
}

func (m *MockFactsService) Daily(ctx context.Context) service.FactsResult {
	if m.DailyFunc != nil {
		return m.DailyFunc(ctx)
	}
	panic("MockFactsService.DailyFunc not implemented")
}

type MockUploadService struct {
	UploadFunc func(ctx context.Context, upload *domain.Upload) (*domain.UploadedDocument, error)
}

func (m *MockUploadService) Upload(ctx context.Context, upload *domain.Upload) (*domain.UploadedDocument, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, upload)
	}
	panic("MockUploadService.UploadFunc not implemented")
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string, domain.GenerationParams) (string, error) {
	return "", domain.NewGenerationUnavailableError(nil)
}

type services struct {
	explanation service.ExplanationService
	quiz        service.QuizService
	facts       service.FactsService
	upload      service.UploadService
}

func setupApp(s services) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestLogger())
	handler.RegisterRoutes(app,
		handler.NewGenerationHandler(s.explanation, s.quiz, s.facts),
		handler.NewUploadHandler(s.upload),
	)
	return app
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}

func TestGenerateExplanation(t *testing.T) {
	var got domain.ExplanationRequest
	app := setupApp(services{explanation: &MockExplanationService{
		ExplainFunc: func(_ context.Context, req domain.ExplanationRequest) (*domain.Explanation, error) {
			got = req
			return &domain.Explanation{Text: "Volcanoes vent magma."}, nil
		},
	}})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/generate-explanation",
		`{"topic":"volcanoes","level":"basic","fileContent":"notes","userId":"u1"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"explanation":"Volcanoes vent magma."}`, string(readBody(t, resp)))
	assert.Equal(t, domain.ExplanationRequest{Topic: "volcanoes", Level: "basic", SourceText: "notes", UserID: "u1"}, got)
}

func TestGenerateExplanation_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   domain.ErrorCode
	}{
		{name: "invalid level", body: `{"topic":"x","level":"expert"}`, err: domain.NewInvalidLevelError("expert"), wantStatus: http.StatusBadRequest, wantCode: domain.CodeInvalidLevel},
		{name: "generation unavailable", body: `{"topic":"x","level":"basic"}`, err: domain.NewGenerationUnavailableError(nil), wantStatus: http.StatusServiceUnavailable, wantCode: domain.CodeGenerationUnavailable},
		{name: "unparseable body", body: `{"topic":`, wantStatus: http.StatusBadRequest, wantCode: domain.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupApp(services{explanation: &MockExplanationService{
				ExplainFunc: func(context.Context, domain.ExplanationRequest) (*domain.Explanation, error) {
					return nil, tt.err
				},
			}})

			resp, err := app.Test(jsonRequest(http.MethodPost, "/api/generate-explanation", tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
			assert.Equal(t, string(tt.wantCode), body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestGenerateQuiz(t *testing.T) {
	quiz := &domain.Quiz{Questions: []domain.Question{{
		Prompt:       "Q?",
		Options:      []string{"A) a", "B) b", "C) c", "D) d"},
		CorrectIndex: 2,
		Rationale:    "because",
	}}}
	app := setupApp(services{quiz: &MockQuizService{
		GenerateFunc: func(_ context.Context, topic, level string) service.QuizResult {
			assert.Equal(t, "volcanoes", topic)
			assert.Equal(t, "advanced", level)
			return service.QuizResult{Quiz: quiz}
		},
	}})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/generate-quiz", `{"topic":"volcanoes","level":"advanced"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(handler.HeaderDegraded))
	assert.JSONEq(t,
		`{"questions":[{"question":"Q?","options":["A) a","B) b","C) c","D) d"],"correct":2,"explanation":"because"}]}`,
		string(readBody(t, resp)))
}

func TestGenerateQuiz_FallbackOnBadBody(t *testing.T) {
	app := setupApp(services{quiz: service.NewQuizService(failingGenerator{})})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/generate-quiz", `not json`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get(handler.HeaderDegraded))

	var body dto.QuizResponse
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.True(t, body.Degraded)
	require.Len(t, body.Questions, 1)
	assert.Equal(t, "What is the main concept behind this topic?", body.Questions[0].Prompt)
}

func TestGenerateQuiz_FallbackKeepsTopic(t *testing.T) {
	app := setupApp(services{quiz: service.NewQuizService(failingGenerator{})})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/generate-quiz", `{"topic":"tides","level":"basic"}`))
	require.NoError(t, err)

	var body dto.QuizResponse
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.True(t, body.Degraded)
	assert.Equal(t, "What is the main concept behind tides?", body.Questions[0].Prompt)
}

func TestDailyFacts_FallbackIsStable(t *testing.T) {
	app := setupApp(services{facts: service.NewFactsService(failingGenerator{}, nil, config.FactsConfig{})})

	var bodies [][]byte
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		resp, err := app.Test(httptest.NewRequest(method, "/api/daily-facts", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "true", resp.Header.Get(handler.HeaderDegraded))
		bodies = append(bodies, readBody(t, resp))
	}

	assert.Equal(t, bodies[0], bodies[1])

	var body dto.FactsResponse
	require.NoError(t, json.Unmarshal(bodies[0], &body))
	require.Len(t, body.Facts, domain.FactBatchSize)
	assert.Equal(t, "Octopus Intelligence", body.Facts[0].Title)
}

func TestDailyFacts_Generated(t *testing.T) {
	batch := service.FallbackFacts()
	batch.Facts[0].Title = "Fresh"
	app := setupApp(services{facts: &MockFactsService{
		DailyFunc: func(context.Context) service.FactsResult {
			return service.FactsResult{Batch: batch}
		},
	}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/daily-facts", nil))
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(handler.HeaderDegraded))

	var body map[string]any
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	_, hasDegraded := body["degraded"]
	assert.False(t, hasDegraded)
}

func multipartRequest(t *testing.T, filename, contentType, content, userID string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	if userID != "" {
		require.NoError(t, w.WriteField("userId", userID))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-file", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUploadFile(t *testing.T) {
	var got *domain.Upload
	app := setupApp(services{upload: &MockUploadService{
		UploadFunc: func(_ context.Context, upload *domain.Upload) (*domain.UploadedDocument, error) {
			got = upload
			return &domain.UploadedDocument{StoragePath: "u1/1.txt", ExtractedText: "hello"}, nil
		},
	}})

	resp, err := app.Test(multipartRequest(t, "notes.txt", "text/plain", "hello", "u1"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"filePath":"u1/1.txt","textContent":"hello"}`, string(readBody(t, resp)))
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.OwnerID)
	assert.Equal(t, "notes.txt", got.Filename)
	assert.Equal(t, "text/plain", got.ContentType)
	assert.Equal(t, []byte("hello"), got.Data)
}

func TestUploadFile_MissingFile(t *testing.T) {
	called := false
	app := setupApp(services{upload: &MockUploadService{
		UploadFunc: func(context.Context, *domain.Upload) (*domain.UploadedDocument, error) {
			called = true
			return nil, nil
		},
	}})

	resp, err := app.Test(multipartRequest(t, "", "", "", "u1"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Equal(t, string(domain.CodeMissingFile), body.Code)
	assert.False(t, called)
}

func TestUploadFile_StorageFailure(t *testing.T) {
	app := setupApp(services{upload: &MockUploadService{
		UploadFunc: func(context.Context, *domain.Upload) (*domain.UploadedDocument, error) {
			return nil, domain.NewStorageWriteError("anonymous/1.pdf", nil)
		},
	}})

	resp, err := app.Test(multipartRequest(t, "a.pdf", "application/pdf", "%PDF", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := setupApp(services{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(readBody(t, resp)))
}
