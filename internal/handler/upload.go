package handler

import (
	"fmt"
	"io"

	"brainfuel/internal/domain"
	"brainfuel/internal/dto"
	"brainfuel/internal/logger"
	"brainfuel/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UploadHandler handles document uploads
type UploadHandler struct {
	service service.UploadService
}

func NewUploadHandler(service service.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// UploadFile godoc
// @Summary Upload a document
// @Description Stores a file and returns its storage path with any extracted text (plain text only, at most 5000 characters)
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document"
// @Param userId formData string false "Owner id"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /upload-file [post]
func (h *UploadHandler) UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Get().Debug("No file in upload request", zap.Error(err))
		return domain.NewMissingFileError()
	}

	f, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("failed to open uploaded file", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to read uploaded file %s", fileHeader.Filename), err)
	}

	doc, err := h.service.Upload(c.UserContext(), &domain.Upload{
		OwnerID:     c.FormValue("userId"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.UploadResponse{
		FilePath:    doc.StoragePath,
		TextContent: doc.ExtractedText,
	})
}
