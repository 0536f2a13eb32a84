package service

import (
	"context"
	"fmt"
	"mime"
	"strings"
	"time"

	"brainfuel/internal/domain"
	"brainfuel/internal/logger"
	"brainfuel/internal/util"

	"go.uber.org/zap"
)

const (
	// ExtractedTextLimit caps the text returned for an uploaded file.
	ExtractedTextLimit = 5000

	anonymousOwner   = "anonymous"
	defaultExtension = "bin"

	mimeText = "text/plain"
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	pdfPlaceholder  = "PDF content extraction would be implemented here with a proper PDF parsing library."
	docxPlaceholder = "DOCX content extraction would be implemented here with a proper document parsing library."
)

// UploadService stores user files and extracts what text it can.
type UploadService interface {
	Upload(ctx context.Context, upload *domain.Upload) (*domain.UploadedDocument, error)
}

type uploadService struct {
	store domain.BlobStore
	now   func() time.Time
}

func NewUploadService(store domain.BlobStore) UploadService {
	return &uploadService{store: store, now: time.Now}
}

// Upload implements UploadService
func (s *uploadService) Upload(ctx context.Context, upload *domain.Upload) (*domain.UploadedDocument, error) {
	if upload == nil {
		return nil, domain.NewMissingFileError()
	}

	key := StorageKey(upload.OwnerID, upload.Filename, s.now())
	logger.Get().Info("Uploading file",
		zap.String("filename", upload.Filename),
		zap.String("content_type", upload.ContentType),
		zap.Int("size", len(upload.Data)),
		zap.String("key", key))

	path, err := s.store.Put(ctx, key, upload.Data, upload.ContentType)
	if err != nil {
		if domain.CodeOf(err) != domain.CodeStorageWriteFailure {
			err = domain.NewStorageWriteError(key, err)
		}
		return nil, err
	}

	return &domain.UploadedDocument{
		StoragePath:   path,
		ExtractedText: util.TruncateRunes(ExtractText(upload.ContentType, upload.Data), ExtractedTextLimit),
	}, nil
}

// StorageKey builds "{owner|anonymous}/{unixMillis}.{ext}".
func StorageKey(ownerID, filename string, at time.Time) string {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		owner = anonymousOwner
	}
	return fmt.Sprintf("%s/%d.%s", owner, at.UnixMilli(), extension(filename))
}

func extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 || idx == len(filename)-1 {
		return defaultExtension
	}
	return filename[idx+1:]
}

// ExtractText returns the text content of a file by MIME type. Only plain
// text is read; PDF and DOCX yield fixed placeholders and anything else
// yields "".
func ExtractText(contentType string, data []byte) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}

	switch mediaType {
	case mimeText:
		return string(data)
	case mimePDF:
		// TODO: replace with a real PDF text extractor.
		return pdfPlaceholder
	case mimeDOCX:
		return docxPlaceholder
	default:
		return ""
	}
}
