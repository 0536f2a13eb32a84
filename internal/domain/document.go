package domain

import "context"

// Upload is a single file received from a client.
type Upload struct {
	OwnerID     string
	Filename    string
	ContentType string
	Data        []byte
}

// UploadedDocument is what the ingestion handler returns once a file is stored.
type UploadedDocument struct {
	StoragePath   string `json:"filePath"`
	ExtractedText string `json:"textContent"`
}

// BlobStore persists opaque file bodies under a key.
type BlobStore interface {
	// Put stores body under key without overwriting an existing object and
	// returns the stored path.
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}
