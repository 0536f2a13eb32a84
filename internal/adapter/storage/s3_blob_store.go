package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	appconfig "brainfuel/internal/config"
	"brainfuel/internal/domain"
	"brainfuel/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

const uploadCacheControl = "max-age=3600"

var errStoreNotConfigured = errors.New("storage credentials not configured")

// S3BlobStore stores uploaded files in an S3-compatible bucket.
type S3BlobStore struct {
	client *s3.Client
	bucket string
}

// NewS3BlobStore builds a store for cfg. When credentials are missing it
// returns a store without a client, so every Put fails with
// STORAGE_WRITE_FAILURE instead of the service refusing to start.
func NewS3BlobStore(ctx context.Context, cfg appconfig.StorageConfig) (*S3BlobStore, error) {
	l := logger.Get()
	store := &S3BlobStore{bucket: cfg.Bucket}

	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		l.Warn("Storage credentials not configured; uploads will fail",
			zap.String("bucket", cfg.Bucket))
		return store, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage SDK config: %w", err)
	}

	store.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	l.Info("Storage client initialized",
		zap.String("bucket", cfg.Bucket),
		zap.String("endpoint", cfg.Endpoint))
	return store, nil
}

// Put writes body under key. Existing objects are never overwritten.
func (s *S3BlobStore) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if s == nil || s.client == nil {
		return "", domain.NewStorageWriteError(key, errStoreNotConfigured)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(uploadCacheControl),
		IfNoneMatch:   aws.String("*"),
	})
	if err != nil {
		logger.Get().Error("Failed to store uploaded file",
			zap.String("bucket", s.bucket),
			zap.String("key", key),
			zap.Error(err))
		return "", domain.NewStorageWriteError(key, err)
	}

	logger.Get().Debug("Stored uploaded file",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("size", len(body)))
	return key, nil
}

var _ domain.BlobStore = (*S3BlobStore)(nil)
