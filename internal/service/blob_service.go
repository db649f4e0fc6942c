package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"estudaia/internal/config"
	"estudaia/internal/domain"
	"estudaia/internal/port"
)

// BlobUploadInput is the DTO for a direct document upload.
type BlobUploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// BlobUploadOutput identifies the stored document for a later analysis.
type BlobUploadOutput struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
}

// BlobService defines the pre-upload contract for large documents.
type BlobService interface {
	Upload(ctx context.Context, input BlobUploadInput) (*BlobUploadOutput, error)
}

type blobService struct {
	storage   port.ObjectStorage
	s3Cfg     *config.S3Config
	uploadCfg *config.UploadConfig
	log       *zap.Logger
}

// NewBlobService creates a new BlobService. A nil storage means blob storage is disabled.
func NewBlobService(storage port.ObjectStorage, s3Cfg *config.S3Config, uploadCfg *config.UploadConfig, log *zap.Logger) BlobService {
	if log == nil {
		log = zap.NewNop()
	}
	return &blobService{storage: storage, s3Cfg: s3Cfg, uploadCfg: uploadCfg, log: log.Named("blob")}
}

func (s *blobService) Upload(ctx context.Context, input BlobUploadInput) (*BlobUploadOutput, error) {
	if s.storage == nil {
		return nil, domain.ErrBlobStorageDisabled
	}
	if input.Body == nil {
		return nil, domain.ErrMissingFile
	}
	if input.Size > s.uploadCfg.MaxBytes() {
		return nil, domain.ErrFileTooLarge
	}

	fileType, ok := domain.ResolveFileType(input.FileName, input.ContentType)
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	contentType := domain.AllowedFileTypes[fileType]
	if ct := strings.ToLower(strings.TrimSpace(input.ContentType)); ct != "" && ct != "application/octet-stream" {
		if _, allowed := domain.AllowedContentTypes[ct]; !allowed {
			return nil, domain.ErrUnsupportedFileType
		}
	}

	key := fmt.Sprintf("%s.%s", uuid.New(), fileType)
	if prefix := strings.Trim(s.s3Cfg.KeyPrefix, "/"); prefix != "" {
		key = prefix + "/" + key
	}

	s.log.Info("uploading blob",
		zap.String("filename", filepath.Base(input.FileName)),
		zap.String("key", key),
		zap.Int64("size", input.Size),
	)
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3Cfg.Bucket,
		Key:         key,
		Body:        input.Body,
		ContentType: contentType,
		Size:        input.Size,
	}); err != nil {
		s.log.Error("blob upload failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	url, err := s.storage.GetPresignedURL(ctx, s.s3Cfg.Bucket, key, s.s3Cfg.PresignExpiry)
	if err != nil {
		// an object nobody can fetch is garbage
		if delErr := s.storage.Delete(ctx, s.s3Cfg.Bucket, key); delErr != nil {
			s.log.Warn("removing unreachable blob failed", zap.String("key", key), zap.Error(delErr))
		}
		return nil, fmt.Errorf("presigning blob url: %w", err)
	}
	return &BlobUploadOutput{Key: key, URL: url, ContentType: contentType}, nil
}
