package port

import (
	"context"
	"io"
)

// UploadInput describes a document written to the blob store.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput is what the store reports after a write.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage holds pre-uploaded documents until they are analyzed.
// Download feeds the analysis pipeline when a request names a blob key.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
