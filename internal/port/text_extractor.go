package port

import (
	"context"

	"estudaia/internal/domain"
)

// TextExtractor pulls plain text out of an uploaded document.
type TextExtractor interface {
	Extract(ctx context.Context, fileType domain.FileType, data []byte) (string, error)
}
