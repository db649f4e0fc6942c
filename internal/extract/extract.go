// Package extract pulls plain text out of PDF, DOCX and PPTX documents.
package extract

import (
	"context"
	"fmt"
	"strings"

	"estudaia/internal/domain"
	"estudaia/internal/port"
)

// Func extracts text from the raw bytes of one document format.
type Func func(data []byte) (string, error)

// Registry dispatches extraction by file type.
type Registry struct {
	extractors map[domain.FileType]Func
}

var _ port.TextExtractor = (*Registry)(nil)

// New returns a registry with the PDF, DOCX and PPTX extractors.
func New() *Registry {
	return &Registry{extractors: map[domain.FileType]Func{
		domain.FileTypePDF:  PDF,
		domain.FileTypeDOCX: DOCX,
		domain.FileTypePPTX: PPTX,
	}}
}

// Extract returns the trimmed text of data. Every failure wraps
// domain.ErrExtractionFailed.
func (r *Registry) Extract(ctx context.Context, fileType domain.FileType, data []byte) (string, error) {
	fn, ok := r.extractors[fileType]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, fileType)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := fn(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrExtractionFailed, fileType, err)
	}
	return strings.TrimSpace(text), nil
}
