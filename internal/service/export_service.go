package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"estudaia/internal/export"
	"estudaia/internal/port"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportService renders the study material of a stored analysis.
type ExportService interface {
	Export(ctx context.Context, id int64, format export.Format, kind export.Kind) (*ExportFile, error)
}

type exportService struct {
	records port.AnalysisRepository
}

// NewExportService creates a new ExportService implementation.
func NewExportService(records port.AnalysisRepository) ExportService {
	return &exportService{records: records}
}

func (s *exportService) Export(ctx context.Context, id int64, format export.Format, kind export.Kind) (*ExportFile, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	base := exportBaseName(rec.FileName)
	var buf bytes.Buffer
	switch format {
	case export.FormatXLSX:
		if err := export.WriteXLSX(&buf, &rec.Result); err != nil {
			return nil, fmt.Errorf("exporting xlsx: %w", err)
		}
		return &ExportFile{Name: base + ".xlsx", ContentType: contentTypeXLSX, Data: buf.Bytes()}, nil
	default:
		if err := export.WriteCSV(&buf, &rec.Result, kind); err != nil {
			return nil, fmt.Errorf("exporting csv: %w", err)
		}
		return &ExportFile{Name: fmt.Sprintf("%s-%s.csv", base, kind), ContentType: contentTypeCSV, Data: buf.Bytes()}, nil
	}
}

// exportBaseName strips the document extension and characters unsafe in a
// Content-Disposition filename.
func exportBaseName(fileName string) string {
	name := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	name = strings.Map(func(r rune) rune {
		switch r {
		case '"', '\\', '/', '\r', '\n':
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." {
		return "estudaia"
	}
	return name
}
