package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"estudaia/internal/export"
	"estudaia/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, id int64, format export.Format, kind export.Kind) (*service.ExportFile, error) {
	args := m.Called(ctx, id, format, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}
