package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"estudaia/internal/domain"
)

// MockRecordService is a mock implementation of service.RecordService.
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) Create(ctx context.Context, fileName string, result *domain.AnalysisResult) (int64, error) {
	args := m.Called(ctx, fileName, result)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordService) GetByID(ctx context.Context, id int64) (*domain.AnalysisRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisRecord), args.Error(1)
}

func (m *MockRecordService) List(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnalysisRecord), args.Error(1)
}

func (m *MockRecordService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecordService) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
