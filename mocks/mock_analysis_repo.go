package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"estudaia/internal/domain"
)

// MockAnalysisRepo is a mock implementation of port.AnalysisRepository.
type MockAnalysisRepo struct {
	mock.Mock
}

func (m *MockAnalysisRepo) Create(ctx context.Context, fileName string, result *domain.AnalysisResult) (int64, error) {
	args := m.Called(ctx, fileName, result)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalysisRepo) GetByID(ctx context.Context, id int64) (*domain.AnalysisRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisRecord), args.Error(1)
}

func (m *MockAnalysisRepo) List(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnalysisRecord), args.Error(1)
}

func (m *MockAnalysisRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAnalysisRepo) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
