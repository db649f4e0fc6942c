package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"estudaia/internal/domain"
)

// MockQuizSessionService is a mock implementation of service.QuizSessionService.
type MockQuizSessionService struct {
	mock.Mock
}

func (m *MockQuizSessionService) Record(ctx context.Context, session *domain.QuizSession) (*domain.QuizSession, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizSession), args.Error(1)
}

func (m *MockQuizSessionService) List(ctx context.Context) ([]domain.QuizSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizSession), args.Error(1)
}

func (m *MockQuizSessionService) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
