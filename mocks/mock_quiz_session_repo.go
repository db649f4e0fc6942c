package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"estudaia/internal/domain"
)

// MockQuizSessionRepo is a mock implementation of port.QuizSessionRepository.
type MockQuizSessionRepo struct {
	mock.Mock
}

func (m *MockQuizSessionRepo) Create(ctx context.Context, session *domain.QuizSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockQuizSessionRepo) List(ctx context.Context, limit int) ([]domain.QuizSession, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizSession), args.Error(1)
}

func (m *MockQuizSessionRepo) Prune(ctx context.Context, keep int) error {
	args := m.Called(ctx, keep)
	return args.Error(0)
}

func (m *MockQuizSessionRepo) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
