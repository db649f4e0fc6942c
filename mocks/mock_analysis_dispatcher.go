package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"estudaia/internal/domain"
	"estudaia/internal/port"
)

// MockAnalysisDispatcher is a mock implementation of port.AnalysisDispatcher.
type MockAnalysisDispatcher struct {
	mock.Mock
}

func (m *MockAnalysisDispatcher) Generate(ctx context.Context, input port.GenerateInput, opts port.ProviderOptions) (*domain.AnalysisResult, port.Selection, error) {
	args := m.Called(ctx, input, opts)
	if args.Get(0) == nil {
		return nil, args.Get(1).(port.Selection), args.Error(2)
	}
	return args.Get(0).(*domain.AnalysisResult), args.Get(1).(port.Selection), args.Error(2)
}

func (m *MockAnalysisDispatcher) Explain(ctx context.Context, term string, opts port.ProviderOptions) (*domain.Explanation, error) {
	args := m.Called(ctx, term, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Explanation), args.Error(1)
}

func (m *MockAnalysisDispatcher) NormalizeConcept(ctx context.Context, concept map[string]any, opts port.ProviderOptions) (map[string]any, error) {
	args := m.Called(ctx, concept, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAnalysisDispatcher) TranscribePDF(ctx context.Context, data []byte, opts port.ProviderOptions) (string, error) {
	args := m.Called(ctx, data, opts)
	return args.String(0), args.Error(1)
}

func (m *MockAnalysisDispatcher) ConfiguredProviders() []domain.ProviderStatus {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ProviderStatus)
}

func (m *MockAnalysisDispatcher) CheckConnectivity(ctx context.Context, keys map[string]string) map[string]domain.ConnectivityResult {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]domain.ConnectivityResult)
}
