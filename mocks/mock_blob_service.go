package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"estudaia/internal/service"
)

// MockBlobService is a mock implementation of service.BlobService.
type MockBlobService struct {
	mock.Mock
}

func (m *MockBlobService) Upload(ctx context.Context, input service.BlobUploadInput) (*service.BlobUploadOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BlobUploadOutput), args.Error(1)
}
