package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estudaia/internal/config"
	"estudaia/internal/domain"
	"estudaia/internal/service"
	"estudaia/mocks"
)

func TestRecordService_Create(t *testing.T) {
	repo := new(mocks.MockAnalysisRepo)
	svc := service.NewRecordService(repo, &config.RecordsConfig{DefaultLimit: 50})
	result := &domain.AnalysisResult{Summary: "s"}

	repo.On("Create", mock.Anything, "a.pdf", result).Return(int64(3), nil)

	id, err := svc.Create(context.Background(), "a.pdf", result)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestRecordService_Create_Invalid(t *testing.T) {
	repo := new(mocks.MockAnalysisRepo)
	svc := service.NewRecordService(repo, &config.RecordsConfig{DefaultLimit: 50})

	_, err := svc.Create(context.Background(), "  ", &domain.AnalysisResult{})
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)

	_, err = svc.Create(context.Background(), "a.pdf", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordService_List_DefaultLimit(t *testing.T) {
	repo := new(mocks.MockAnalysisRepo)
	svc := service.NewRecordService(repo, &config.RecordsConfig{DefaultLimit: 25})

	repo.On("List", mock.Anything, 25).Return([]domain.AnalysisRecord{{ID: 1}}, nil)
	repo.On("List", mock.Anything, 5).Return([]domain.AnalysisRecord{}, nil)

	recs, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	_, err = svc.List(context.Background(), 5)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRecordService_Delete(t *testing.T) {
	repo := new(mocks.MockAnalysisRepo)
	svc := service.NewRecordService(repo, &config.RecordsConfig{})

	repo.On("Delete", mock.Anything, int64(1)).Return(true, nil)
	repo.On("Delete", mock.Anything, int64(2)).Return(false, nil)

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), domain.ErrNotFound)
}
