package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"estudaia/internal/domain"
	"estudaia/internal/handler"
	"estudaia/mocks"
)

func TestAnalysisHandler_List(t *testing.T) {
	svc := new(mocks.MockRecordService)
	h := handler.NewAnalysisHandler(svc, zap.NewNop())
	svc.On("List", mock.Anything, 10).Return([]domain.AnalysisRecord{{ID: 2, FileName: "b.pdf"}, {ID: 1, FileName: "a.pdf"}}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/analyses?limit=10", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"file_name":"b.pdf"`)
}

func TestAnalysisHandler_GetByID(t *testing.T) {
	svc := new(mocks.MockRecordService)
	h := handler.NewAnalysisHandler(svc, zap.NewNop())
	svc.On("GetByID", mock.Anything, int64(1)).Return(&domain.AnalysisRecord{ID: 1}, nil)
	svc.On("GetByID", mock.Anything, int64(2)).Return(nil, domain.ErrNotFound)

	c, w := newContext(http.MethodGet, "/api/v1/analyses/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	h.GetByID(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodGet, "/api/v1/analyses/2", nil)
	c.Params = gin.Params{{Key: "id", Value: "2"}}
	h.GetByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = newContext(http.MethodGet, "/api/v1/analyses/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	h.GetByID(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalysisHandler_Create(t *testing.T) {
	svc := new(mocks.MockRecordService)
	h := handler.NewAnalysisHandler(svc, zap.NewNop())
	svc.On("Create", mock.Anything, "a.pdf", mock.AnythingOfType("*domain.AnalysisResult")).Return(int64(5), nil)

	c, w := jsonContext(http.MethodPost, "/api/v1/analyses", map[string]any{
		"file_name": "a.pdf",
		"result":    map[string]any{"summary": "s"},
	})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":5}`, string(decode(t, w).Data))
}

func TestAnalysisHandler_Create_MissingFields(t *testing.T) {
	svc := new(mocks.MockRecordService)
	h := handler.NewAnalysisHandler(svc, zap.NewNop())

	c, w := jsonContext(http.MethodPost, "/api/v1/analyses", map[string]any{"file_name": "a.pdf"})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalysisHandler_DeleteAndClear(t *testing.T) {
	svc := new(mocks.MockRecordService)
	h := handler.NewAnalysisHandler(svc, zap.NewNop())
	svc.On("Delete", mock.Anything, int64(3)).Return(domain.ErrNotFound)
	svc.On("Clear", mock.Anything).Return(nil)

	c, w := newContext(http.MethodDelete, "/api/v1/analyses/3", nil)
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	h.Delete(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = newContext(http.MethodDelete, "/api/v1/analyses", nil)
	h.Clear(c)
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
