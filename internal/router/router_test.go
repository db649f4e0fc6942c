package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"estudaia/internal/config"
	"estudaia/internal/domain"
	"estudaia/internal/handler"
	"estudaia/internal/router"
	"estudaia/mocks"
)

func newEngine(t *testing.T) (*gin.Engine, *mocks.MockAnalysisDispatcher, *mocks.MockRecordService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	dispatcher := new(mocks.MockAnalysisDispatcher)
	records := new(mocks.MockRecordService)

	h := router.Handlers{
		Analyze:  handler.NewAnalyzeHandler(new(mocks.MockAnalysisService), &config.UploadConfig{MaxFileSizeMB: 1}, log),
		Analysis: handler.NewAnalysisHandler(records, log),
		Export:   handler.NewExportHandler(new(mocks.MockExportService), log),
		Study:    handler.NewStudyHandler(dispatcher, log),
		Blob:     handler.NewBlobHandler(new(mocks.MockBlobService), log),
		Provider: handler.NewProviderHandler(dispatcher, log),
		Quiz:     handler.NewQuizSessionHandler(new(mocks.MockQuizSessionService), log),
		Health:   handler.NewHealthHandler(nil),
	}
	return router.Setup(h, nil, 1<<20, log), dispatcher, records
}

func TestSetup_Routes(t *testing.T) {
	r, dispatcher, records := newEngine(t)
	dispatcher.On("ConfiguredProviders").Return([]domain.ProviderStatus{})
	records.On("GetByID", mock.Anything, int64(12)).Return(nil, domain.ErrNotFound)

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/api/v1/providers", http.StatusOK},
		{http.MethodGet, "/api/v1/analyses/12", http.StatusNotFound},
		{http.MethodGet, "/api/v1/analyses/12/export?format=doc", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSetup_SetsRequestID(t *testing.T) {
	r, _, _ := newEngine(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
