package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"estudaia/internal/domain"
	"estudaia/internal/handler"
	"estudaia/internal/jsonrepair"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrMissingFile, http.StatusBadRequest, "MISSING_FILE"},
		{domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{domain.ErrFileTooLarge, http.StatusBadRequest, "FILE_TOO_LARGE"},
		{fmt.Errorf("%w: pdf", domain.ErrExtractionFailed), http.StatusBadRequest, "EXTRACTION_FAILED"},
		{fmt.Errorf("%w: 10 characters extracted", domain.ErrTextTooShort), http.StatusBadRequest, "TEXT_TOO_SHORT"},
		{domain.ErrBlobDownloadFailed, http.StatusBadGateway, "BLOB_DOWNLOAD_FAILED"},
		{domain.ErrBlobStorageDisabled, http.StatusServiceUnavailable, "BLOB_STORAGE_DISABLED"},
		{domain.ErrProviderNotConfigured, http.StatusServiceUnavailable, "PROVIDER_NOT_CONFIGURED"},
		{domain.ErrInvalidAIResponseFormat, http.StatusInternalServerError, "AI_ANALYSIS_FAILED"},
		{jsonrepair.ErrNoJSONFound, http.StatusInternalServerError, "AI_ANALYSIS_FAILED"},
		{fmt.Errorf("%w: bad token", jsonrepair.ErrUnrepairable), http.StatusInternalServerError, "AI_ANALYSIS_FAILED"},
		{fmt.Errorf("%w: conceptMap", jsonrepair.ErrSchemaMismatch), http.StatusInternalServerError, "AI_ANALYSIS_FAILED"},
		{fmt.Errorf("%w: quota", domain.ErrGeminiGenerationFailed), http.StatusBadGateway, "GEMINI_GENERATION_FAILED"},
		{domain.ErrProviderRequestFailed, http.StatusBadGateway, "AI_PROVIDER_ERROR"},
		{domain.ErrEmptyTerm, http.StatusBadRequest, "EMPTY_TERM"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestHandleError_DetailsAndLogging(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	c, w := newContext(http.MethodGet, "/", nil)
	handler.HandleError(c, zap.New(core), fmt.Errorf("%w: model quota exceeded", domain.ErrGeminiGenerationFailed))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error.Message, "Gemini")
	assert.Contains(t, env.Error.Details, "model quota exceeded")
	assert.Equal(t, 1, logs.Len())

	c, w = newContext(http.MethodGet, "/", nil)
	handler.HandleError(c, zap.New(core), domain.ErrNotFound)
	env = decode(t, w)
	assert.Empty(t, env.Error.Details)
	assert.Equal(t, 1, logs.Len(), "4xx errors are not logged")
}

func TestHandleAnalysisError_TopLevelErrorAndDetails(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	c, w := newContext(http.MethodPost, "/api/v1/analyze", nil)
	handler.HandleAnalysisError(c, zap.New(core), fmt.Errorf("%w: bad token", jsonrepair.ErrUnrepairable))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"failed to analyze document with AI","code":"AI_ANALYSIS_FAILED","details":"unrepairable JSON response: bad token"}`, w.Body.String())
	assert.Equal(t, 1, logs.Len())

	c, w = newContext(http.MethodPost, "/api/v1/analyze", nil)
	handler.HandleAnalysisError(c, zap.New(core), domain.ErrUnsupportedFileType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "details")
}
