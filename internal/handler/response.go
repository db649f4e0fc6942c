package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estudaia/internal/domain"
	"estudaia/internal/jsonrepair"
	"estudaia/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "MISSING_FILE", "no file provided"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, docx, pptx"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusBadRequest, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusBadRequest, "EXTRACTION_FAILED", "failed to extract text from document"
	case errors.Is(err, domain.ErrTextTooShort):
		return http.StatusBadRequest, "TEXT_TOO_SHORT", "text too short"
	case errors.Is(err, domain.ErrInvalidRecord):
		return http.StatusBadRequest, "INVALID_RECORD", "file_name and result are required"
	case errors.Is(err, domain.ErrInvalidQuizSession):
		return http.StatusBadRequest, "INVALID_QUIZ_SESSION", "invalid quiz session"
	case errors.Is(err, domain.ErrEmptyTerm):
		return http.StatusBadRequest, "EMPTY_TERM", "term is required"
	case errors.Is(err, domain.ErrInvalidConcept):
		return http.StatusBadRequest, "INVALID_CONCEPT", "concept.concept is required"
	case errors.Is(err, domain.ErrBlobDownloadFailed):
		return http.StatusBadGateway, "BLOB_DOWNLOAD_FAILED", "failed to download blob"
	case errors.Is(err, domain.ErrBlobStorageDisabled):
		return http.StatusServiceUnavailable, "BLOB_STORAGE_DISABLED", "blob storage is not configured"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	case errors.Is(err, domain.ErrProviderNotConfigured):
		return http.StatusServiceUnavailable, "PROVIDER_NOT_CONFIGURED", "no AI provider configured; send an apiKey or configure one on the server"
	case errors.Is(err, domain.ErrTranscriptionUnavailable):
		return http.StatusBadRequest, "TRANSCRIPTION_UNAVAILABLE", "pdf transcription requires the google provider"
	case errors.Is(err, domain.ErrGeminiGenerationFailed):
		return http.StatusBadGateway, "GEMINI_GENERATION_FAILED", "failed to generate analysis with Gemini"
	case errors.Is(err, domain.ErrInvalidAIResponseFormat),
		errors.Is(err, jsonrepair.ErrNoJSONFound),
		errors.Is(err, jsonrepair.ErrUnrepairable),
		errors.Is(err, jsonrepair.ErrSchemaMismatch):
		return http.StatusInternalServerError, "AI_ANALYSIS_FAILED", "failed to analyze document with AI"
	case errors.Is(err, domain.ErrProviderRequestFailed):
		return http.StatusBadGateway, "AI_PROVIDER_ERROR", "AI provider request failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// errorDetails exposes the underlying message for AI failures, which carry no
// request secrets.
func errorDetails(code string, err error) string {
	switch code {
	case "AI_ANALYSIS_FAILED", "GEMINI_GENERATION_FAILED", "AI_PROVIDER_ERROR", "TEXT_TOO_SHORT", "BLOB_DOWNLOAD_FAILED":
		return err.Error()
	}
	return ""
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, log *zap.Logger, err error) {
	status, code, msg := MapDomainError(err)
	logServerError(c, log, status, code, err)
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg, Details: errorDetails(code, err)},
	})
}

// AnalysisErrorResponse is the error body of the analyze endpoint.
type AnalysisErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// RespondAnalysisError sends an analyze endpoint error with no details.
func RespondAnalysisError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, AnalysisErrorResponse{Error: msg, Code: code})
}

// HandleAnalysisError is HandleError for the analyze endpoint, whose clients
// read {error, details} at the top level.
func HandleAnalysisError(c *gin.Context, log *zap.Logger, err error) {
	status, code, msg := MapDomainError(err)
	logServerError(c, log, status, code, err)
	c.JSON(status, AnalysisErrorResponse{Error: msg, Code: code, Details: errorDetails(code, err)})
}

func logServerError(c *gin.Context, log *zap.Logger, status int, code string, err error) {
	if status < 500 || log == nil {
		return
	}
	log.Error("request failed",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("code", code),
		zap.Error(err),
	)
}
