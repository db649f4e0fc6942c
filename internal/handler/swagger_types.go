package handler

import "estudaia/internal/domain"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ProviderRequest carries the optional per-request provider override.
type ProviderRequest struct {
	Provider string `json:"provider" example:"google"`
	APIKey   string `json:"apiKey" example:"AIza..."`
	Model    string `json:"model" example:"gemini-flash-latest"`
}

// ExplainRequest represents the explain term request body.
type ExplainRequest struct {
	ProviderRequest
	Term string `json:"term" example:"Lei de Ohm"`
}

// NormalizeConceptRequest represents the normalize concept request body.
type NormalizeConceptRequest struct {
	ProviderRequest
	Concept map[string]any `json:"concept" swaggertype:"object"`
}

// CreateAnalysisRequest represents the save analysis request body.
type CreateAnalysisRequest struct {
	FileName string                 `json:"file_name" binding:"required" example:"aula-3.pdf"`
	Result   *domain.AnalysisResult `json:"result" binding:"required"`
}

// ProviderCredential is one key to check.
type ProviderCredential struct {
	APIKey string `json:"apiKey" example:"sk-..."`
}

// TestProvidersRequest represents the provider connectivity test body.
type TestProvidersRequest struct {
	Providers map[string]ProviderCredential `json:"providers"`
}

// --- Response Types ---

// CreatedRecordResponse is returned when an analysis is saved.
type CreatedRecordResponse struct {
	ID int64 `json:"id" example:"1"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"analysis deleted"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
