package generator

import (
	"encoding/json"

	"estudaia/internal/domain"
)

// APIError is a non-2xx answer from a provider HTTP API.
type APIError struct {
	Provider   domain.ProviderName
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError builds an APIError using the provider's error.message when the
// body carries one, else the fallback text.
func NewAPIError(provider domain.ProviderName, status int, body []byte, fallback string) *APIError {
	msg := ErrorMessage(body)
	if msg == "" {
		msg = fallback
	}
	return &APIError{Provider: provider, StatusCode: status, Message: msg}
}

// ErrorMessage extracts error.message from a provider error body.
func ErrorMessage(body []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error.Message
}
