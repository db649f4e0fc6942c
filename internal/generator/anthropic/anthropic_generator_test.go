package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estudaia/internal/domain"
	"estudaia/internal/generator"
	"estudaia/internal/generator/anthropic"
	"estudaia/internal/jsonrepair"
	"estudaia/internal/port"
)

func newTestGenerator(serverURL string) *anthropic.Generator {
	return anthropic.NewGenerator(generator.Settings{
		Provider: domain.ProviderAnthropic,
		APIKey:   "test-anthropic-key",
		Model:    "claude-sonnet-4-20250514",
		BaseURL:  serverURL,
	})
}

func messageResponse(texts ...string) map[string]interface{} {
	content := make([]map[string]interface{}, 0, len(texts))
	for _, t := range texts {
		content = append(content, map[string]interface{}{"type": "text", "text": t})
	}
	return map[string]interface{}{
		"id":          "msg_01",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-sonnet-4-20250514",
		"content":     content,
		"stop_reason": "end_turn",
		"usage":       map[string]interface{}{"input_tokens": 10, "output_tokens": 20},
	}
}

func TestGenerator_Generate_JoinsTextBlocksAndRepairs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-anthropic-key", r.Header.Get("x-api-key"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "claude-sonnet-4-20250514", reqBody["model"])
		assert.Equal(t, float64(4000), reqBody["max_tokens"])
		assert.NotEmpty(t, reqBody["system"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(messageResponse(`Segue: {"summary":"R = V/I, `, `$10\,\Omega$"}`))
	}))
	defer server.Close()

	result, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerateInput{Text: "texto", Filename: "f.pdf"})
	require.NoError(t, err)
	assert.Equal(t, `R = V/I, $10\,\Omega$`, result.Summary)
}

func TestGenerator_Generate_NoJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(messageResponse("não há JSON aqui"))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerateInput{Text: "t"})
	assert.ErrorIs(t, err, jsonrepair.ErrNoJSONFound)
}

func TestGenerator_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerateInput{Text: "t"})
	assert.ErrorIs(t, err, domain.ErrProviderRequestFailed)
}

func TestGenerator_Check_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer server.Close()

	res := newTestGenerator(server.URL).Check(context.Background())
	assert.False(t, res.OK)
	assert.Equal(t, http.StatusUnauthorized, res.Status)
	assert.Equal(t, "invalid x-api-key", res.Message)
}
