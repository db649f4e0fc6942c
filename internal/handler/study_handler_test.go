package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"estudaia/internal/domain"
	"estudaia/internal/handler"
	"estudaia/internal/port"
	"estudaia/mocks"
)

func TestStudyHandler_Explain(t *testing.T) {
	d := new(mocks.MockAnalysisDispatcher)
	h := handler.NewStudyHandler(d, zap.NewNop())
	d.On("Explain", mock.Anything, "Lei de Ohm", port.ProviderOptions{Provider: "google", APIKey: "k"}).
		Return(&domain.Explanation{Explanation: "V = R·I"}, nil)

	c, w := jsonContext(http.MethodPost, "/api/v1/explain", map[string]string{"term": " Lei de Ohm ", "provider": "google", "apiKey": "k"})
	h.Explain(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"explanation":"V = R·I"}`, string(decode(t, w).Data))
}

func TestStudyHandler_Explain_EmptyTerm(t *testing.T) {
	d := new(mocks.MockAnalysisDispatcher)
	h := handler.NewStudyHandler(d, zap.NewNop())
	d.On("Explain", mock.Anything, "", mock.Anything).Return(nil, domain.ErrEmptyTerm)

	c, w := jsonContext(http.MethodPost, "/api/v1/explain", map[string]string{"term": "   "})
	h.Explain(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudyHandler_NormalizeConcept(t *testing.T) {
	d := new(mocks.MockAnalysisDispatcher)
	h := handler.NewStudyHandler(d, zap.NewNop())
	in := map[string]any{"concept": "Resistência"}
	d.On("NormalizeConcept", mock.Anything, in, mock.Anything).
		Return(map[string]any{"concept": "Resistência", "formula": "$R = V/I$"}, nil)

	c, w := jsonContext(http.MethodPost, "/api/v1/concepts/normalize", map[string]any{"concept": in})
	h.NormalizeConcept(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), "formula")
}

func TestStudyHandler_NormalizeConcept_Invalid(t *testing.T) {
	d := new(mocks.MockAnalysisDispatcher)
	h := handler.NewStudyHandler(d, zap.NewNop())
	d.On("NormalizeConcept", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidConcept)

	c, w := jsonContext(http.MethodPost, "/api/v1/concepts/normalize", map[string]any{"concept": map[string]any{}})
	h.NormalizeConcept(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_CONCEPT", decode(t, w).Error.Code)
}
