package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estudaia/internal/port"
)

// StudyHandler handles the study helper endpoints backed by an AI provider.
type StudyHandler struct {
	dispatcher port.AnalysisDispatcher
	log        *zap.Logger
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(dispatcher port.AnalysisDispatcher, log *zap.Logger) *StudyHandler {
	return &StudyHandler{dispatcher: dispatcher, log: log}
}

// Explain handles POST /api/v1/explain
// @Summary Explain a term
// @Description Short didactic explanation of a technical term, Gemini by default
// @Tags study
// @Accept json
// @Produce json
// @Param request body ExplainRequest true "Term and provider options"
// @Success 200 {object} Response{data=domain.Explanation}
// @Failure 400 {object} ErrorResponseBody "Empty term"
// @Router /explain [post]
func (h *StudyHandler) Explain(c *gin.Context) {
	var req ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	explanation, err := h.dispatcher.Explain(c.Request.Context(), strings.TrimSpace(req.Term), req.options())
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, explanation)
}

// NormalizeConcept handles POST /api/v1/concepts/normalize
// @Summary Normalize a key concept
// @Description Rewrite a key concept into the canonical shape with formula, example and values
// @Tags study
// @Accept json
// @Produce json
// @Param request body NormalizeConceptRequest true "Concept and provider options"
// @Success 200 {object} Response{data=domain.KeyConcept}
// @Failure 400 {object} ErrorResponseBody "Missing concept"
// @Router /concepts/normalize [post]
func (h *StudyHandler) NormalizeConcept(c *gin.Context) {
	var req NormalizeConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	concept, err := h.dispatcher.NormalizeConcept(c.Request.Context(), req.Concept, req.options())
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, concept)
}

func (r ProviderRequest) options() port.ProviderOptions {
	return port.ProviderOptions{
		Provider: strings.TrimSpace(r.Provider),
		APIKey:   strings.TrimSpace(r.APIKey),
		Model:    strings.TrimSpace(r.Model),
	}
}
