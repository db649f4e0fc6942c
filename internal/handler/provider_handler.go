package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estudaia/internal/port"
)

// ProviderHandler exposes the configured AI providers and credential checks.
type ProviderHandler struct {
	dispatcher port.AnalysisDispatcher
	log        *zap.Logger
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(dispatcher port.AnalysisDispatcher, log *zap.Logger) *ProviderHandler {
	return &ProviderHandler{dispatcher: dispatcher, log: log}
}

// List handles GET /api/v1/providers
// @Summary List configured providers
// @Description Providers configured on the server, without their keys
// @Tags providers
// @Produce json
// @Success 200 {object} Response{data=[]domain.ProviderStatus}
// @Router /providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	RespondOK(c, h.dispatcher.ConfiguredProviders())
}

// Test handles POST /api/v1/providers/test
// @Summary Test provider credentials
// @Description Checks each given API key against its provider concurrently
// @Tags providers
// @Accept json
// @Produce json
// @Param request body TestProvidersRequest true "Keys per provider"
// @Success 200 {object} Response{data=map[string]domain.ConnectivityResult}
// @Failure 400 {object} ErrorResponseBody "No providers given"
// @Router /providers/test [post]
func (h *ProviderHandler) Test(c *gin.Context) {
	var req TestProvidersRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Providers) == 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "providers is required")
		return
	}

	keys := make(map[string]string, len(req.Providers))
	for name, cred := range req.Providers {
		keys[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(cred.APIKey)
	}
	RespondOK(c, h.dispatcher.CheckConnectivity(c.Request.Context(), keys))
}
