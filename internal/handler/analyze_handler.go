package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estudaia/internal/config"
	"estudaia/internal/domain"
	"estudaia/internal/service"
)

// AnalyzeHandler handles the document analysis endpoint.
type AnalyzeHandler struct {
	analysisService service.AnalysisService
	uploadCfg       *config.UploadConfig
	log             *zap.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analysisService service.AnalysisService, uploadCfg *config.UploadConfig, log *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{analysisService: analysisService, uploadCfg: uploadCfg, log: log}
}

// Analyze handles POST /api/v1/analyze
// @Summary Analyze a document
// @Description Extract the text of a PDF, DOCX or PPTX and generate a study analysis with an AI provider
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "Document (PDF, DOCX or PPTX)"
// @Param blobUrl formData string false "URL of a previously uploaded document"
// @Param blobKey formData string false "Storage key of a previously uploaded document"
// @Param filename formData string false "File name override"
// @Param contentType formData string false "Content type override"
// @Param provider formData string false "openai, anthropic, google or grok"
// @Param apiKey formData string false "Provider API key (never stored)"
// @Param model formData string false "Provider model"
// @Param save formData bool false "Persist the result in the history"
// @Success 200 {object} service.AnalyzeOutput
// @Failure 400 {object} AnalysisErrorResponse "Missing file, unsupported type or text too short"
// @Failure 500 {object} AnalysisErrorResponse "AI response could not be parsed"
// @Failure 502 {object} AnalysisErrorResponse "Provider or blob download failure"
// @Failure 503 {object} AnalysisErrorResponse "No provider configured"
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	input := service.AnalyzeInput{
		FileName:    strings.TrimSpace(c.PostForm("filename")),
		ContentType: strings.TrimSpace(c.PostForm("contentType")),
		BlobURL:     strings.TrimSpace(c.PostForm("blobUrl")),
		BlobKey:     strings.TrimSpace(c.PostForm("blobKey")),
		Provider:    strings.TrimSpace(c.PostForm("provider")),
		APIKey:      strings.TrimSpace(c.PostForm("apiKey")),
		Model:       strings.TrimSpace(c.PostForm("model")),
	}
	if raw := c.PostForm("save"); raw != "" {
		save, err := strconv.ParseBool(raw)
		if err != nil {
			RespondAnalysisError(c, http.StatusBadRequest, "INVALID_SAVE", "save must be a boolean")
			return
		}
		input.Save = save
	}

	file, header, err := c.Request.FormFile("file")
	switch {
	case err == nil:
		defer func() { _ = file.Close() }()
		if header.Size > h.uploadCfg.MaxBytes() {
			HandleAnalysisError(c, h.log, domain.ErrFileTooLarge)
			return
		}
		data, readErr := io.ReadAll(io.LimitReader(file, h.uploadCfg.MaxBytes()+1))
		if readErr != nil {
			RespondAnalysisError(c, http.StatusBadRequest, "INVALID_FILE", "could not read uploaded file")
			return
		}
		input.Data = data
		input.Size = header.Size
		if input.FileName == "" {
			input.FileName = header.Filename
		}
		if input.ContentType == "" {
			input.ContentType = header.Header.Get("Content-Type")
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		if input.BlobURL == "" && input.BlobKey == "" {
			HandleAnalysisError(c, h.log, domain.ErrMissingFile)
			return
		}
	default:
		RespondAnalysisError(c, http.StatusBadRequest, "INVALID_FORM", "invalid multipart form")
		return
	}

	out, err := h.analysisService.Analyze(c.Request.Context(), input)
	if err != nil {
		HandleAnalysisError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
