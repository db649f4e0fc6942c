package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estudaia/internal/export"
	"estudaia/internal/service"
)

// ExportHandler handles study material downloads.
type ExportHandler struct {
	exportService service.ExportService
	log           *zap.Logger
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService, log *zap.Logger) *ExportHandler {
	return &ExportHandler{exportService: exportService, log: log}
}

// Export handles GET /api/v1/analyses/:id/export
// @Summary Export flashcards or quiz
// @Description Download the flashcards or quiz of a saved analysis as CSV, or the whole study material as XLSX
// @Tags analyses
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Analysis ID"
// @Param format query string false "csv or xlsx" default(csv)
// @Param kind query string false "flashcards or quiz (csv only)" default(flashcards)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody "Invalid format or kind"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Router /analyses/{id}/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	id, ok := parseRecordID(c)
	if !ok {
		return
	}
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}
	kind, err := export.ParseKind(c.Query("kind"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_KIND", "kind must be flashcards or quiz")
		return
	}

	file, err := h.exportService.Export(c.Request.Context(), id, format, kind)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
