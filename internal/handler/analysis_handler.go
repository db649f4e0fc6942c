package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estudaia/internal/service"
)

// AnalysisHandler handles the analysis history endpoints.
type AnalysisHandler struct {
	recordService service.RecordService
	log           *zap.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(recordService service.RecordService, log *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{recordService: recordService, log: log}
}

// List handles GET /api/v1/analyses
// @Summary List saved analyses
// @Description Returns saved analyses, newest first
// @Tags analyses
// @Produce json
// @Param limit query int false "Maximum number of records" default(50)
// @Success 200 {object} Response{data=[]domain.AnalysisRecord}
// @Router /analyses [get]
func (h *AnalysisHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	records, err := h.recordService.List(c.Request.Context(), limit)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, records)
}

// GetByID handles GET /api/v1/analyses/:id
// @Summary Get a saved analysis
// @Tags analyses
// @Produce json
// @Param id path int true "Analysis ID"
// @Success 200 {object} Response{data=domain.AnalysisRecord}
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Router /analyses/{id} [get]
func (h *AnalysisHandler) GetByID(c *gin.Context) {
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	record, err := h.recordService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, record)
}

// Create handles POST /api/v1/analyses
// @Summary Save an analysis
// @Tags analyses
// @Accept json
// @Produce json
// @Param request body CreateAnalysisRequest true "Analysis to save"
// @Success 201 {object} Response{data=CreatedRecordResponse}
// @Failure 400 {object} ErrorResponseBody "file_name and result are required"
// @Router /analyses [post]
func (h *AnalysisHandler) Create(c *gin.Context) {
	var req CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file_name and result are required")
		return
	}

	id, err := h.recordService.Create(c.Request.Context(), req.FileName, req.Result)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondCreated(c, CreatedRecordResponse{ID: id})
}

// Delete handles DELETE /api/v1/analyses/:id
// @Summary Delete a saved analysis
// @Tags analyses
// @Produce json
// @Param id path int true "Analysis ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Router /analyses/{id} [delete]
func (h *AnalysisHandler) Delete(c *gin.Context) {
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.recordService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "analysis deleted"})
}

// Clear handles DELETE /api/v1/analyses
// @Summary Clear the analysis history
// @Tags analyses
// @Produce json
// @Success 200 {object} Response{data=MessageResponse}
// @Router /analyses [delete]
func (h *AnalysisHandler) Clear(c *gin.Context) {
	if err := h.recordService.Clear(c.Request.Context()); err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "history cleared"})
}

func parseRecordID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid analysis ID")
		return 0, false
	}
	return id, true
}
