package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estudaia/internal/service"
)

// BlobHandler handles direct document uploads for later analysis.
type BlobHandler struct {
	blobService service.BlobService
	log         *zap.Logger
}

// NewBlobHandler creates a new BlobHandler.
func NewBlobHandler(blobService service.BlobService, log *zap.Logger) *BlobHandler {
	return &BlobHandler{blobService: blobService, log: log}
}

// Upload handles POST /api/v1/blobs
// @Summary Upload a document to blob storage
// @Description Stores a large document and returns a key and presigned URL to pass to /analyze
// @Tags blobs
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document (PDF, DOCX or PPTX)"
// @Success 201 {object} Response{data=service.BlobUploadOutput}
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 503 {object} ErrorResponseBody "Blob storage disabled"
// @Router /blobs [post]
func (h *BlobHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	out, err := h.blobService.Upload(c.Request.Context(), service.BlobUploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondCreated(c, out)
}
