package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"estudaia/internal/export"
	"estudaia/internal/handler"
	"estudaia/internal/service"
	"estudaia/mocks"
)

func TestExportHandler_CSVAttachment(t *testing.T) {
	svc := new(mocks.MockExportService)
	h := handler.NewExportHandler(svc, zap.NewNop())
	svc.On("Export", mock.Anything, int64(1), export.FormatCSV, export.KindQuiz).
		Return(&service.ExportFile{Name: "aula-quiz.csv", ContentType: "text/csv; charset=utf-8", Data: []byte("Type\n")}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/analyses/1/export?kind=quiz", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="aula-quiz.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "Type\n", w.Body.String())
}

func TestExportHandler_InvalidQuery(t *testing.T) {
	svc := new(mocks.MockExportService)
	h := handler.NewExportHandler(svc, zap.NewNop())

	for _, q := range []string{"format=pdf", "kind=keywords"} {
		c, w := newContext(http.MethodGet, "/api/v1/analyses/1/export?"+q, nil)
		c.Params = gin.Params{{Key: "id", Value: "1"}}
		h.Export(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
	svc.AssertNotCalled(t, "Export", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
