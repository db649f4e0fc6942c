package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"estudaia/internal/domain"
	"estudaia/internal/handler"
	"estudaia/internal/service"
	"estudaia/mocks"
)

func TestQuizSessionHandler_Create(t *testing.T) {
	svc := new(mocks.MockQuizSessionService)
	h := handler.NewQuizSessionHandler(svc, zap.NewNop())
	svc.On("Record", mock.Anything, mock.MatchedBy(func(s *domain.QuizSession) bool {
		return s.Mode == domain.QuizModeExam && s.Total == 10 && s.Correct == 8
	})).Return(&domain.QuizSession{ID: "q1", Mode: domain.QuizModeExam, Total: 10, Correct: 8}, nil)

	c, w := jsonContext(http.MethodPost, "/api/v1/quiz-sessions", map[string]any{
		"filename": "a.pdf", "mode": "exam", "total": 10, "correct": 8,
	})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"id":"q1"`)
}

func TestQuizSessionHandler_Create_Invalid(t *testing.T) {
	svc := new(mocks.MockQuizSessionService)
	h := handler.NewQuizSessionHandler(svc, zap.NewNop())
	svc.On("Record", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidQuizSession)

	c, w := jsonContext(http.MethodPost, "/api/v1/quiz-sessions", map[string]any{"mode": "timed"})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuizSessionHandler_ListAndClear(t *testing.T) {
	svc := new(mocks.MockQuizSessionService)
	h := handler.NewQuizSessionHandler(svc, zap.NewNop())
	svc.On("List", mock.Anything).Return([]domain.QuizSession{{ID: "q1"}}, nil)
	svc.On("Clear", mock.Anything).Return(nil)

	c, w := newContext(http.MethodGet, "/api/v1/quiz-sessions", nil)
	h.List(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodDelete, "/api/v1/quiz-sessions", nil)
	h.Clear(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBlobHandler_Upload(t *testing.T) {
	svc := new(mocks.MockBlobService)
	h := handler.NewBlobHandler(svc, zap.NewNop())
	svc.On("Upload", mock.Anything, mock.MatchedBy(func(in service.BlobUploadInput) bool {
		return in.FileName == "slides.pptx" && in.Size == 4
	})).Return(&service.BlobUploadOutput{Key: "uploads/x.pptx", URL: "https://signed"}, nil)

	c, w := multipartContext("/api/v1/blobs", "slides.pptx", []byte("PK.."), nil)
	h.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"key":"uploads/x.pptx"`)
}

func TestBlobHandler_Upload_Disabled(t *testing.T) {
	svc := new(mocks.MockBlobService)
	h := handler.NewBlobHandler(svc, zap.NewNop())
	svc.On("Upload", mock.Anything, mock.Anything).Return(nil, domain.ErrBlobStorageDisabled)

	c, w := multipartContext("/api/v1/blobs", "a.pdf", []byte("%PDF"), nil)
	h.Upload(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	c, w := newContext(http.MethodGet, "/readyz", nil)
	handler.NewHealthHandler(nil).Readiness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodGet, "/readyz", nil)
	handler.NewHealthHandler(fakePinger{err: errors.New("down")}).Readiness(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	c, w = newContext(http.MethodGet, "/healthz", nil)
	handler.NewHealthHandler(fakePinger{}).Liveness(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
