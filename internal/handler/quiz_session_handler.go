package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estudaia/internal/domain"
	"estudaia/internal/service"
)

// QuizSessionHandler handles the quiz history endpoints.
type QuizSessionHandler struct {
	quizService service.QuizSessionService
	log         *zap.Logger
}

// NewQuizSessionHandler creates a new QuizSessionHandler.
func NewQuizSessionHandler(quizService service.QuizSessionService, log *zap.Logger) *QuizSessionHandler {
	return &QuizSessionHandler{quizService: quizService, log: log}
}

// Create handles POST /api/v1/quiz-sessions
// @Summary Record a quiz session
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body domain.QuizSession true "Completed quiz attempt"
// @Success 201 {object} Response{data=domain.QuizSession}
// @Failure 400 {object} ErrorResponseBody "Invalid session"
// @Router /quiz-sessions [post]
func (h *QuizSessionHandler) Create(c *gin.Context) {
	var session domain.QuizSession
	if err := c.ShouldBindJSON(&session); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	saved, err := h.quizService.Record(c.Request.Context(), &session)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondCreated(c, saved)
}

// List handles GET /api/v1/quiz-sessions
// @Summary List quiz sessions
// @Tags quiz
// @Produce json
// @Success 200 {object} Response{data=[]domain.QuizSession}
// @Router /quiz-sessions [get]
func (h *QuizSessionHandler) List(c *gin.Context) {
	sessions, err := h.quizService.List(c.Request.Context())
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, sessions)
}

// Clear handles DELETE /api/v1/quiz-sessions
// @Summary Clear the quiz history
// @Tags quiz
// @Produce json
// @Success 200 {object} Response{data=MessageResponse}
// @Router /quiz-sessions [delete]
func (h *QuizSessionHandler) Clear(c *gin.Context) {
	if err := h.quizService.Clear(c.Request.Context()); err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "quiz history cleared"})
}
