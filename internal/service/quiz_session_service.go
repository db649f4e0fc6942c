package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"estudaia/internal/config"
	"estudaia/internal/domain"
	"estudaia/internal/port"
)

// QuizSessionService defines the quiz history contract. Only the newest
// sessions are kept.
type QuizSessionService interface {
	Record(ctx context.Context, session *domain.QuizSession) (*domain.QuizSession, error)
	List(ctx context.Context) ([]domain.QuizSession, error)
	Clear(ctx context.Context) error
}

type quizSessionService struct {
	repo port.QuizSessionRepository
	cfg  *config.RecordsConfig
}

// NewQuizSessionService creates a new QuizSessionService implementation.
func NewQuizSessionService(repo port.QuizSessionRepository, cfg *config.RecordsConfig) QuizSessionService {
	return &quizSessionService{repo: repo, cfg: cfg}
}

func (s *quizSessionService) Record(ctx context.Context, session *domain.QuizSession) (*domain.QuizSession, error) {
	if session == nil || session.Total < 0 || session.Correct < 0 || session.Correct > session.Total {
		return nil, domain.ErrInvalidQuizSession
	}
	switch session.Mode {
	case domain.QuizModePractice, domain.QuizModeExam:
	default:
		return nil, domain.ErrInvalidQuizSession
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.Date.IsZero() {
		session.Date = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("recording quiz session: %w", err)
	}
	if err := s.repo.Prune(ctx, s.cfg.QuizSessionLimit); err != nil {
		return nil, fmt.Errorf("pruning quiz sessions: %w", err)
	}
	return session, nil
}

func (s *quizSessionService) List(ctx context.Context) ([]domain.QuizSession, error) {
	return s.repo.List(ctx, s.cfg.QuizSessionLimit)
}

func (s *quizSessionService) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
