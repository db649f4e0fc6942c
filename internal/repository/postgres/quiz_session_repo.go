package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"estudaia/internal/domain"
	"estudaia/internal/port"
)

type quizSessionRepo struct {
	db *sqlx.DB
}

// NewQuizSessionRepo creates a new PostgreSQL-backed QuizSessionRepository.
func NewQuizSessionRepo(db *sqlx.DB) port.QuizSessionRepository {
	return &quizSessionRepo{db: db}
}

func (r *quizSessionRepo) Create(ctx context.Context, s *domain.QuizSession) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO quiz_sessions (id, filename, date, mode, total, correct, duration_sec, streak_max, score)
		 VALUES (:id, :filename, :date, :mode, :total, :correct, :duration_sec, :streak_max, :score)`, s)
	if err != nil {
		return fmt.Errorf("quizSessionRepo.Create: %w", err)
	}
	return nil
}

func (r *quizSessionRepo) List(ctx context.Context, limit int) ([]domain.QuizSession, error) {
	var sessions []domain.QuizSession
	err := r.db.SelectContext(ctx, &sessions,
		"SELECT * FROM quiz_sessions ORDER BY date DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("quizSessionRepo.List: %w", err)
	}
	return sessions, nil
}

func (r *quizSessionRepo) Prune(ctx context.Context, keep int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM quiz_sessions WHERE id NOT IN (
			SELECT id FROM quiz_sessions ORDER BY date DESC LIMIT $1
		)`, keep)
	if err != nil {
		return fmt.Errorf("quizSessionRepo.Prune: %w", err)
	}
	return nil
}

func (r *quizSessionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM quiz_sessions"); err != nil {
		return fmt.Errorf("quizSessionRepo.Clear: %w", err)
	}
	return nil
}
