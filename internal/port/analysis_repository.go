package port

import (
	"context"

	"estudaia/internal/domain"
)

// AnalysisRepository defines the contract for analysis record persistence.
// Records are immutable: there is no update operation.
type AnalysisRepository interface {
	Create(ctx context.Context, fileName string, result *domain.AnalysisResult) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.AnalysisRecord, error)
	// List returns records newest first.
	List(ctx context.Context, limit int) ([]domain.AnalysisRecord, error)
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	Clear(ctx context.Context) error
}

// QuizSessionRepository defines the contract for quiz history persistence.
type QuizSessionRepository interface {
	Create(ctx context.Context, session *domain.QuizSession) error
	List(ctx context.Context, limit int) ([]domain.QuizSession, error)
	// Prune keeps only the newest keep sessions.
	Prune(ctx context.Context, keep int) error
	Clear(ctx context.Context) error
}
