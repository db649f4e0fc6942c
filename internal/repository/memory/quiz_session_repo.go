package memory

import (
	"context"
	"sort"
	"sync"

	"estudaia/internal/domain"
	"estudaia/internal/port"
)

type quizSessionRepo struct {
	mu       sync.Mutex
	sessions []domain.QuizSession
}

// NewQuizSessionRepo creates an in-memory QuizSessionRepository.
func NewQuizSessionRepo() port.QuizSessionRepository {
	return &quizSessionRepo{}
}

func (r *quizSessionRepo) Create(_ context.Context, s *domain.QuizSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, *s)
	r.sortLocked()
	return nil
}

func (r *quizSessionRepo) List(_ context.Context, limit int) ([]domain.QuizSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.sessions)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.QuizSession, n)
	copy(out, r.sessions[:n])
	return out, nil
}

func (r *quizSessionRepo) Prune(_ context.Context, keep int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if keep >= 0 && len(r.sessions) > keep {
		r.sessions = r.sessions[:keep]
	}
	return nil
}

func (r *quizSessionRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = nil
	return nil
}

// sortLocked keeps sessions newest first.
func (r *quizSessionRepo) sortLocked() {
	sort.SliceStable(r.sessions, func(i, j int) bool {
		return r.sessions[i].Date.After(r.sessions[j].Date)
	})
}
