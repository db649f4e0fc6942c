// Package memory keeps records in process memory. State lives in the
// repository instance, so each instance is an independent store.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"estudaia/internal/domain"
	"estudaia/internal/port"
)

const defaultListLimit = 50

type analysisRepo struct {
	mu      sync.RWMutex
	nextID  int64
	records []domain.AnalysisRecord
	now     func() time.Time
}

// NewAnalysisRepo creates an in-memory AnalysisRepository.
func NewAnalysisRepo() port.AnalysisRepository {
	return &analysisRepo{nextID: 1, now: time.Now}
}

func (r *analysisRepo) Create(_ context.Context, fileName string, result *domain.AnalysisResult) (int64, error) {
	// Stored records are immutable; keep a private copy.
	stored, err := cloneResult(result)
	if err != nil {
		return 0, fmt.Errorf("analysisRepo.Create: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.records = append(r.records, domain.AnalysisRecord{
		ID:        id,
		FileName:  fileName,
		Result:    *stored,
		CreatedAt: r.now().UTC(),
	})
	return id, nil
}

func (r *analysisRepo) GetByID(_ context.Context, id int64) (*domain.AnalysisRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			rec, err := cloneRecord(r.records[i])
			if err != nil {
				return nil, fmt.Errorf("analysisRepo.GetByID: %w", err)
			}
			return &rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *analysisRepo) List(_ context.Context, limit int) ([]domain.AnalysisRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	// records are appended in id order, so walking backwards is newest first
	out := make([]domain.AnalysisRecord, 0, min(limit, len(r.records)))
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		rec, err := cloneRecord(r.records[i])
		if err != nil {
			return nil, fmt.Errorf("analysisRepo.List: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *analysisRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *analysisRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
	return nil
}

// cloneRecord keeps callers from reaching the stored slices.
func cloneRecord(rec domain.AnalysisRecord) (domain.AnalysisRecord, error) {
	result, err := cloneResult(&rec.Result)
	if err != nil {
		return domain.AnalysisRecord{}, err
	}
	rec.Result = *result
	return rec, nil
}

func cloneResult(in *domain.AnalysisResult) (*domain.AnalysisResult, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	var out domain.AnalysisResult
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
