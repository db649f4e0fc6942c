package service

import (
	"context"
	"fmt"
	"strings"

	"estudaia/internal/config"
	"estudaia/internal/domain"
	"estudaia/internal/port"
)

// RecordService defines the analysis history contract.
type RecordService interface {
	Create(ctx context.Context, fileName string, result *domain.AnalysisResult) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.AnalysisRecord, error)
	List(ctx context.Context, limit int) ([]domain.AnalysisRecord, error)
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}

type recordService struct {
	repo port.AnalysisRepository
	cfg  *config.RecordsConfig
}

// NewRecordService creates a new RecordService implementation.
func NewRecordService(repo port.AnalysisRepository, cfg *config.RecordsConfig) RecordService {
	return &recordService{repo: repo, cfg: cfg}
}

func (s *recordService) Create(ctx context.Context, fileName string, result *domain.AnalysisResult) (int64, error) {
	if strings.TrimSpace(fileName) == "" || result == nil {
		return 0, domain.ErrInvalidRecord
	}
	id, err := s.repo.Create(ctx, fileName, result)
	if err != nil {
		return 0, fmt.Errorf("creating record: %w", err)
	}
	return id, nil
}

func (s *recordService) GetByID(ctx context.Context, id int64) (*domain.AnalysisRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *recordService) List(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	return s.repo.List(ctx, limit)
}

func (s *recordService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func (s *recordService) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
