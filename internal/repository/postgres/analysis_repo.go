package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"estudaia/internal/domain"
	"estudaia/internal/port"
)

const defaultListLimit = 50

type analysisRepo struct {
	db *sqlx.DB
}

// NewAnalysisRepo creates a new PostgreSQL-backed AnalysisRepository.
func NewAnalysisRepo(db *sqlx.DB) port.AnalysisRepository {
	return &analysisRepo{db: db}
}

// analysisRow is the table shape; result is stored as JSONB.
type analysisRow struct {
	ID        int64     `db:"id"`
	FileName  string    `db:"file_name"`
	Result    []byte    `db:"result"`
	CreatedAt time.Time `db:"created_at"`
}

func (row *analysisRow) toRecord() (*domain.AnalysisRecord, error) {
	rec := &domain.AnalysisRecord{ID: row.ID, FileName: row.FileName, CreatedAt: row.CreatedAt}
	if err := json.Unmarshal(row.Result, &rec.Result); err != nil {
		return nil, fmt.Errorf("decoding result of analysis %d: %w", row.ID, err)
	}
	return rec, nil
}

func (r *analysisRepo) Create(ctx context.Context, fileName string, result *domain.AnalysisResult) (int64, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("analysisRepo.Create marshal: %w", err)
	}

	var id int64
	err = r.db.GetContext(ctx, &id,
		`INSERT INTO analyses (file_name, result, created_at) VALUES ($1, $2, $3) RETURNING id`,
		fileName, payload, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("analysisRepo.Create: %w", err)
	}
	return id, nil
}

func (r *analysisRepo) GetByID(ctx context.Context, id int64) (*domain.AnalysisRecord, error) {
	var row analysisRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, file_name, result, created_at FROM analyses WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("analysisRepo.GetByID: %w", err)
	}
	return row.toRecord()
}

func (r *analysisRepo) List(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var rows []analysisRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, file_name, result, created_at FROM analyses ORDER BY created_at DESC, id DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("analysisRepo.List: %w", err)
	}

	records := make([]domain.AnalysisRecord, 0, len(rows))
	for i := range rows {
		rec, err := rows[i].toRecord()
		if err != nil {
			return nil, fmt.Errorf("analysisRepo.List: %w", err)
		}
		records = append(records, *rec)
	}
	return records, nil
}

func (r *analysisRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("analysisRepo.Delete: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("analysisRepo.Delete rows: %w", err)
	}
	return rows > 0, nil
}

func (r *analysisRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM analyses"); err != nil {
		return fmt.Errorf("analysisRepo.Clear: %w", err)
	}
	return nil
}
