package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"shopsync/internal/domain"
)

type ProgressStore struct {
	db *sqlx.DB
}

func NewProgressStore(db *sqlx.DB) *ProgressStore {
	return &ProgressStore{db: db}
}

const progressColumns = `
	id, status, total_items, processed_items, success_items, failed_items,
	message, details, started_at, completed_at`

// GetCurrent returns the most recent run, or nil when none exists.
func (s *ProgressStore) GetCurrent(ctx context.Context) (*domain.SyncProgress, error) {
	var progress domain.SyncProgress
	query := `SELECT ` + progressColumns + ` FROM sync_progress ORDER BY started_at DESC LIMIT 1`

	err := s.db.GetContext(ctx, &progress, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Initialize opens a fresh pending row for a new run.
func (s *ProgressStore) Initialize(ctx context.Context) (*domain.SyncProgress, error) {
	progress := &domain.SyncProgress{
		ID:        uuid.NewString(),
		Status:    domain.SyncPending,
		StartedAt: time.Now(),
	}

	query := `
		INSERT INTO sync_progress (id, status, message, details, started_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		progress.ID,
		progress.Status,
		progress.Message,
		progress.Details,
		progress.StartedAt,
	)
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *ProgressStore) Update(ctx context.Context, progress *domain.SyncProgress) error {
	query := `
		UPDATE sync_progress SET
			status = $2,
			total_items = $3,
			processed_items = $4,
			success_items = $5,
			failed_items = $6,
			message = $7,
			details = $8,
			completed_at = $9
		WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query,
		progress.ID,
		progress.Status,
		progress.TotalItems,
		progress.ProcessedItems,
		progress.SuccessItems,
		progress.FailedItems,
		progress.Message,
		progress.Details,
		progress.CompletedAt,
	)
	return err
}
