package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"shopsync/internal/domain"
)

// StatsStore maintains the singleton price-watch aggregate row.
type StatsStore struct {
	db *sqlx.DB
}

func NewStatsStore(db *sqlx.DB) *StatsStore {
	return &StatsStore{db: db}
}

func (s *StatsStore) Merge(ctx context.Context, stats *domain.PriceCheckStats) error {
	query := `
		INSERT INTO price_watch_stats (id, checked, updated, discrepancies, errors, last_run_at)
		VALUES (1, $1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE SET
			checked = price_watch_stats.checked + EXCLUDED.checked,
			updated = price_watch_stats.updated + EXCLUDED.updated,
			discrepancies = price_watch_stats.discrepancies + EXCLUDED.discrepancies,
			errors = price_watch_stats.errors + EXCLUDED.errors,
			last_run_at = EXCLUDED.last_run_at`

	_, err := s.db.ExecContext(ctx, query,
		stats.Checked,
		stats.Updated,
		stats.Discrepancies,
		stats.Errors,
	)
	return err
}

func (s *StatsStore) Get(ctx context.Context) (*domain.PriceCheckStats, error) {
	var stats domain.PriceCheckStats
	query := `SELECT checked, updated, discrepancies, errors FROM price_watch_stats WHERE id = 1`

	err := s.db.GetContext(ctx, &stats, query)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.PriceCheckStats{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
