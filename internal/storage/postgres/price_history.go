package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"shopsync/internal/domain"
)

type PriceHistoryStore struct {
	db *sqlx.DB
}

func NewPriceHistoryStore(db *sqlx.DB) *PriceHistoryStore {
	return &PriceHistoryStore{db: db}
}

func (s *PriceHistoryStore) Insert(ctx context.Context, entry *domain.PriceHistory) error {
	query := `
		INSERT INTO price_history (product_id, platform_price, supplier_price, recorded_at)
		VALUES ($1, $2, $3, $4)`

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		entry.ProductID,
		entry.PlatformPrice,
		entry.SupplierPrice,
		entry.RecordedAt,
	)
	return err
}

// ListByProduct returns history entries newest first.
func (s *PriceHistoryStore) ListByProduct(ctx context.Context, productID int64) ([]domain.PriceHistory, error) {
	query := `
		SELECT id, product_id, platform_price, supplier_price, recorded_at
		FROM price_history
		WHERE product_id = $1
		ORDER BY recorded_at DESC`

	var entries []domain.PriceHistory
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &entries, query, productID); err != nil {
		return nil, err
	}
	return entries, nil
}
