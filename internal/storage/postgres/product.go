package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"shopsync/internal/domain"
)

type ProductStore struct {
	db *sqlx.DB
}

func NewProductStore(db *sqlx.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `
	id, sku, external_id, title, price, cost_price, vendor, category,
	image_url, supplier_url, supplier_price, has_price_discrepancy,
	last_checked_at, created_at, updated_at`

// FindBySKU returns nil without error when no product matches.
func (s *ProductStore) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	var product domain.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`

	err := sqlx.GetContext(ctx, executor(ctx, s.db), &product, query, sku)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductStore) Create(ctx context.Context, product *domain.Product) (int64, error) {
	query := `
		INSERT INTO products (
			sku, external_id, title, price, cost_price, vendor, category, image_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := executor(ctx, s.db).QueryRowxContext(ctx, query,
		product.SKU,
		product.ExternalID,
		product.Title,
		product.Price,
		product.CostPrice,
		product.Vendor,
		product.Category,
		product.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	product.ID = id
	return id, nil
}

func (s *ProductStore) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products SET
			external_id = $2,
			title = $3,
			price = $4,
			cost_price = $5,
			vendor = $6,
			category = $7,
			image_url = $8,
			supplier_url = $9,
			supplier_price = $10,
			has_price_discrepancy = $11,
			last_checked_at = $12,
			updated_at = NOW()
		WHERE id = $1`

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		product.ID,
		product.ExternalID,
		product.Title,
		product.Price,
		product.CostPrice,
		product.Vendor,
		product.Category,
		product.ImageURL,
		product.SupplierURL,
		product.SupplierPrice,
		product.HasPriceDiscrepancy,
		product.LastCheckedAt,
	)
	return err
}

// ListWithSupplierRef returns every product carrying a supplier URL,
// oldest check first.
func (s *ProductStore) ListWithSupplierRef(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE supplier_url IS NOT NULL AND supplier_url <> ''
		ORDER BY last_checked_at NULLS FIRST, id`

	var products []domain.Product
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &products, query); err != nil {
		return nil, err
	}
	return products, nil
}

// Touch refreshes only the check timestamp.
func (s *ProductStore) Touch(ctx context.Context, id int64) error {
	_, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE products SET last_checked_at = NOW() WHERE id = $1`, id)
	return err
}
