package domain

import "time"

// Product is the locally persisted catalog entry, keyed by SKU.
// All monetary amounts are in cents.
type Product struct {
	ID                  int64      `db:"id"`
	SKU                 string     `db:"sku"`
	ExternalID          int64      `db:"external_id"`
	Title               string     `db:"title"`
	Price               int64      `db:"price"`
	CostPrice           *int64     `db:"cost_price"`
	Vendor              *string    `db:"vendor"`
	Category            *string    `db:"category"`
	ImageURL            *string    `db:"image_url"`
	SupplierURL         *string    `db:"supplier_url"`
	SupplierPrice       *int64     `db:"supplier_price"`
	HasPriceDiscrepancy bool       `db:"has_price_discrepancy"`
	LastCheckedAt       *time.Time `db:"last_checked_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

// RemoteRecord is one purchasable variant as flattened from the remote
// catalog. It lives only in memory during a sync pass.
type RemoteRecord struct {
	ExternalID  int64
	ParentID    int64
	InventoryID int64
	SKU         string
	Title       string
	Price       int64
	CostPrice   *int64
	Vendor      string
	Category    string
	Images      []string
}

// Valid reports whether the record carries the fields required for an
// upsert. Invalid records are counted as failed and skipped.
func (r RemoteRecord) Valid() bool {
	return r.SKU != "" && r.Title != "" && r.ExternalID != 0
}

// PriceHistory records one observed supplier price change for a product.
type PriceHistory struct {
	ID            int64     `db:"id"`
	ProductID     int64     `db:"product_id"`
	PlatformPrice int64     `db:"platform_price"`
	SupplierPrice int64     `db:"supplier_price"`
	RecordedAt    time.Time `db:"recorded_at"`
}

// Notification is a persisted alert about a price discrepancy.
type Notification struct {
	ID        string    `db:"id"`
	ProductID int64     `db:"product_id"`
	Kind      string    `db:"kind"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

const NotificationKindPriceDiscrepancy = "price_discrepancy"
