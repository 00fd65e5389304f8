package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"shopsync/internal/domain"
)

// RemoteCatalogClient is the remote e-commerce platform. CountParents
// and CountFlatRecords are independent calls; neither is inferred from
// the other.
type RemoteCatalogClient interface {
	CountParents(ctx context.Context) (int, error)
	CountFlatRecords(ctx context.Context) (int, error)
	FetchAll(ctx context.Context) ([]domain.RemoteRecord, error)
	FetchCost(ctx context.Context, inventoryID int64) (*int64, error)
}

// ProgressStore persists the single current-or-most-recent sync run.
type ProgressStore interface {
	GetCurrent(ctx context.Context) (*domain.SyncProgress, error)
	Initialize(ctx context.Context) (*domain.SyncProgress, error)
	Update(ctx context.Context, progress *domain.SyncProgress) error
}

type ProductStore interface {
	FindBySKU(ctx context.Context, sku string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (int64, error)
	Update(ctx context.Context, product *domain.Product) error
	ListWithSupplierRef(ctx context.Context) ([]domain.Product, error)
	Touch(ctx context.Context, id int64) error
}

type PriceHistoryStore interface {
	Insert(ctx context.Context, entry *domain.PriceHistory) error
}

type NotificationStore interface {
	Create(ctx context.Context, notification *domain.Notification) error
}

// StatsStore accumulates price-watch sweep totals across runs.
type StatsStore interface {
	Merge(ctx context.Context, stats *domain.PriceCheckStats) error
}

// PriceScraper returns the current supplier price in cents for a
// supplier page URL.
type PriceScraper interface {
	ScrapePrice(ctx context.Context, url string) (int64, error)
}

// NotificationChannel delivers an outbound alert. Transport failures
// propagate; the caller decides whether they are fatal.
type NotificationChannel interface {
	Send(ctx context.Context, target, message string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
