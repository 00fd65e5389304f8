package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"shopsync/internal/config"
	"shopsync/internal/domain"
)

// PriceWatcher sweeps every product carrying a supplier reference,
// compares the scraped supplier price against the stored one, and
// raises a notification when it diverges from the platform price beyond
// the configured tolerance.
type PriceWatcher struct {
	products  ProductStore
	history   PriceHistoryStore
	notes     NotificationStore
	stats     StatsStore
	scraper   PriceScraper
	channel   NotificationChannel
	txManager TransactionManager
	logger    *slog.Logger
	config    config.PriceWatchConfig
}

func NewPriceWatcher(
	products ProductStore,
	history PriceHistoryStore,
	notes NotificationStore,
	stats StatsStore,
	scraper PriceScraper,
	channel NotificationChannel,
	txManager TransactionManager,
	logger *slog.Logger,
	cfg config.PriceWatchConfig,
) *PriceWatcher {
	return &PriceWatcher{
		products:  products,
		history:   history,
		notes:     notes,
		stats:     stats,
		scraper:   scraper,
		channel:   channel,
		txManager: txManager,
		logger:    logger.With("component", "price-watch"),
		config:    cfg,
	}
}

// Run performs one sweep. A scrape or store error for one product is
// counted and the sweep continues; only a failure to list products
// aborts.
func (w *PriceWatcher) Run(ctx context.Context) (*domain.PriceCheckStats, error) {
	started := time.Now()

	products, err := w.products.ListWithSupplierRef(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products with supplier ref: %w", err)
	}

	w.logger.Info("price sweep started", "products", len(products))

	stats := &domain.PriceCheckStats{}

	for i := range products {
		if i > 0 {
			if err := sleepCtx(ctx, w.config.ProductDelay); err != nil {
				return stats, fmt.Errorf("inter-product delay: %w", err)
			}
		}
		w.checkProduct(ctx, &products[i], stats)
	}

	stats.Duration = time.Since(started)

	if err := w.stats.Merge(ctx, stats); err != nil {
		w.logger.Error("failed to merge sweep stats", "error", err)
	}

	w.logger.Info("price sweep completed",
		"checked", stats.Checked,
		"updated", stats.Updated,
		"discrepancies", stats.Discrepancies,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (w *PriceWatcher) checkProduct(ctx context.Context, product *domain.Product, stats *domain.PriceCheckStats) {
	stats.Checked++

	price, err := w.scraper.ScrapePrice(ctx, *product.SupplierURL)
	if err != nil {
		stats.Errors++
		w.logger.Warn("scrape failed", "sku", product.SKU, "error", err)
		return
	}

	if product.SupplierPrice != nil && *product.SupplierPrice == price {
		if err := w.products.Touch(ctx, product.ID); err != nil {
			stats.Errors++
			w.logger.Warn("failed to refresh check timestamp", "sku", product.SKU, "error", err)
		}
		return
	}

	diff := product.Price - price
	if diff < 0 {
		diff = -diff
	}
	discrepancy := diff > w.config.ToleranceCents

	// Product update, history row and notification commit together.
	err = w.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		now := time.Now()
		product.SupplierPrice = &price
		product.HasPriceDiscrepancy = discrepancy
		product.LastCheckedAt = &now
		if err := w.products.Update(txCtx, product); err != nil {
			return fmt.Errorf("update product: %w", err)
		}

		if err := w.history.Insert(txCtx, &domain.PriceHistory{
			ProductID:     product.ID,
			PlatformPrice: product.Price,
			SupplierPrice: price,
			RecordedAt:    now,
		}); err != nil {
			return fmt.Errorf("insert history: %w", err)
		}

		if discrepancy {
			if err := w.notes.Create(txCtx, &domain.Notification{
				ID:        uuid.NewString(),
				ProductID: product.ID,
				Kind:      domain.NotificationKindPriceDiscrepancy,
				Message:   w.discrepancyMessage(product, price),
			}); err != nil {
				return fmt.Errorf("create notification: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		stats.Errors++
		w.logger.Error("failed to record price change", "sku", product.SKU, "error", err)
		return
	}

	stats.Updated++

	if discrepancy {
		stats.Discrepancies++
		// Delivery failure is local to the sweep.
		if err := w.channel.Send(ctx, w.config.AlertTarget, w.discrepancyMessage(product, price)); err != nil {
			w.logger.Warn("alert delivery failed", "sku", product.SKU, "error", err)
		}
	}
}

func (w *PriceWatcher) discrepancyMessage(product *domain.Product, supplierPrice int64) string {
	return fmt.Sprintf("price discrepancy for %s: platform %s vs supplier %s",
		product.SKU, formatCents(product.Price), formatCents(supplierPrice))
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
