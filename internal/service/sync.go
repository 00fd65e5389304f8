package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"shopsync/internal/config"
	"shopsync/internal/domain"
)

// ErrSyncInProgress is returned when Sync is invoked while a previous
// run is still executing in this process.
var ErrSyncInProgress = errors.New("sync already in progress")

// SyncEngine drives one catalog sync run through counting, processing
// and completing, reporting progress into the ProgressStore after every
// significant step.
type SyncEngine struct {
	catalog  RemoteCatalogClient
	products ProductStore
	progress ProgressStore
	logger   *slog.Logger
	config   config.SyncConfig
	running  atomic.Bool
}

func NewSyncEngine(
	catalog RemoteCatalogClient,
	products ProductStore,
	progress ProgressStore,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncEngine {
	return &SyncEngine{
		catalog:  catalog,
		products: products,
		progress: progress,
		logger:   logger.With("component", "sync"),
		config:   cfg,
	}
}

// Running reports whether a run is currently executing in this process.
func (e *SyncEngine) Running() bool {
	return e.running.Load()
}

// Sync executes a full catalog sync run. Per-record failures are
// counted and skipped; any other error seals the run as failed and is
// returned.
func (e *SyncEngine) Sync(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	defer e.running.Store(false)

	run, err := e.begin(ctx)
	if err != nil {
		return fmt.Errorf("begin sync run: %w", err)
	}

	e.logger.Info("sync started", "run_id", run.ID)

	if err := e.execute(ctx, run); err != nil {
		e.seal(ctx, run, err)
		return err
	}

	return nil
}

// begin enforces the fresh-start rule: any stale non-terminal row left
// by a crashed run is sealed before a new row is opened, so at most one
// live progress row exists at a time.
func (e *SyncEngine) begin(ctx context.Context) (*domain.SyncProgress, error) {
	current, err := e.progress.GetCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("load current progress: %w", err)
	}

	if current != nil && !current.Status.Terminal() {
		e.logger.Warn("sealing stale sync run", "run_id", current.ID, "status", current.Status)
		now := time.Now()
		current.Status = domain.SyncError
		current.Message = "run superseded before completion"
		current.CompletedAt = &now
		current.Details = domain.ProgressDetails{
			Phase: domain.PhaseError,
			Error: &domain.ErrorDetails{Phase: current.Details.Phase, Message: current.Message},
		}
		if err := e.progress.Update(ctx, current); err != nil {
			return nil, fmt.Errorf("seal stale progress: %w", err)
		}
	}

	return e.progress.Initialize(ctx)
}

func (e *SyncEngine) execute(ctx context.Context, run *domain.SyncProgress) error {
	// Counting. Two independent calls; failure here is fatal for the
	// run and never retried.
	run.Status = domain.SyncInProgress
	run.Message = "counting remote catalog"
	run.Details = domain.ProgressDetails{Phase: domain.PhaseCounting, Counting: &domain.CountingDetails{}}
	if err := e.progress.Update(ctx, run); err != nil {
		return fmt.Errorf("persist counting progress: %w", err)
	}

	parents, err := e.catalog.CountParents(ctx)
	if err != nil {
		return fmt.Errorf("count parents: %w", err)
	}
	flatTotal, err := e.catalog.CountFlatRecords(ctx)
	if err != nil {
		return fmt.Errorf("count flat records: %w", err)
	}

	run.TotalItems = parents
	run.Details.Counting = &domain.CountingDetails{UniqueParents: parents, FlatRecords: flatTotal}
	run.Message = fmt.Sprintf("found %d products (%d variants)", parents, flatTotal)
	if err := e.progress.Update(ctx, run); err != nil {
		return fmt.Errorf("persist counts: %w", err)
	}

	e.logger.Info("counted remote catalog", "parents", parents, "flat_records", flatTotal)

	if parents == 0 {
		return e.complete(ctx, run, 0)
	}

	// Processing.
	recordsProcessed, err := e.process(ctx, run, flatTotal)
	if err != nil {
		return err
	}

	return e.complete(ctx, run, recordsProcessed)
}

// parentGroup is the unit progress is reported over: all flat records
// sharing one parent id, in first-seen order.
type parentGroup struct {
	parentID int64
	records  []domain.RemoteRecord
}

func groupByParent(records []domain.RemoteRecord) []parentGroup {
	index := make(map[int64]int, len(records))
	var groups []parentGroup
	for _, r := range records {
		i, ok := index[r.ParentID]
		if !ok {
			i = len(groups)
			index[r.ParentID] = i
			groups = append(groups, parentGroup{parentID: r.ParentID})
		}
		groups[i].records = append(groups[i].records, r)
	}
	return groups
}

// shouldFlush implements the batch policy: the first few flushes close
// after a small number of groups so the UI percentage moves early, the
// rest close on accumulated record count.
func (e *SyncEngine) shouldFlush(flushes, groupsInBatch, recordsInBatch int) bool {
	if flushes < e.config.InitialBatchFlushes {
		return groupsInBatch >= e.config.InitialBatchGroups
	}
	return recordsInBatch >= e.config.BatchSize
}

func (e *SyncEngine) process(ctx context.Context, run *domain.SyncProgress, flatTotal int) (int, error) {
	all, err := e.catalog.FetchAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch remote records: %w", err)
	}

	groups := groupByParent(all)
	started := time.Now()
	flushes := 0
	recordsProcessed := 0

	var batch []parentGroup
	recordsInBatch := 0

	flush := func() error {
		for _, g := range batch {
			failed := false
			for i := range g.records {
				if ok := e.processRecord(ctx, &g.records[i]); !ok {
					failed = true
				}
			}
			run.ProcessedItems++
			if failed {
				run.FailedItems++
			} else {
				run.SuccessItems++
			}
			recordsProcessed += len(g.records)
		}
		flushes++
		batch = batch[:0]
		recordsInBatch = 0

		e.reportProcessing(run, started, flatTotal, recordsProcessed)
		if err := e.progress.Update(ctx, run); err != nil {
			return fmt.Errorf("persist processing progress: %w", err)
		}
		return nil
	}

	for i, g := range groups {
		batch = append(batch, g)
		recordsInBatch += len(g.records)
		last := i == len(groups)-1

		if !last && !e.shouldFlush(flushes, len(batch), recordsInBatch) {
			continue
		}
		if err := flush(); err != nil {
			return recordsProcessed, err
		}
		if !last {
			if err := sleepCtx(ctx, e.config.BatchDelay); err != nil {
				return recordsProcessed, fmt.Errorf("inter-batch delay: %w", err)
			}
		}
	}

	return recordsProcessed, nil
}

// processRecord validates and upserts one flat record. Returns false if
// the record failed; failures never abort the batch.
func (e *SyncEngine) processRecord(ctx context.Context, rec *domain.RemoteRecord) bool {
	if !rec.Valid() {
		e.logger.Warn("skipping invalid record",
			"external_id", rec.ExternalID,
			"parent_id", rec.ParentID,
			"sku", rec.SKU,
		)
		return false
	}

	cost := rec.CostPrice
	if cost == nil && rec.InventoryID != 0 {
		// Best-effort enrichment; a cost lookup failure does not fail
		// the record.
		c, err := e.catalog.FetchCost(ctx, rec.InventoryID)
		if err != nil {
			e.logger.Warn("cost lookup failed", "sku", rec.SKU, "error", err)
		} else {
			cost = c
		}
	}

	if err := e.upsert(ctx, rec, cost); err != nil {
		e.logger.Error("upsert failed", "sku", rec.SKU, "error", err)
		return false
	}
	return true
}

func (e *SyncEngine) upsert(ctx context.Context, rec *domain.RemoteRecord, cost *int64) error {
	existing, err := e.products.FindBySKU(ctx, rec.SKU)
	if err != nil {
		return fmt.Errorf("find by sku: %w", err)
	}

	var image *string
	if len(rec.Images) > 0 {
		image = &rec.Images[0]
	}

	if existing == nil {
		product := &domain.Product{
			SKU:        rec.SKU,
			ExternalID: rec.ExternalID,
			Title:      rec.Title,
			Price:      rec.Price,
			CostPrice:  cost,
			Vendor:     optional(rec.Vendor),
			Category:   optional(rec.Category),
			ImageURL:   image,
		}
		if _, err := e.products.Create(ctx, product); err != nil {
			return fmt.Errorf("create: %w", err)
		}
		return nil
	}

	existing.ExternalID = rec.ExternalID
	existing.Title = rec.Title
	existing.Price = rec.Price
	if cost != nil {
		existing.CostPrice = cost
	}
	existing.Vendor = optional(rec.Vendor)
	existing.Category = optional(rec.Category)
	if image != nil {
		existing.ImageURL = image
	}
	if err := e.products.Update(ctx, existing); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	return nil
}

// reportProcessing refreshes the ETA figures after a batch flush. The
// exact unrounded percentage is stored for observers; the rounded value
// only feeds display text.
func (e *SyncEngine) reportProcessing(run *domain.SyncProgress, started time.Time, flatTotal, recordsProcessed int) {
	elapsed := time.Since(started)
	remaining := run.TotalItems - run.ProcessedItems

	details := &domain.ProcessingDetails{
		FlatRecords:      flatTotal,
		RecordsProcessed: recordsProcessed,
		ItemsRemaining:   remaining,
		ElapsedSeconds:   elapsed.Seconds(),
	}

	if run.ProcessedItems > 0 {
		avg := elapsed.Seconds() / float64(run.ProcessedItems)
		details.AvgSecondsPerItem = avg
		eta := time.Now().Add(time.Duration(float64(remaining) * avg * float64(time.Second)))
		details.ETA = &eta
	}

	pct := float64(run.ProcessedItems) / float64(run.TotalItems) * 100
	details.Percentage = pct
	details.PercentageDisplay = fmt.Sprintf("%d%%", int(math.Round(pct)))

	run.Details = domain.ProgressDetails{Phase: domain.PhaseProcessing, Processing: details}
	run.Message = fmt.Sprintf("processed %d of %d products", run.ProcessedItems, run.TotalItems)
}

// complete seals the run. Percentage is forced to 100 regardless of
// rounding drift in intermediate updates.
func (e *SyncEngine) complete(ctx context.Context, run *domain.SyncProgress, recordsProcessed int) error {
	now := time.Now()
	duration := now.Sub(run.StartedAt)

	var perMinute float64
	if duration > 0 {
		perMinute = float64(recordsProcessed) / duration.Minutes()
	}

	// ProcessedItems stays at the number of groups actually seen; the
	// catalog can drift between counting and fetching, and the success
	// and failure tallies must keep summing to it.
	run.Status = domain.SyncComplete
	run.CompletedAt = &now
	run.Message = fmt.Sprintf("sync complete: %d succeeded, %d failed", run.SuccessItems, run.FailedItems)
	run.Details = domain.ProgressDetails{
		Phase: domain.PhaseCompletion,
		Completion: &domain.CompletionDetails{
			DurationSeconds: duration.Seconds(),
			ItemsPerMinute:  perMinute,
			Percentage:      100,
		},
	}

	if err := e.progress.Update(ctx, run); err != nil {
		return fmt.Errorf("persist completion: %w", err)
	}

	e.logger.Info("sync completed",
		"run_id", run.ID,
		"total", run.TotalItems,
		"success", run.SuccessItems,
		"failed", run.FailedItems,
		"duration", duration,
	)
	return nil
}

// seal marks the run failed. Fatal paths must never leave the row
// non-terminal, so a store error here is only logged.
func (e *SyncEngine) seal(ctx context.Context, run *domain.SyncProgress, cause error) {
	now := time.Now()
	run.Status = domain.SyncFailed
	run.Message = cause.Error()
	run.CompletedAt = &now
	run.Details = domain.ProgressDetails{
		Phase: domain.PhaseError,
		Error: &domain.ErrorDetails{Phase: run.Details.Phase, Message: cause.Error()},
	}

	if err := e.progress.Update(ctx, run); err != nil {
		e.logger.Error("failed to seal progress row", "run_id", run.ID, "error", err)
	}

	e.logger.Error("sync failed", "run_id", run.ID, "error", cause)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
