package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"shopsync/internal/config"
	"shopsync/internal/domain"
	"shopsync/internal/service/mocks"
)

type SyncEngineTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	catalog  *mocks.MockRemoteCatalogClient
	products *mocks.MockProductStore
	progress *mocks.MockProgressStore

	engine  *SyncEngine
	cfg     config.SyncConfig
	logger  *slog.Logger
	updates []domain.SyncProgress
}

func (s *SyncEngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.catalog = mocks.NewMockRemoteCatalogClient(s.ctrl)
	s.products = mocks.NewMockProductStore(s.ctrl)
	s.progress = mocks.NewMockProgressStore(s.ctrl)

	s.cfg = config.SyncConfig{
		BatchSize:           10,
		InitialBatchGroups:  2,
		InitialBatchFlushes: 2,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.updates = nil

	s.engine = NewSyncEngine(s.catalog, s.products, s.progress, s.logger, s.cfg)
}

func (s *SyncEngineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncEngineTestSuite(t *testing.T) {
	suite.Run(t, new(SyncEngineTestSuite))
}

// expectFreshRun wires GetCurrent/Initialize for a run with no prior
// row and records every Update into s.updates.
func (s *SyncEngineTestSuite) expectFreshRun() {
	s.progress.EXPECT().GetCurrent(gomock.Any()).Return(nil, nil)
	s.progress.EXPECT().Initialize(gomock.Any()).Return(&domain.SyncProgress{
		ID:        "run-1",
		Status:    domain.SyncPending,
		StartedAt: time.Now(),
	}, nil)
	s.progress.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.SyncProgress) error {
			s.updates = append(s.updates, *p)
			return nil
		},
	).AnyTimes()
}

func (s *SyncEngineTestSuite) lastUpdate() domain.SyncProgress {
	s.Require().NotEmpty(s.updates)
	return s.updates[len(s.updates)-1]
}

func (s *SyncEngineTestSuite) TestSync_EmptyCatalog() {
	s.expectFreshRun()
	s.catalog.EXPECT().CountParents(gomock.Any()).Return(0, nil)
	s.catalog.EXPECT().CountFlatRecords(gomock.Any()).Return(0, nil)

	err := s.engine.Sync(context.Background())
	s.NoError(err)

	final := s.lastUpdate()
	s.Equal(domain.SyncComplete, final.Status)
	s.Equal(0, final.TotalItems)
	s.Equal(0, final.ProcessedItems)
	s.NotNil(final.CompletedAt)
	s.Require().NotNil(final.Details.Completion)
	s.Equal(float64(100), final.Details.Completion.Percentage)
}

func (s *SyncEngineTestSuite) TestSync_BatchPolicyAndMonotonicPercentage() {
	records := make([]domain.RemoteRecord, 12)
	for i := range records {
		records[i] = domain.RemoteRecord{
			ExternalID: int64(i + 1),
			ParentID:   int64(i + 1),
			SKU:        fmt.Sprintf("SKU-%d", i+1),
			Title:      fmt.Sprintf("Product %d", i+1),
			Price:      1000,
		}
	}

	s.expectFreshRun()
	s.catalog.EXPECT().CountParents(gomock.Any()).Return(12, nil)
	s.catalog.EXPECT().CountFlatRecords(gomock.Any()).Return(12, nil)
	s.catalog.EXPECT().FetchAll(gomock.Any()).Return(records, nil)

	s.products.EXPECT().FindBySKU(gomock.Any(), gomock.Any()).Return(nil, nil).Times(12)
	s.products.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(12)

	err := s.engine.Sync(context.Background())
	s.NoError(err)

	// First two flushes close after 2 groups each, the rest of the 12
	// single-record groups fit one final batch.
	var processed []int
	var percentages []float64
	for _, u := range s.updates {
		if u.Details.Phase == domain.PhaseProcessing {
			processed = append(processed, u.ProcessedItems)
			percentages = append(percentages, u.Details.Processing.Percentage)
		}
	}
	s.Equal([]int{2, 4, 12}, processed)

	for i := 1; i < len(percentages); i++ {
		s.GreaterOrEqual(percentages[i], percentages[i-1])
	}

	final := s.lastUpdate()
	s.Equal(domain.SyncComplete, final.Status)
	s.Equal(12, final.ProcessedItems)
	s.Equal(12, final.SuccessItems+final.FailedItems)
	s.Require().NotNil(final.Details.Completion)
	s.Equal(float64(100), final.Details.Completion.Percentage)
}

func (s *SyncEngineTestSuite) TestSync_InvalidRecordNeverReachesUpsert() {
	records := []domain.RemoteRecord{
		{ExternalID: 1, ParentID: 1, SKU: "", Title: "No SKU", Price: 500},
		{ExternalID: 2, ParentID: 2, SKU: "SKU-2", Title: "Fine", Price: 500},
	}

	s.expectFreshRun()
	s.catalog.EXPECT().CountParents(gomock.Any()).Return(2, nil)
	s.catalog.EXPECT().CountFlatRecords(gomock.Any()).Return(2, nil)
	s.catalog.EXPECT().FetchAll(gomock.Any()).Return(records, nil)

	// Only the valid record is looked up.
	s.products.EXPECT().FindBySKU(gomock.Any(), "SKU-2").Return(nil, nil)
	s.products.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	err := s.engine.Sync(context.Background())
	s.NoError(err)

	final := s.lastUpdate()
	s.Equal(domain.SyncComplete, final.Status)
	s.Equal(1, final.SuccessItems)
	s.Equal(1, final.FailedItems)
}

func (s *SyncEngineTestSuite) TestSync_CostLookupFailureDoesNotFailRecord() {
	records := []domain.RemoteRecord{
		{ExternalID: 1, ParentID: 1, InventoryID: 77, SKU: "SKU-1", Title: "Product", Price: 500},
	}

	s.expectFreshRun()
	s.catalog.EXPECT().CountParents(gomock.Any()).Return(1, nil)
	s.catalog.EXPECT().CountFlatRecords(gomock.Any()).Return(1, nil)
	s.catalog.EXPECT().FetchAll(gomock.Any()).Return(records, nil)
	s.catalog.EXPECT().FetchCost(gomock.Any(), int64(77)).Return(nil, errors.New("rate limited"))

	s.products.EXPECT().FindBySKU(gomock.Any(), "SKU-1").Return(nil, nil)
	s.products.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	err := s.engine.Sync(context.Background())
	s.NoError(err)

	final := s.lastUpdate()
	s.Equal(1, final.SuccessItems)
	s.Equal(0, final.FailedItems)
}

func (s *SyncEngineTestSuite) TestSync_CatalogDriftKeepsTalliesConsistent() {
	// The catalog shrinks between counting and fetching: 5 parents
	// counted, only 3 actually fetched.
	records := []domain.RemoteRecord{
		{ExternalID: 1, ParentID: 1, SKU: "SKU-1", Title: "A", Price: 100},
		{ExternalID: 2, ParentID: 2, SKU: "SKU-2", Title: "B", Price: 200},
		{ExternalID: 3, ParentID: 3, SKU: "SKU-3", Title: "C", Price: 300},
	}

	s.expectFreshRun()
	s.catalog.EXPECT().CountParents(gomock.Any()).Return(5, nil)
	s.catalog.EXPECT().CountFlatRecords(gomock.Any()).Return(5, nil)
	s.catalog.EXPECT().FetchAll(gomock.Any()).Return(records, nil)

	s.products.EXPECT().FindBySKU(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)
	s.products.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(3)

	err := s.engine.Sync(context.Background())
	s.NoError(err)

	// Processed stays at what was actually seen; the tallies keep
	// summing to it, and only the completion percentage is pinned.
	final := s.lastUpdate()
	s.Equal(domain.SyncComplete, final.Status)
	s.Equal(5, final.TotalItems)
	s.Equal(3, final.ProcessedItems)
	s.Equal(3, final.SuccessItems+final.FailedItems)
	s.Require().NotNil(final.Details.Completion)
	s.Equal(float64(100), final.Details.Completion.Percentage)
}

func (s *SyncEngineTestSuite) TestSync_CountErrorSealsRunFailed() {
	s.expectFreshRun()
	s.catalog.EXPECT().CountParents(gomock.Any()).Return(0, errors.New("boom"))

	err := s.engine.Sync(context.Background())
	s.Error(err)
	s.Contains(err.Error(), "count parents")

	final := s.lastUpdate()
	s.Equal(domain.SyncFailed, final.Status)
	s.NotNil(final.CompletedAt)
	s.Require().NotNil(final.Details.Error)
	s.Contains(final.Details.Error.Message, "boom")
}

func (s *SyncEngineTestSuite) TestSync_FetchAllErrorSealsRunFailed() {
	s.expectFreshRun()
	s.catalog.EXPECT().CountParents(gomock.Any()).Return(3, nil)
	s.catalog.EXPECT().CountFlatRecords(gomock.Any()).Return(3, nil)
	s.catalog.EXPECT().FetchAll(gomock.Any()).Return(nil, errors.New("network down"))

	err := s.engine.Sync(context.Background())
	s.Error(err)

	final := s.lastUpdate()
	s.Equal(domain.SyncFailed, final.Status)
	s.NotNil(final.CompletedAt)
}

func (s *SyncEngineTestSuite) TestSync_StaleRowSealedBeforeNewRun() {
	stale := &domain.SyncProgress{
		ID:        "stale-run",
		Status:    domain.SyncInProgress,
		StartedAt: time.Now().Add(-time.Hour),
	}

	gomock.InOrder(
		s.progress.EXPECT().GetCurrent(gomock.Any()).Return(stale, nil),
		s.progress.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.SyncProgress) error {
				s.Equal("stale-run", p.ID)
				s.Equal(domain.SyncError, p.Status)
				s.NotNil(p.CompletedAt)
				return nil
			},
		),
		s.progress.EXPECT().Initialize(gomock.Any()).Return(&domain.SyncProgress{
			ID:        "run-2",
			Status:    domain.SyncPending,
			StartedAt: time.Now(),
		}, nil),
	)
	s.progress.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.catalog.EXPECT().CountParents(gomock.Any()).Return(0, nil)
	s.catalog.EXPECT().CountFlatRecords(gomock.Any()).Return(0, nil)

	err := s.engine.Sync(context.Background())
	s.NoError(err)
}

func (s *SyncEngineTestSuite) TestSync_ConcurrentTriggerRejected() {
	release := make(chan struct{})
	entered := make(chan struct{})

	s.progress.EXPECT().GetCurrent(gomock.Any()).DoAndReturn(
		func(context.Context) (*domain.SyncProgress, error) {
			close(entered)
			<-release
			return nil, nil
		},
	)
	s.progress.EXPECT().Initialize(gomock.Any()).Return(&domain.SyncProgress{
		ID:        "run-1",
		Status:    domain.SyncPending,
		StartedAt: time.Now(),
	}, nil)
	s.progress.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.catalog.EXPECT().CountParents(gomock.Any()).Return(0, nil)
	s.catalog.EXPECT().CountFlatRecords(gomock.Any()).Return(0, nil)

	done := make(chan error, 1)
	go func() {
		done <- s.engine.Sync(context.Background())
	}()

	<-entered
	s.True(s.engine.Running())
	err := s.engine.Sync(context.Background())
	s.ErrorIs(err, ErrSyncInProgress)

	close(release)
	s.NoError(<-done)
	s.False(s.engine.Running())
}

func TestGroupByParent(t *testing.T) {
	records := []domain.RemoteRecord{
		{ExternalID: 1, ParentID: 10},
		{ExternalID: 2, ParentID: 20},
		{ExternalID: 3, ParentID: 10},
		{ExternalID: 4, ParentID: 30},
		{ExternalID: 5, ParentID: 20},
	}

	groups := groupByParent(records)

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	// Insertion order is first-seen order.
	wantOrder := []int64{10, 20, 30}
	for i, g := range groups {
		if g.parentID != wantOrder[i] {
			t.Errorf("group %d: expected parent %d, got %d", i, wantOrder[i], g.parentID)
		}
	}
	if len(groups[0].records) != 2 || len(groups[1].records) != 2 || len(groups[2].records) != 1 {
		t.Errorf("unexpected group sizes: %d, %d, %d",
			len(groups[0].records), len(groups[1].records), len(groups[2].records))
	}
}
