package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shopsync/internal/domain"
	"shopsync/internal/scheduler"
	"shopsync/internal/service/mocks"
)

type fakeTrigger struct {
	running atomic.Bool
	synced  atomic.Int32
	done    chan struct{}
}

func (f *fakeTrigger) Sync(ctx context.Context) error {
	f.synced.Add(1)
	if f.done != nil {
		close(f.done)
	}
	return nil
}

func (f *fakeTrigger) Running() bool { return f.running.Load() }

func newTestServer(t *testing.T, trigger SyncTrigger, progress *mocks.MockProgressStore) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	sched := scheduler.New(logger)
	t.Cleanup(sched.Shutdown)
	return New(trigger, progress, sched, logger)
}

func TestHandleTriggerSync_Starts(t *testing.T) {
	ctrl := gomock.NewController(t)
	progress := mocks.NewMockProgressStore(ctrl)

	trigger := &fakeTrigger{done: make(chan struct{})}
	srv := newTestServer(t, trigger, progress)

	req := httptest.NewRequest(http.MethodPost, "/api/sync", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)

	select {
	case <-trigger.done:
	case <-time.After(time.Second):
		t.Fatal("sync was never invoked")
	}
	assert.Equal(t, int32(1), trigger.synced.Load())
}

func TestHandleTriggerSync_ConflictWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	progress := mocks.NewMockProgressStore(ctrl)

	trigger := &fakeTrigger{}
	trigger.running.Store(true)
	srv := newTestServer(t, trigger, progress)

	req := httptest.NewRequest(http.MethodPost, "/api/sync", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, int32(0), trigger.synced.Load())
}

func TestHandleSyncStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	progress := mocks.NewMockProgressStore(ctrl)

	now := time.Now()
	progress.EXPECT().GetCurrent(gomock.Any()).Return(&domain.SyncProgress{
		ID:             "run-1",
		Status:         domain.SyncInProgress,
		TotalItems:     10,
		ProcessedItems: 4,
		Message:        "processed 4 of 10 products",
		StartedAt:      now,
	}, nil)

	srv := newTestServer(t, &fakeTrigger{}, progress)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.SyncProgress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "run-1", got.ID)
	assert.Equal(t, domain.SyncInProgress, got.Status)
	assert.Equal(t, 4, got.ProcessedItems)
}

func TestHandleSyncStatus_NoRunYet(t *testing.T) {
	ctrl := gomock.NewController(t)
	progress := mocks.NewMockProgressStore(ctrl)
	progress.EXPECT().GetCurrent(gomock.Any()).Return(nil, nil)

	srv := newTestServer(t, &fakeTrigger{}, progress)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	progress := mocks.NewMockProgressStore(ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	sched := scheduler.New(logger)
	t.Cleanup(sched.Shutdown)
	sched.Start("noop", scheduler.Every(time.Hour), func(ctx context.Context) error { return nil })

	srv := New(&fakeTrigger{}, progress, sched, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var jobs []scheduler.JobStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "noop", jobs[0].Name)
}

func TestHandleHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	progress := mocks.NewMockProgressStore(ctrl)

	srv := newTestServer(t, &fakeTrigger{}, progress)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
