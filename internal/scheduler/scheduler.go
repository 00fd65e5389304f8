package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// JobFunc is a scheduled job body. Errors are logged at the scheduler
// boundary and never unregister the job.
type JobFunc func(ctx context.Context) error

type recurrenceKind int

const (
	kindInterval recurrenceKind = iota
	kindDaily
)

// Recurrence describes when a job fires: either a plain interval or the
// next occurrence of a wall-clock time in a fixed location, then daily.
type Recurrence struct {
	kind     recurrenceKind
	interval time.Duration
	hour     int
	minute   int
	loc      *time.Location
}

// Every fires immediately on registration, then every d.
func Every(d time.Duration) Recurrence {
	return Recurrence{kind: kindInterval, interval: d}
}

// DailyAt fires at the next occurrence of hour:minute in loc, then every
// 24 hours. loc is typically a fixed zone independent of the host's
// local time.
func DailyAt(hour, minute int, loc *time.Location) Recurrence {
	if loc == nil {
		loc = time.UTC
	}
	return Recurrence{kind: kindDaily, hour: hour, minute: minute, loc: loc}
}

// JobStatus is a snapshot of one registered job.
type JobStatus struct {
	Name    string    `json:"name"`
	NextRun time.Time `json:"next_run"`
	Active  bool      `json:"active"`
}

type job struct {
	name    string
	rec     Recurrence
	fn      JobFunc
	nextRun time.Time
	active  bool
	busy    atomic.Bool
	stop    chan struct{}
}

// Scheduler owns a registry of named recurring jobs. One Scheduler per
// process; Shutdown stops everything.
type Scheduler struct {
	mu     sync.Mutex
	jobs   map[string]*job
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make(map[string]*job),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start registers and arms a named job. Re-registering a name fully
// cancels the previous timers first, so the old body can never fire
// again.
func (s *Scheduler) Start(name string, rec Recurrence, fn JobFunc) {
	s.mu.Lock()
	if old, ok := s.jobs[name]; ok {
		close(old.stop)
	}
	j := &job{
		name: name,
		rec:  rec,
		fn:   fn,
		stop: make(chan struct{}),
	}
	now := time.Now()
	switch rec.kind {
	case kindInterval:
		j.nextRun = now.Add(rec.interval)
	case kindDaily:
		j.nextRun = now.Add(untilNext(now, rec.hour, rec.minute, rec.loc))
	}
	s.jobs[name] = j
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(j)

	s.logger.Info("job registered", "name", name, "next_run", j.nextRun)
}

// Stop cancels and forgets a job. Stopping an unknown name is a no-op.
func (s *Scheduler) Stop(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[name]; ok {
		close(j.stop)
		delete(s.jobs, name)
		s.logger.Info("job stopped", "name", name)
	}
}

// Shutdown cancels every job and the scheduler's root context, then
// waits for in-flight bodies to return.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	for name, j := range s.jobs {
		close(j.stop)
		delete(s.jobs, name)
	}
	s.mu.Unlock()
	s.cancel()
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

// Status returns, for every known job, its next fire time and whether it
// has ever fired.
func (s *Scheduler) Status() []JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]JobStatus, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, JobStatus{Name: j.name, NextRun: j.nextRun, Active: j.active})
	}
	return out
}

func (s *Scheduler) run(j *job) {
	defer s.wg.Done()

	switch j.rec.kind {
	case kindInterval:
		// Fire immediately, then on every tick.
		s.invoke(j, j.rec.interval)

		ticker := time.NewTicker(j.rec.interval)
		defer ticker.Stop()
		for {
			select {
			case <-j.stop:
				return
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				// A tick can be pending when stop closes; re-check so
				// a cancelled job never fires again.
				select {
				case <-j.stop:
					return
				default:
				}
				s.invoke(j, j.rec.interval)
			}
		}

	case kindDaily:
		delay := untilNext(time.Now(), j.rec.hour, j.rec.minute, j.rec.loc)
		s.runDaily(j, delay, 24*time.Hour)
	}
}

// runDaily waits out the anchor delay, then fires every period. The
// recurring ticker is armed at the anchor, before the first body runs,
// so a slow first run never shifts later firings off the anchor time.
func (s *Scheduler) runDaily(j *job, delay, period time.Duration) {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-j.stop:
		return
	case <-s.ctx.Done():
		return
	case <-timer.C:
	}
	select {
	case <-j.stop:
		return
	default:
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	s.invoke(j, period)

	for {
		select {
		case <-j.stop:
			return
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			select {
			case <-j.stop:
				return
			default:
			}
			s.invoke(j, period)
		}
	}
}

// invoke runs the job body once. The next run time is advanced before
// the body starts so status queries during a long run stay sane, and a
// busy flag guarantees the same name is never re-entered.
func (s *Scheduler) invoke(j *job, period time.Duration) {
	s.mu.Lock()
	j.nextRun = time.Now().Add(period)
	j.active = true
	s.mu.Unlock()

	if !j.busy.CompareAndSwap(false, true) {
		s.logger.Warn("previous invocation still running, skipping", "name", j.name)
		return
	}
	defer j.busy.Store(false)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("job panicked", "name", j.name, "panic", r)
		}
	}()

	if err := j.fn(s.ctx); err != nil {
		s.logger.Error("job failed", "name", j.name, "error", err)
	}
}

// untilNext computes the delay to the next occurrence of hour:minute in
// loc. If the target has already passed today the delay is computed
// against tomorrow, so the result is always positive and at most 24h.
func untilNext(now time.Time, hour, minute int, loc *time.Location) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(local)
}
