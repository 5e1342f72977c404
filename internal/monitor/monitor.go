// Package monitor periodically re-derives the current month's match statuses
// so logs and metrics track live matches as the two-hour windows roll over.
// The HTTP layer recomputes on every request regardless; the monitor exists
// for observability and readiness.
package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"football-calendar-service/internal/domain/match"
	"football-calendar-service/internal/logging"
	"football-calendar-service/internal/metrics"
	"football-calendar-service/internal/schedule"
	"football-calendar-service/internal/timeutil"
)

const defaultInterval = time.Minute

// Monitor sweeps the current month on an interval.
type Monitor struct {
	normalizer *schedule.Normalizer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration
	now        func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the most recent sweep.
type Status struct {
	LastSweep time.Time
	Scheduled int
	Live      int
	Completed int
}

// IsReady reports whether at least one sweep has run.
func (s Status) IsReady() bool {
	return !s.LastSweep.IsZero()
}

// New constructs a Monitor with sane defaults.
func New(normalizer *schedule.Normalizer, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Monitor{
		normalizer: normalizer,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start begins sweeping until the context is cancelled or Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	m.startMu.Lock()
	if m.started {
		m.startMu.Unlock()
		return
	}
	m.started = true
	m.startMu.Unlock()

	m.ticker = time.NewTicker(m.interval)

	go func() {
		logging.Info(m.logger, "monitor started", slog.Int64(logging.FieldDurationMS, m.interval.Milliseconds()))
		// Initial sweep so /ready turns healthy on boot.
		m.sweepOnce()

		for {
			select {
			case <-ctx.Done():
				m.stopTicker()
				logging.Info(m.logger, "monitor stopped")
				return
			case <-m.done:
				m.stopTicker()
				logging.Info(m.logger, "monitor stopped")
				return
			case <-m.ticker.C:
				m.sweepOnce()
			}
		}
	}()
}

// Stop halts the sweep loop.
func (m *Monitor) Stop(ctx context.Context) error {
	_ = ctx
	m.stopOnce.Do(func() {
		close(m.done)
		m.stopTicker()
	})
	return nil
}

func (m *Monitor) sweepOnce() {
	start := time.Now()
	now := m.now().In(timeutil.IST)
	year, month := now.Year(), int(now.Month())-1

	matches := m.normalizer.NormalizeMonth(year, month)

	var scheduled, live, completed int
	for _, mt := range matches {
		switch mt.Status {
		case match.StatusLive:
			live++
		case match.StatusCompleted:
			completed++
		default:
			scheduled++
		}
	}

	if m.metrics != nil {
		m.metrics.RecordMonitorSweep(time.Since(start), live)
	}
	m.recordSweep(start, scheduled, live, completed)

	logging.Info(m.logger, "monitor swept month",
		logging.FieldMonth, timeutil.MonthKey(year, month),
		logging.FieldCount, len(matches),
		"live", live,
		"completed", completed,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (m *Monitor) stopTicker() {
	if m.ticker != nil {
		m.ticker.Stop()
	}
}

func (m *Monitor) recordSweep(at time.Time, scheduled, live, completed int) {
	m.statusMu.Lock()
	defer m.statusMu.Unlock()
	m.status = Status{
		LastSweep: at,
		Scheduled: scheduled,
		Live:      live,
		Completed: completed,
	}
}

// Status returns a snapshot of the most recent sweep.
func (m *Monitor) Status() Status {
	m.statusMu.RLock()
	defer m.statusMu.RUnlock()
	return m.status
}
