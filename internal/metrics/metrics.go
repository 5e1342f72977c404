package metrics

import (
	"sync"
	"time"
)

type monthStats struct {
	loads       int
	lastCount   int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about month loads and
// favorites operations, mirroring them to OpenTelemetry when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*monthStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*monthStats),
		otel:  otel,
	}
}

// RecordMonthLoad tracks one normalization pass for a month.
func (r *Recorder) RecordMonthLoad(monthKey string, matches int, duration time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(monthKey)
	stats.loads++
	stats.lastCount = matches
	stats.lastLatency = duration
	if r.otel != nil {
		r.otel.recordMonthLoad(monthKey, matches, duration)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordMonitorSweep tracks live-status monitor cycles.
func (r *Recorder) RecordMonitorSweep(duration time.Duration, live int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordMonitorSweep(duration, live)
}

// RecordFavoritesOp tracks one favorites store operation and whether it failed.
func (r *Recorder) RecordFavoritesOp(op string, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordFavoritesOp(op, err)
}

// Snapshot is a copy of the current stats for one month.
type Snapshot struct {
	Loads       int
	LastCount   int
	LastLatency time.Duration
}

// MonthLoads returns the total normalization passes recorded for a month key.
func (r *Recorder) MonthLoads(monthKey string) int {
	return r.Snapshot(monthKey).Loads
}

func (r *Recorder) Snapshot(monthKey string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(monthKey)
	return Snapshot{
		Loads:       stats.loads,
		LastCount:   stats.lastCount,
		LastLatency: stats.lastLatency,
	}
}

func (r *Recorder) ensureStats(monthKey string) *monthStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[monthKey]
	if !ok {
		stats = &monthStats{}
		r.stats[monthKey] = stats
	}
	return stats
}

func (r *Recorder) snapshot(monthKey string) monthStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[monthKey]; ok && stats != nil {
		return *stats
	}
	return monthStats{}
}
