package metrics

import (
	"context"
	"testing"
	"time"
)

func TestRecorderMonthLoads(t *testing.T) {
	r := NewRecorder()

	r.RecordMonthLoad("2026-01", 8, 2*time.Millisecond)
	r.RecordMonthLoad("2026-01", 8, 3*time.Millisecond)
	r.RecordMonthLoad("2026-02", 5, time.Millisecond)

	if got := r.MonthLoads("2026-01"); got != 2 {
		t.Fatalf("expected 2 loads, got %d", got)
	}

	snap := r.Snapshot("2026-01")
	if snap.LastCount != 8 || snap.LastLatency != 3*time.Millisecond {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if got := r.MonthLoads("2026-03"); got != 0 {
		t.Fatalf("expected 0 loads for untracked month, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordMonthLoad("2026-01", 1, time.Millisecond)
	r.RecordHTTPRequest("GET", "/months/:year/:month", 200, time.Millisecond)
	r.RecordMonitorSweep(time.Millisecond, 0)
	r.RecordFavoritesOp("add", nil)
	if snap := r.Snapshot("2026-01"); snap.Loads != 0 {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestSetupDisabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestSetupEnabledPrometheusOnly(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, Port: "9090"})
	if err != nil {
		t.Fatalf("expected setup to succeed, got %v", err)
	}
	if rec == nil || handler == nil {
		t.Fatal("expected recorder and prometheus handler")
	}
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordMonthLoad("2026-01", 8, time.Millisecond)
	rec.RecordMonitorSweep(time.Millisecond, 1)
	rec.RecordFavoritesOp("add", context.Canceled)

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
}
