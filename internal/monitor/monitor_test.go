package monitor

import (
	"context"
	"testing"
	"time"

	"football-calendar-service/internal/fixtures"
	"football-calendar-service/internal/schedule"
	"football-calendar-service/internal/timeutil"
)

type stubSource struct {
	records []fixtures.RawMatch
}

func (s *stubSource) HasMonth(year, month int) bool {
	return len(s.records) > 0
}

func (s *stubSource) LoadMonth(year, month int) ([]fixtures.RawMatch, bool) {
	if len(s.records) == 0 {
		return nil, false
	}
	return s.records, true
}

func (s *stubSource) Months() []fixtures.MonthRef { return nil }

func TestSweepCountsStatuses(t *testing.T) {
	eval := time.Date(2026, 1, 10, 19, 0, 0, 0, timeutil.IST)
	clock := func() time.Time { return eval }

	src := &stubSource{records: []fixtures.RawMatch{
		{ID: "live", Home: "Liverpool", Away: "Arsenal", League: "Premier League", Venue: "Anfield, Liverpool", KickoffDatetimeIST: "2026-01-10T18:00:00"},
		{ID: "done", Home: "Chelsea", Away: "Fulham", League: "Premier League", Venue: "Stamford Bridge, London", KickoffDatetimeIST: "2026-01-10T14:00:00"},
		{ID: "later", Home: "Monaco", Away: "Benfica", League: "UEFA Champions League", Venue: "Stade Louis II, Monaco", KickoffDatetimeIST: "2026-01-10T23:00:00"},
	}}
	normalizer := schedule.NewWithClock(src, nil, false, clock)

	m := New(normalizer, nil, nil, time.Hour)
	m.now = clock
	m.sweepOnce()

	status := m.Status()
	if !status.IsReady() {
		t.Fatal("expected monitor ready after a sweep")
	}
	if status.Live != 1 || status.Completed != 1 || status.Scheduled != 1 {
		t.Fatalf("unexpected sweep counts %+v", status)
	}
}

func TestStatusNotReadyBeforeFirstSweep(t *testing.T) {
	normalizer := schedule.New(&stubSource{}, nil, false)
	m := New(normalizer, nil, nil, time.Hour)
	if m.Status().IsReady() {
		t.Fatal("expected not ready before first sweep")
	}
}

func TestStartSweepsAndStops(t *testing.T) {
	eval := time.Date(2026, 1, 10, 12, 0, 0, 0, timeutil.IST)
	clock := func() time.Time { return eval }

	src := &stubSource{records: []fixtures.RawMatch{
		{ID: "m", Home: "Liverpool", Away: "Arsenal", League: "Premier League", Venue: "Anfield, Liverpool", KickoffDatetimeIST: "2026-01-10T18:00:00"},
	}}
	normalizer := schedule.NewWithClock(src, nil, false, clock)

	m := New(normalizer, nil, nil, time.Hour)
	m.now = clock

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)
	// Start is idempotent.
	m.Start(ctx)

	deadline := time.After(2 * time.Second)
	for !m.Status().IsReady() {
		select {
		case <-deadline:
			t.Fatal("expected initial sweep to run")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if err := m.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	// Stop is idempotent.
	if err := m.Stop(context.Background()); err != nil {
		t.Fatalf("second stop failed: %v", err)
	}
}

func TestDefaultInterval(t *testing.T) {
	normalizer := schedule.New(&stubSource{}, nil, false)
	m := New(normalizer, nil, nil, 0)
	if m.interval != defaultInterval {
		t.Fatalf("expected default interval, got %v", m.interval)
	}
}
