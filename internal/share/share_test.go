package share

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"football-calendar-service/internal/domain/match"
	"football-calendar-service/internal/timeutil"
)

func sampleMatch() match.Match {
	return match.Match{
		ID:          "el-clasico",
		Kickoff:     time.Date(2026, 1, 10, 19, 0, 0, 0, timeutil.IST),
		Day:         10,
		HomeTeam:    "Real Madrid",
		AwayTeam:    "Barcelona",
		Competition: "La Liga",
		Time:        "19:00",
		Venue:       "Santiago Bernabéu",
		VenueCity:   "Madrid",
		Status:      match.StatusScheduled,
	}
}

func TestGoogleCalendarURL(t *testing.T) {
	raw := GoogleCalendarURL(sampleMatch())

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("expected valid URL, got %v", err)
	}
	if parsed.Host != "calendar.google.com" {
		t.Fatalf("unexpected host %s", parsed.Host)
	}

	q := parsed.Query()
	if q.Get("action") != "TEMPLATE" {
		t.Fatalf("expected TEMPLATE action, got %s", q.Get("action"))
	}
	if got := q.Get("text"); !strings.Contains(got, "Real Madrid vs Barcelona") {
		t.Fatalf("unexpected title %q", got)
	}
	// 19:00 IST is 13:30 UTC; the event spans two hours.
	if got := q.Get("dates"); got != "20260110T133000Z/20260110T153000Z" {
		t.Fatalf("unexpected dates %q", got)
	}
	if got := q.Get("location"); got != "Santiago Bernabéu, Madrid" {
		t.Fatalf("unexpected location %q", got)
	}
	if got := q.Get("details"); !strings.Contains(got, "La Liga") || !strings.Contains(got, "19:00 IST") {
		t.Fatalf("unexpected details %q", got)
	}
}

func TestWhatsAppURL(t *testing.T) {
	raw := WhatsAppURL(sampleMatch())

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("expected valid URL, got %v", err)
	}
	if parsed.Host != "wa.me" {
		t.Fatalf("unexpected host %s", parsed.Host)
	}

	text := parsed.Query().Get("text")
	for _, want := range []string{
		"La Liga",
		"Real Madrid vs Barcelona",
		"Saturday, January 10, 2026",
		"19:00 IST",
		"Santiago Bernabéu, Madrid",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected message to contain %q, got %q", want, text)
		}
	}
}

func TestLocationWithoutCity(t *testing.T) {
	m := sampleMatch()
	m.Venue = "Wembley Stadium"
	m.VenueCity = ""
	if got := location(m); got != "Wembley Stadium" {
		t.Fatalf("expected bare venue, got %q", got)
	}
}

func TestICS(t *testing.T) {
	serialized := ICS(sampleMatch())

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"UID:el-clasico@football-calendar-service",
		"DTSTART:20260110T133000Z",
		"DTEND:20260110T153000Z",
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		if !strings.Contains(serialized, want) {
			t.Fatalf("expected ICS to contain %q, got:\n%s", want, serialized)
		}
	}
}
