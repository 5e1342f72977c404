package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedSupportedRange(t *testing.T) {
	src, err := NewEmbedded()
	if err != nil {
		t.Fatalf("failed to load embedded fixtures: %v", err)
	}

	months := src.Months()
	if len(months) != 6 {
		t.Fatalf("expected 6 supported months, got %d", len(months))
	}
	if months[0] != (MonthRef{Year: 2025, Month: 11}) {
		t.Fatalf("expected range to start at December 2025, got %+v", months[0])
	}
	if months[len(months)-1] != (MonthRef{Year: 2026, Month: 4}) {
		t.Fatalf("expected range to end at May 2026, got %+v", months[len(months)-1])
	}
}

func TestEmbeddedHasMonth(t *testing.T) {
	src, err := NewEmbedded()
	if err != nil {
		t.Fatalf("failed to load embedded fixtures: %v", err)
	}

	if !src.HasMonth(2026, 0) {
		t.Fatal("expected data for January 2026")
	}
	if src.HasMonth(2026, 5) {
		t.Fatal("expected no data for June 2026")
	}
	if src.HasMonth(2025, 10) {
		t.Fatal("expected no data for November 2025")
	}
}

func TestEmbeddedLoadMonth(t *testing.T) {
	src, err := NewEmbedded()
	if err != nil {
		t.Fatalf("failed to load embedded fixtures: %v", err)
	}

	records, ok := src.LoadMonth(2026, 0)
	if !ok || len(records) == 0 {
		t.Fatalf("expected records for January 2026, ok=%v count=%d", ok, len(records))
	}
	for _, r := range records {
		if r.ID == "" || r.Home == "" || r.Away == "" || r.League == "" {
			t.Fatalf("incomplete record %+v", r)
		}
		if r.KickoffDatetimeIST == "" && r.Date == "" {
			t.Fatalf("record %s has neither kickoff timestamp nor date", r.ID)
		}
	}

	if records, ok := src.LoadMonth(2024, 0); ok || records != nil {
		t.Fatal("expected no data outside the supported range")
	}
}

func TestEmbeddedLoadMonthReturnsCopy(t *testing.T) {
	src, err := NewEmbedded()
	if err != nil {
		t.Fatalf("failed to load embedded fixtures: %v", err)
	}

	first, _ := src.LoadMonth(2026, 0)
	first[0].Home = "mutated"

	second, _ := src.LoadMonth(2026, 0)
	if second[0].Home == "mutated" {
		t.Fatal("expected source to be immune to caller mutation")
	}
}

func TestDirSourceLoadMonth(t *testing.T) {
	dir := t.TempDir()
	doc := monthDocument{Matches: []RawMatch{{ID: "m1", Home: "Liverpool", Away: "Arsenal", League: "Premier League", Venue: "Anfield, Liverpool", Date: "2026-06-01", TimeIST: "20:30"}}}
	data, _ := json.Marshal(doc)
	if err := os.WriteFile(filepath.Join(dir, "2026-06.json"), data, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	src := NewDirSource(dir)
	if !src.HasMonth(2026, 5) {
		t.Fatal("expected data for June 2026")
	}
	records, ok := src.LoadMonth(2026, 5)
	if !ok || len(records) != 1 || records[0].ID != "m1" {
		t.Fatalf("unexpected records %+v", records)
	}

	months := src.Months()
	if len(months) != 1 || months[0] != (MonthRef{Year: 2026, Month: 5}) {
		t.Fatalf("unexpected months %+v", months)
	}
}

func TestDirSourceDegradesOnBadInput(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "2026-06.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	src := NewDirSource(dir)
	if src.HasMonth(2026, 5) {
		t.Fatal("expected malformed file to count as no data")
	}
	if _, ok := src.LoadMonth(2027, 0); ok {
		t.Fatal("expected missing file to count as no data")
	}

	missing := NewDirSource(filepath.Join(dir, "nope"))
	if months := missing.Months(); months != nil {
		t.Fatalf("expected nil months for missing dir, got %+v", months)
	}
}

func TestParseMonthKey(t *testing.T) {
	cases := []struct {
		key  string
		want MonthRef
		ok   bool
	}{
		{"2025-12", MonthRef{2025, 11}, true},
		{"2026-01", MonthRef{2026, 0}, true},
		{"2026-13", MonthRef{}, false},
		{"2026-00", MonthRef{}, false},
		{"garbage", MonthRef{}, false},
		{"2026", MonthRef{}, false},
	}
	for _, tc := range cases {
		got, ok := parseMonthKey(tc.key)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parseMonthKey(%q) = %+v %v, want %+v %v", tc.key, got, ok, tc.want, tc.ok)
		}
	}
}
