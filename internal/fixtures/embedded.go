package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"football-calendar-service/internal/timeutil"
)

//go:embed data/*.json
var embeddedData embed.FS

// EmbeddedSource serves the month documents compiled into the binary.
type EmbeddedSource struct {
	months map[string]monthDocument
}

// NewEmbedded loads every embedded month document. It fails only on a broken
// build (unreadable or malformed embedded file).
func NewEmbedded() (*EmbeddedSource, error) {
	entries, err := embeddedData.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read embedded fixtures: %w", err)
	}

	months := make(map[string]monthDocument, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		raw, err := embeddedData.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("read embedded fixture %s: %w", name, err)
		}
		var doc monthDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode embedded fixture %s: %w", name, err)
		}
		months[strings.TrimSuffix(name, ".json")] = doc
	}
	return &EmbeddedSource{months: months}, nil
}

// HasMonth reports whether fixture data exists for the month.
func (s *EmbeddedSource) HasMonth(year, month int) bool {
	_, ok := s.months[timeutil.MonthKey(year, month)]
	return ok
}

// LoadMonth returns a copy of the raw records for the month.
func (s *EmbeddedSource) LoadMonth(year, month int) ([]RawMatch, bool) {
	doc, ok := s.months[timeutil.MonthKey(year, month)]
	if !ok {
		return nil, false
	}
	out := make([]RawMatch, len(doc.Matches))
	copy(out, doc.Matches)
	return out, true
}

// Months lists the supported months in ascending order.
func (s *EmbeddedSource) Months() []MonthRef {
	refs := make([]MonthRef, 0, len(s.months))
	for key := range s.months {
		ref, ok := parseMonthKey(key)
		if !ok {
			continue
		}
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Year*12+refs[i].Month < refs[j].Year*12+refs[j].Month
	})
	return refs
}

func parseMonthKey(key string) (MonthRef, bool) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return MonthRef{}, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return MonthRef{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return MonthRef{}, false
	}
	return MonthRef{Year: year, Month: month - 1}, true
}
