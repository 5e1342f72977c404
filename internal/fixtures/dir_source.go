package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"football-calendar-service/internal/timeutil"
)

// DirSource loads month documents from a directory, one {YYYY-MM}.json file
// per month. It lets operators override the embedded fixtures without a
// rebuild. Files are read on every call so curated edits show up immediately.
type DirSource struct {
	basePath string
}

// NewDirSource constructs a directory-backed source rooted at basePath.
func NewDirSource(basePath string) *DirSource {
	return &DirSource{basePath: basePath}
}

// HasMonth reports whether a readable document exists for the month.
func (s *DirSource) HasMonth(year, month int) bool {
	_, ok := s.LoadMonth(year, month)
	return ok
}

// LoadMonth reads the month document from disk. A missing or malformed file
// counts as "no data" rather than an error; the calendar must render
// best-effort from whatever is curated.
func (s *DirSource) LoadMonth(year, month int) ([]RawMatch, bool) {
	path := filepath.Join(s.basePath, timeutil.MonthKey(year, month)+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var doc monthDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false
	}
	return doc.Matches, true
}

// Months lists every month with a document file, ascending.
func (s *DirSource) Months() []MonthRef {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil
	}
	refs := make([]MonthRef, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ref, ok := parseMonthKey(strings.TrimSuffix(name, ".json"))
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
