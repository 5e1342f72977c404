// Package fixtures supplies the externally curated per-month match documents.
// Documents are keyed YYYY-MM; months without a document are simply absent,
// which callers treat as "no data", never as an error.
package fixtures

// RawMatch is one fixture entry as curated upstream. Two shapes exist: newer
// records carry a combined kickoff_datetime_ist timestamp, legacy records a
// separate date plus time/time_ist (where "TBD" means time unknown). The shape
// is resolved once at normalization and never branched on downstream.
type RawMatch struct {
	ID     string `json:"id"`
	Home   string `json:"home"`
	Away   string `json:"away"`
	League string `json:"league"`
	Venue  string `json:"venue"`

	KickoffDatetimeIST string `json:"kickoff_datetime_ist,omitempty"`
	Date               string `json:"date,omitempty"`
	Time               string `json:"time,omitempty"`
	TimeIST            string `json:"time_ist,omitempty"`

	// Status is a legacy hint some older documents carry. The normalizer
	// derives status purely from time and ignores it.
	Status string `json:"status,omitempty"`
}

type monthDocument struct {
	Matches []RawMatch `json:"matches"`
}

// MonthRef identifies one supported fixture month. Month is zero-based.
type MonthRef struct {
	Year  int
	Month int
}

// Source provides raw match records per (year, zero-based month).
type Source interface {
	// HasMonth reports whether fixture data exists for the month.
	HasMonth(year, month int) bool
	// LoadMonth returns the raw records for the month and whether data exists.
	// Months outside the supported range yield (nil, false).
	LoadMonth(year, month int) ([]RawMatch, bool)
	// Months lists every supported month in ascending order.
	Months() []MonthRef
}
