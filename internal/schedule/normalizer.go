// Package schedule turns raw fixture records into canonical matches. All
// derivations are pure: kickoff resolution, the per-league feed correction,
// venue splitting, styling, and the time-windowed status.
package schedule

import (
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"football-calendar-service/internal/domain/match"
	"football-calendar-service/internal/fixtures"
	"football-calendar-service/internal/logging"
	"football-calendar-service/internal/timeutil"
)

const (
	// matchDuration is the fixed window after kickoff during which a match
	// counts as live.
	matchDuration = 2 * time.Hour

	// correctedLeague's feed reports kickoffs one hour behind IST. The shift
	// is applied before any other derivation.
	correctedLeague = "La Liga"
	correctionDelta = time.Hour

	timeUnknownMarker = "TBD"
)

// ErrMissingDate is returned by kickoff resolution when a record carries no
// usable date at all.
var ErrMissingDate = errors.New("fixture record has no date")

// Normalizer converts raw per-month fixture records into canonical matches.
// It holds no mutable state; every load computes fresh output.
type Normalizer struct {
	source fixtures.Source
	logger *slog.Logger
	// strict turns the last-resort "substitute now for a dateless record"
	// fallback into a skip-with-warning instead.
	strict bool
	now    func() time.Time
}

// New constructs a Normalizer with the real clock.
func New(source fixtures.Source, logger *slog.Logger, strict bool) *Normalizer {
	return NewWithClock(source, logger, strict, time.Now)
}

// NewWithClock constructs a Normalizer with an injected time source.
func NewWithClock(source fixtures.Source, logger *slog.Logger, strict bool, now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{source: source, logger: logger, strict: strict, now: now}
}

// HasData reports whether fixture data exists for the zero-based month.
func (n *Normalizer) HasData(year, month int) bool {
	return n.source.HasMonth(year, month)
}

// Months lists the supported months in ascending order.
func (n *Normalizer) Months() []fixtures.MonthRef {
	return n.source.Months()
}

// NormalizeMonth produces the canonical matches for a zero-based month, sorted
// ascending by (day, formatted time string). A month without fixture data
// yields an empty slice. Malformed records degrade per field rather than
// aborting the month.
func (n *Normalizer) NormalizeMonth(year, month int) []match.Match {
	raws, ok := n.source.LoadMonth(year, month)
	if !ok {
		return []match.Match{}
	}

	now := n.now()
	out := make([]match.Match, 0, len(raws))
	for _, raw := range raws {
		kickoff, err := n.resolveKickoff(raw)
		if err != nil {
			if n.strict {
				logging.Warn(n.logger, "skipping fixture record without date",
					slog.String(logging.FieldMatchID, raw.ID),
					slog.String(logging.FieldMonth, timeutil.MonthKey(year, month)),
				)
				continue
			}
			// Last-resort parity fallback: render the record at the current
			// instant rather than dropping it.
			kickoff = now.In(timeutil.IST)
		}
		kickoff = applyLeagueCorrection(kickoff, raw.League)

		venue, city := SplitVenue(raw.Venue)
		style := StyleFor(raw.League)

		out = append(out, match.Match{
			ID:               raw.ID,
			Kickoff:          kickoff,
			Day:              kickoff.Day(),
			HomeTeam:         raw.Home,
			AwayTeam:         raw.Away,
			Competition:      raw.League,
			CompetitionColor: style.Color,
			CompetitionIcon:  style.Icon,
			Time:             timeutil.FormatClock(kickoff),
			Venue:            venue,
			VenueCity:        city,
			Status:           DeriveStatus(kickoff, now),
		})
	}

	// Same-day order uses the HH:MM string comparison; zero-padded clock
	// strings make it agree with numeric order.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// resolveKickoff collapses the two raw record shapes into a single instant.
func (n *Normalizer) resolveKickoff(raw fixtures.RawMatch) (time.Time, error) {
	if raw.KickoffDatetimeIST != "" {
		if t, err := timeutil.ParseKickoff(raw.KickoffDatetimeIST); err == nil {
			return t, nil
		}
		// Malformed combined timestamp: fall through to the legacy fields.
	}

	if raw.Date == "" {
		return time.Time{}, ErrMissingDate
	}
	day, err := timeutil.ParseDate(raw.Date)
	if err != nil {
		return time.Time{}, ErrMissingDate
	}

	clock := raw.TimeIST
	if clock == "" {
		clock = raw.Time
	}
	if clock == "" || strings.EqualFold(clock, timeUnknownMarker) {
		return day, nil // time unknown renders at midnight
	}
	parsed, err := time.Parse(timeutil.ClockLayout, clock)
	if err != nil {
		return day, nil
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, timeutil.IST), nil
}

func applyLeagueCorrection(kickoff time.Time, league string) time.Time {
	if league == correctedLeague {
		return kickoff.Add(correctionDelta)
	}
	return kickoff
}

// DeriveStatus classifies a match relative to the evaluation instant:
// Completed strictly after kickoff plus the match duration, Live from kickoff
// up to and including that cutoff, Scheduled before kickoff.
func DeriveStatus(kickoff, now time.Time) match.Status {
	cutoff := kickoff.Add(matchDuration)
	switch {
	case now.After(cutoff):
		return match.StatusCompleted
	case !now.Before(kickoff):
		return match.StatusLive
	default:
		return match.StatusScheduled
	}
}

// SplitVenue separates a raw "Name, City" venue into its parts. Without the
// literal ", " separator the whole string is the name and the city is empty.
func SplitVenue(venue string) (name, city string) {
	parts := strings.SplitN(venue, ", ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return venue, ""
}
