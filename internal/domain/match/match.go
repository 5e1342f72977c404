package match

import "time"

// Status mirrors the lifecycle states a match can be rendered in. A status is
// always derived from the kickoff instant at query time, never persisted.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusLive      Status = "Live"
	StatusCompleted Status = "Completed"
)

// Match is the canonical match shape exposed by the service. It is built fresh
// on every month load and never mutated afterwards.
type Match struct {
	ID               string    `json:"id"`
	Kickoff          time.Time `json:"kickoff"`
	Day              int       `json:"day"`
	HomeTeam         string    `json:"homeTeam"`
	AwayTeam         string    `json:"awayTeam"`
	Competition      string    `json:"competition"`
	CompetitionColor string    `json:"competitionColor"`
	CompetitionIcon  string    `json:"competitionIcon"`
	Time             string    `json:"time"`
	Venue            string    `json:"venue"`
	VenueCity        string    `json:"venueCity"`
	Status           Status    `json:"status"`
}

// MonthResponse is the payload returned by /months/{year}/{month}.
type MonthResponse struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	HasData bool    `json:"hasData"`
	Matches []Match `json:"matches"`
}

// NewMonthResponse builds a MonthResponse payload. Month is zero-based, as
// everywhere in the core.
func NewMonthResponse(year, month int, hasData bool, matches []Match) MonthResponse {
	if matches == nil {
		matches = []Match{}
	}
	return MonthResponse{
		Year:    year,
		Month:   month,
		HasData: hasData,
		Matches: matches,
	}
}
