package team

import (
	"strings"

	"football-calendar-service/internal/domain/match"
)

// searchAliases maps lowercase nicknames and shorthand to official team names.
var searchAliases = map[string]string{
	// Real Madrid
	"rma":         "Real Madrid",
	"real":        "Real Madrid",
	"madrid":      "Real Madrid",
	"real madrid": "Real Madrid",

	// Barcelona
	"bar":       "Barcelona",
	"barca":     "Barcelona",
	"barça":     "Barcelona",
	"barcelona": "Barcelona",

	// Manchester United
	"mun":               "Manchester United",
	"manu":              "Manchester United",
	"man utd":           "Manchester United",
	"man united":        "Manchester United",
	"manchester united": "Manchester United",
	"united":            "Manchester United",

	// Manchester City
	"mci":             "Manchester City",
	"man city":        "Manchester City",
	"manchester city": "Manchester City",
	"city":            "Manchester City",

	// Liverpool
	"liv":       "Liverpool",
	"liverpool": "Liverpool",

	// Arsenal
	"ars":     "Arsenal",
	"arsenal": "Arsenal",
	"gunners": "Arsenal",

	// Chelsea
	"che":     "Chelsea",
	"chelsea": "Chelsea",
	"blues":   "Chelsea",

	// Tottenham
	"tot":       "Tottenham Hotspur",
	"spurs":     "Tottenham Hotspur",
	"tottenham": "Tottenham Hotspur",

	// Atletico Madrid
	"atm":             "Atletico Madrid",
	"atleti":          "Atletico Madrid",
	"atletico":        "Atletico Madrid",
	"atletico madrid": "Atletico Madrid",

	// Athletic Club
	"ath":      "Athletic Club",
	"athletic": "Athletic Club",
	"bilbao":   "Athletic Club",

	// Real Betis
	"bet":        "Real Betis",
	"betis":      "Real Betis",
	"real betis": "Real Betis",

	// Real Sociedad
	"rso":           "Real Sociedad",
	"sociedad":      "Real Sociedad",
	"real sociedad": "Real Sociedad",

	// Others
	"vil":         "Villarreal",
	"villarreal":  "Villarreal",
	"esp":         "Espanyol",
	"espanyol":    "Espanyol",
	"mon":         "Monaco",
	"monaco":      "Monaco",
	"ben":         "Benfica",
	"benfica":     "Benfica",
	"lee":         "Leeds United",
	"leeds":       "Leeds United",
	"bre":         "Brentford",
	"brentford":   "Brentford",
	"bou":         "Bournemouth",
	"bournemouth": "Bournemouth",
	"ful":         "Fulham",
	"fulham":      "Fulham",
	"sun":         "Sunderland",
	"sunderland":  "Sunderland",
	"lev":         "Levante",
	"levante":     "Levante",
	"ovi":         "Real Oviedo",
	"oviedo":      "Real Oviedo",
	"sla":         "Slavia Prague",
	"slavia":      "Slavia Prague",
	"cop":         "Copenhagen",
	"copenhagen":  "Copenhagen",
}

// ResolveSearchAlias maps a free-form query to an official team name. Exact
// alias matches win; otherwise the first official name containing the query
// (declaration order) is returned. The boolean is false when nothing matches.
func ResolveSearchAlias(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	if name, ok := searchAliases[q]; ok {
		return name, true
	}
	for _, name := range officialNames {
		if strings.Contains(strings.ToLower(name), q) {
			return name, true
		}
	}
	return "", false
}

// FilterByTeam keeps the matches where the resolved team plays home or away.
// An empty or unrecognized query returns the input unchanged; search never
// empties the calendar for a query it cannot understand.
func FilterByTeam(matches []match.Match, query string) []match.Match {
	if strings.TrimSpace(query) == "" {
		return matches
	}
	name, ok := ResolveSearchAlias(query)
	if !ok {
		return matches
	}

	filtered := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.HomeTeam == name || m.AwayTeam == name {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
