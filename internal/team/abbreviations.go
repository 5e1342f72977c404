// Package team resolves team names for display and search: 3-letter
// abbreviations, nickname/alias lookup, and match filtering by team.
package team

import (
	"regexp"
	"strings"
)

// abbreviations maps official team names to their display tokens. officialNames
// below must list the same teams in the same order; the search fallback scans
// it in declaration order.
var abbreviations = map[string]string{
	// Spanish teams
	"Real Madrid":     "RMA",
	"Barcelona":       "BAR",
	"Atletico Madrid": "ATM",
	"Athletic Club":   "ATH",
	"Real Betis":      "BET",
	"Espanyol":        "ESP",
	"Real Sociedad":   "RSO",
	"Villarreal":      "VIL",
	"Real Oviedo":     "OVI",
	"Levante":         "LEV",

	// English teams
	"Liverpool":         "LIV",
	"Arsenal":           "ARS",
	"Manchester City":   "MCI",
	"Manchester United": "MUN",
	"Chelsea":           "CHE",
	"Tottenham Hotspur": "TOT",
	"Leeds United":      "LEE",
	"Brentford":         "BRE",
	"Bournemouth":       "BOU",
	"Fulham":            "FUL",
	"Sunderland":        "SUN",

	// European teams
	"Monaco":        "MON",
	"Slavia Prague": "SLA",
	"Copenhagen":    "COP",
	"Benfica":       "BEN",
}

var officialNames = []string{
	"Real Madrid",
	"Barcelona",
	"Atletico Madrid",
	"Athletic Club",
	"Real Betis",
	"Espanyol",
	"Real Sociedad",
	"Villarreal",
	"Real Oviedo",
	"Levante",
	"Liverpool",
	"Arsenal",
	"Manchester City",
	"Manchester United",
	"Chelsea",
	"Tottenham Hotspur",
	"Leeds United",
	"Brentford",
	"Bournemouth",
	"Fulham",
	"Sunderland",
	"Monaco",
	"Slavia Prague",
	"Copenhagen",
	"Benfica",
}

var (
	prefixWords = regexp.MustCompile(`(?i)^(Real|FC|CF|Athletic|Club)\s+`)
	suffixWords = regexp.MustCompile(`(?i)\s+(United|City|FC|CF|Club)$`)
)

// Abbreviate returns the 3-letter token for a team. Unknown teams fall back to
// the first three letters of the name with common prefix/suffix words removed.
func Abbreviate(name string) string {
	if name == "" {
		return ""
	}
	if abbr, ok := abbreviations[name]; ok {
		return abbr
	}

	clean := prefixWords.ReplaceAllString(name, "")
	clean = suffixWords.ReplaceAllString(clean, "")

	runes := []rune(clean)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// FormatMatchup renders a compact fixture label, e.g. "RMA vs BAR".
func FormatMatchup(home, away string) string {
	return Abbreviate(home) + " vs " + Abbreviate(away)
}
