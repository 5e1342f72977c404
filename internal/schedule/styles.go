package schedule

// Style carries the display metadata for a competition.
type Style struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// leagueStyles maps every known competition to its display color and icon.
var leagueStyles = map[string]Style{
	"Premier League":        {Color: "#3d195b", Icon: "🏴󠁧󠁢󠁥󠁮󠁧󠁿"},
	"La Liga":               {Color: "#ee8707", Icon: "🇪🇸"},
	"Serie A":               {Color: "#024494", Icon: "🇮🇹"},
	"Bundesliga":            {Color: "#d20515", Icon: "🇩🇪"},
	"Ligue 1":               {Color: "#091c3e", Icon: "🇫🇷"},
	"UEFA Champions League": {Color: "#0d1541", Icon: "🏆"},
	"UEFA Europa League":    {Color: "#f68e1e", Icon: "🌟"},
	"FIFA World Cup":        {Color: "#56042c", Icon: "🌍"},
	"FIFA Club World Cup":   {Color: "#1a472a", Icon: "🏆"},
	"Copa America":          {Color: "#1e3a5f", Icon: "🌎"},
	"AFC Asian Cup":         {Color: "#ff6b00", Icon: "🌏"},
	"Africa Cup of Nations": {Color: "#008c45", Icon: "🌍"},
	"Saudi Pro League":      {Color: "#006c35", Icon: "🇸🇦"},
}

var defaultStyle = Style{Color: "#3b82f6", Icon: "⚽"}

// StyleFor returns the display style for a competition, falling back to a
// neutral style for competitions not in the table.
func StyleFor(league string) Style {
	if style, ok := leagueStyles[league]; ok {
		return style
	}
	return defaultStyle
}
