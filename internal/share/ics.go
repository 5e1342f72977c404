package share

import (
	"fmt"

	ics "github.com/arran4/golang-ical"

	"football-calendar-service/internal/domain/match"
)

// ICS serializes a match as a single-event iCalendar document suitable for a
// calendar-file download.
func ICS(m match.Match) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//football-calendar-service//EN")

	ev := cal.AddEvent(m.ID + "@football-calendar-service")
	ev.SetDtStampTime(m.Kickoff.UTC())
	ev.SetStartAt(m.Kickoff.UTC())
	ev.SetEndAt(m.Kickoff.UTC().Add(eventDuration))
	ev.SetSummary(fmt.Sprintf("⚽ %s vs %s", m.HomeTeam, m.AwayTeam))
	ev.SetLocation(location(m))
	ev.SetDescription(fmt.Sprintf("%s\nKickoff: %s IST", m.Competition, m.Time))

	return cal.Serialize()
}
