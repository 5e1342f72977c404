// Package share builds the outbound share and export artifacts for a match:
// Google Calendar links, WhatsApp messages, and downloadable ICS events.
package share

import (
	"fmt"
	"net/url"
	"time"

	"football-calendar-service/internal/domain/match"
)

// eventDuration is the assumed span of a match when exporting calendar events.
const eventDuration = 2 * time.Hour

const googleCalendarBase = "https://calendar.google.com/calendar/render?action=TEMPLATE"

// googleDateLayout is the compact UTC form Google Calendar expects.
const googleDateLayout = "20060102T150405Z"

// displayDateLayout is the long date used in share messages.
const displayDateLayout = "Monday, January 2, 2006"

// GoogleCalendarURL renders a prefilled Google Calendar event link for a match.
func GoogleCalendarURL(m match.Match) string {
	start := m.Kickoff.UTC()
	end := start.Add(eventDuration)

	title := fmt.Sprintf("⚽ %s vs %s", m.HomeTeam, m.AwayTeam)
	details := fmt.Sprintf("%s\nTime: %s IST\nVenue: %s", m.Competition, m.Time, location(m))

	return fmt.Sprintf("%s&text=%s&dates=%s/%s&details=%s&location=%s",
		googleCalendarBase,
		url.QueryEscape(title),
		start.Format(googleDateLayout),
		end.Format(googleDateLayout),
		url.QueryEscape(details),
		url.QueryEscape(location(m)),
	)
}

// WhatsAppURL renders a wa.me share link with the match summary message.
func WhatsAppURL(m match.Match) string {
	message := fmt.Sprintf(
		"⚽ Football Match Alert!\n\n🏆 %s\n⚔️ %s vs %s\n📅 %s\n⏰ %s IST\n🏟️ %s\n\nDon't miss it! 🔥",
		m.Competition,
		m.HomeTeam,
		m.AwayTeam,
		m.Kickoff.Format(displayDateLayout),
		m.Time,
		location(m),
	)
	return "https://wa.me/?text=" + url.QueryEscape(message)
}

func location(m match.Match) string {
	if m.VenueCity != "" {
		return m.Venue + ", " + m.VenueCity
	}
	return m.Venue
}
