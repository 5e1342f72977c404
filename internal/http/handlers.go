package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"football-calendar-service/internal/calendar"
	"football-calendar-service/internal/domain/match"
	"football-calendar-service/internal/favorites"
	"football-calendar-service/internal/logging"
	"football-calendar-service/internal/metrics"
	"football-calendar-service/internal/monitor"
	"football-calendar-service/internal/schedule"
	"football-calendar-service/internal/share"
	"football-calendar-service/internal/team"
	"football-calendar-service/internal/timeutil"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the schedule core.
type Handler struct {
	normalizer *schedule.Normalizer
	favorites  favorites.Store
	recorder   *metrics.Recorder
	bounds     calendar.Bounds
	statusFn   func() monitor.Status
	logger     *slog.Logger
	now        nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(normalizer *schedule.Normalizer, store favorites.Store, recorder *metrics.Recorder, bounds calendar.Bounds, statusFn func() monitor.Status, logger *slog.Logger) *Handler {
	return &Handler{
		normalizer: normalizer,
		favorites:  store,
		recorder:   recorder,
		bounds:     bounds,
		statusFn:   statusFn,
		logger:     logger,
		now:        time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the live-status monitor has completed a sweep.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if !status.IsReady() {
		writeError(w, r, http.StatusServiceUnavailable, "monitor has not completed a sweep", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ready",
		"lastSweep": status.LastSweep,
	}, h.logger)
}

type monthsResponse struct {
	Months []calendar.YearMonth `json:"months"`
	Min    calendar.YearMonth   `json:"min"`
	Max    calendar.YearMonth   `json:"max"`
}

// Months lists the navigable month range.
func (h *Handler) Months(w http.ResponseWriter, r *http.Request) {
	refs := h.normalizer.Months()
	months := make([]calendar.YearMonth, 0, len(refs))
	for _, ref := range refs {
		months = append(months, calendar.YearMonth{Year: ref.Year, Month: ref.Month})
	}
	writeJSON(w, http.StatusOK, monthsResponse{
		Months: months,
		Min:    h.bounds.Min,
		Max:    h.bounds.Max,
	}, h.logger)
}

// Month returns the normalized matches for one month. The URL month is
// human-facing (1-12); payloads carry the zero-based month the core uses.
func (h *Handler) Month(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.monthParams(w, r)
	if !ok {
		return
	}

	start := time.Now()
	matches := h.normalizer.NormalizeMonth(year, month)
	hasData := h.normalizer.HasData(year, month)
	h.recorder.RecordMonthLoad(timeutil.MonthKey(year, month), len(matches), time.Since(start))

	if query := r.URL.Query().Get("team"); query != "" {
		matches = team.FilterByTeam(matches, query)
	}

	writeJSON(w, http.StatusOK, match.NewMonthResponse(year, month, hasData, matches), h.logger)
}

type gridResponse struct {
	Year         int                `json:"year"`
	Month        int                `json:"month"`
	HasData      bool               `json:"hasData"`
	Days         int                `json:"days"`
	FirstWeekday int                `json:"firstWeekday"`
	Today        int                `json:"today"`
	Prev         calendar.YearMonth `json:"prev"`
	Next         calendar.YearMonth `json:"next"`
	Cells        []calendar.Cell    `json:"cells"`
}

// Grid returns the month laid out as calendar cells plus the navigation
// metadata the month view needs.
func (h *Handler) Grid(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.monthParams(w, r)
	if !ok {
		return
	}

	matches := h.normalizer.NormalizeMonth(year, month)
	ym := calendar.YearMonth{Year: year, Month: month}

	today := 0
	if at := h.now().In(timeutil.IST); at.Year() == year && int(at.Month())-1 == month {
		today = at.Day()
	}

	writeJSON(w, http.StatusOK, gridResponse{
		Year:         year,
		Month:        month,
		HasData:      h.normalizer.HasData(year, month),
		Days:         calendar.DaysInMonth(year, month),
		FirstWeekday: calendar.FirstWeekday(year, month),
		Today:        today,
		Prev:         h.bounds.Prev(ym),
		Next:         h.bounds.Next(ym),
		Cells:        calendar.Grid(year, month, matches),
	}, h.logger)
}

// ShareGoogle returns a prefilled Google Calendar event link for a match.
func (h *Handler) ShareGoogle(w http.ResponseWriter, r *http.Request) {
	m, ok := h.matchByID(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": share.GoogleCalendarURL(m)}, h.logger)
}

// ShareWhatsApp returns a WhatsApp share link for a match.
func (h *Handler) ShareWhatsApp(w http.ResponseWriter, r *http.Request) {
	m, ok := h.matchByID(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": share.WhatsAppURL(m)}, h.logger)
}

// ExportICS serves a single-event iCalendar file for a match.
func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	m, ok := h.matchByID(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "match-"+m.ID+".ics"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(share.ICS(m))); err != nil {
		loggerFromContext(r, h.logger).Error("failed to write calendar export", "err", err, logging.FieldMatchID, m.ID)
	}
}

type favoritesResponse struct {
	User     string   `json:"user"`
	MatchIDs []string `json:"matchIds"`
}

// ListFavorites returns a user's starred match ids.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]
	ids, err := h.favorites.List(r.Context(), user)
	h.recorder.RecordFavoritesOp("list", err)
	if err != nil {
		h.favoritesError(w, r, "list", user, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, favoritesResponse{User: user, MatchIDs: ids}, h.logger)
}

// AddFavorite stars a match for a user.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	user, matchID := vars["user"], vars["matchID"]
	err := h.favorites.Add(r.Context(), user, matchID)
	h.recorder.RecordFavoritesOp("add", err)
	if err != nil {
		h.favoritesError(w, r, "add", user, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFavorite unstars a match for a user.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	user, matchID := vars["user"], vars["matchID"]
	err := h.favorites.Remove(r.Context(), user, matchID)
	h.recorder.RecordFavoritesOp("remove", err)
	if err != nil {
		h.favoritesError(w, r, "remove", user, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearFavorites drops all of a user's stars.
func (h *Handler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]
	err := h.favorites.Clear(r.Context(), user)
	h.recorder.RecordFavoritesOp("clear", err)
	if err != nil {
		h.favoritesError(w, r, "clear", user, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CheckFavorite reports whether a match is starred for a user.
func (h *Handler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	user, matchID := vars["user"], vars["matchID"]
	fav, err := h.favorites.IsFavorite(r.Context(), user, matchID)
	h.recorder.RecordFavoritesOp("check", err)
	if err != nil {
		h.favoritesError(w, r, "check", user, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"favorite": fav}, h.logger)
}

// monthParams parses {year} and {month} path vars, translating the 1-12 URL
// month to the zero-based month the core works in.
func (h *Handler) monthParams(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	vars := mux.Vars(r)
	year, yearErr := strconv.Atoi(vars["year"])
	urlMonth, monthErr := strconv.Atoi(vars["month"])
	if yearErr != nil || monthErr != nil || urlMonth < 1 || urlMonth > 12 {
		writeError(w, r, http.StatusBadRequest, "month must be a 1-12 path segment under a numeric year", h.logger)
		return 0, 0, false
	}
	return year, urlMonth - 1, true
}

// matchByID scans the supported months for a match id.
func (h *Handler) matchByID(w http.ResponseWriter, r *http.Request) (match.Match, bool) {
	id := mux.Vars(r)["id"]
	for _, ref := range h.normalizer.Months() {
		for _, m := range h.normalizer.NormalizeMonth(ref.Year, ref.Month) {
			if m.ID == id {
				return m, true
			}
		}
	}
	writeError(w, r, http.StatusNotFound, "match not found", h.logger)
	return match.Match{}, false
}

func (h *Handler) favoritesError(w http.ResponseWriter, r *http.Request, op, user string, err error) {
	loggerFromContext(r, h.logger).Error("favorites operation failed",
		"err", err, "op", op, logging.FieldUser, user)
	status := http.StatusInternalServerError
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusServiceUnavailable
	}
	writeError(w, r, status, "favorites store unavailable", h.logger)
}
