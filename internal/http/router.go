package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"football-calendar-service/internal/metrics"
)

// NewRouter registers the HTTP routes and wraps them with logging and CORS.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder, corsOrigins []string) nethttp.Handler {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware(logger, recorder))

	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)

	r.HandleFunc("/months", handler.Months).Methods(nethttp.MethodGet)
	r.HandleFunc("/months/{year}/{month}", handler.Month).Methods(nethttp.MethodGet)
	r.HandleFunc("/months/{year}/{month}/grid", handler.Grid).Methods(nethttp.MethodGet)

	r.HandleFunc("/matches/{id}/share/google", handler.ShareGoogle).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches/{id}/share/whatsapp", handler.ShareWhatsApp).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches/{id}/export.ics", handler.ExportICS).Methods(nethttp.MethodGet)

	r.HandleFunc("/favorites/{user}", handler.ListFavorites).Methods(nethttp.MethodGet)
	r.HandleFunc("/favorites/{user}", handler.ClearFavorites).Methods(nethttp.MethodDelete)
	r.HandleFunc("/favorites/{user}/{matchID}", handler.CheckFavorite).Methods(nethttp.MethodGet)
	r.HandleFunc("/favorites/{user}/{matchID}", handler.AddFavorite).Methods(nethttp.MethodPut)
	r.HandleFunc("/favorites/{user}/{matchID}", handler.RemoveFavorite).Methods(nethttp.MethodDelete)

	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPut, nethttp.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	})
	return c.Handler(r)
}
