package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"football-calendar-service/internal/calendar"
	"football-calendar-service/internal/config"
	"football-calendar-service/internal/favorites"
	"football-calendar-service/internal/fixtures"
	httpapi "football-calendar-service/internal/http"
	"football-calendar-service/internal/logging"
	"football-calendar-service/internal/metrics"
	"football-calendar-service/internal/monitor"
	"football-calendar-service/internal/schedule"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	normalizer    *schedule.Normalizer
	favorites     favorites.Store
	monitor       *monitor.Monitor
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default fixture and favorites wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	source, err := buildSource(cfg)
	if err != nil {
		return nil, fmt.Errorf("fixture source: %w", err)
	}

	store, err := buildFavorites(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("favorites store: %w", err)
	}

	return newServerWithDeps(cfg, logger, source, store, nil), nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, source fixtures.Source, store favorites.Store, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	normalizer := schedule.New(source, logger, cfg.StrictKickoff)
	mon := monitor.New(normalizer, logger, recorder, cfg.MonitorInterval)
	httpSrv := buildHTTPServer(cfg, normalizer, store, mon, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		normalizer:    normalizer,
		favorites:     store,
		monitor:       mon,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildSource(cfg config.Config) (fixtures.Source, error) {
	if cfg.FixturesDir != "" {
		return fixtures.NewDirSource(cfg.FixturesDir), nil
	}
	return fixtures.NewEmbedded()
}

func buildFavorites(cfg config.Config, logger *slog.Logger) (favorites.Store, error) {
	if cfg.Favorites.Backend == config.FavoritesBackendRedis {
		return favorites.NewRedisStore(cfg.Favorites.RedisAddr)
	}
	logging.Info(logger, "using in-memory favorites store")
	return favorites.NewMemoryStore(), nil
}

// navigationBounds derives the navigable month range from the fixture months.
func navigationBounds(normalizer *schedule.Normalizer) calendar.Bounds {
	refs := normalizer.Months()
	if len(refs) == 0 {
		return calendar.Bounds{}
	}
	first, last := refs[0], refs[len(refs)-1]
	return calendar.NewBounds(
		calendar.YearMonth{Year: first.Year, Month: first.Month},
		calendar.YearMonth{Year: last.Year, Month: last.Month},
	)
}

func buildHTTPServer(cfg config.Config, normalizer *schedule.Normalizer, store favorites.Store, mon *monitor.Monitor, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var statusFn func() monitor.Status
	if mon != nil {
		statusFn = mon.Status
	}

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := httpapi.NewHandler(normalizer, store, recorder, navigationBounds(normalizer), statusFn, logger)
	router := httpapi.NewRouter(handler, logger, recorder, cfg.CORS.Origins)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the monitor and HTTP server, then waits for context cancellation
// to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.monitor.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "err", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "err", err)
		}
	}

	if err := s.monitor.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop monitor", "err", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "err", err)
	}

	if err := s.favorites.Close(); err != nil && s.logger != nil {
		s.logger.Warn("favorites store close failed", "err", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "err", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
