package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"football-calendar-service/internal/config"
	"football-calendar-service/internal/logging"
	"football-calendar-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "football-calendar-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to start", "err", err)
		stop()
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}
