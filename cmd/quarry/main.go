package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/quarry-build/quarry/cmd/quarry/commands"
	"github.com/quarry-build/quarry/pkg/telemetry"
)

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	setupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, Version, Commit, BuildDate); err != nil {
		log.Error().Err(err).Msg("Command execution failed")
		os.Exit(1)
	}
}

// setupLogging installs the default console logger as the global logger.
// LOG_LEVEL overrides the level before flags are parsed.
func setupLogging() {
	cfg := telemetry.DefaultLoggingConfig()
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if tlog, err := telemetry.NewLogger(cfg); err == nil {
		log.Logger = tlog.Zerolog()
	}
}
