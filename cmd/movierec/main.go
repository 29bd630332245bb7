package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/windoze95/movierec/internal/apiclient"
	"github.com/windoze95/movierec/internal/config"
	"github.com/windoze95/movierec/internal/controller"
	"github.com/windoze95/movierec/internal/logger"
	"github.com/windoze95/movierec/internal/session"
	"github.com/windoze95/movierec/internal/terminal"
	"go.uber.org/zap"
)

// Entry point for the interactive client.
func main() {
	// Load the config
	var cfg *config.Config
	if c, err := config.LoadConfig(); err != nil {
		logger.Init(true)
		logger.Get().Fatal("failed to load config", zap.Error(err))
	} else {
		cfg = c
	}

	// Initialize structured logger (dev mode unless MOVIEREC_ENV=production)
	logger.Init(cfg.IsDev())
	defer logger.Sync()

	// Check that all ENV variables are set
	if err := cfg.CheckConfigEnvFields(); err != nil {
		logger.Get().Fatal("invalid config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := apiclient.NewClient(cfg.EnvVars.APIURL, cfg.EnvVars.RequestTimeout, cfg.EnvVars.RateLimit)
	store := session.NewFileStore(cfg.EnvVars.SessionFile)
	printer := terminal.NewPrinter(os.Stdout)
	ctrl := controller.NewController(api, store, printer)

	logger.Get().Info("starting client",
		zap.String("api_url", cfg.EnvVars.APIURL),
		zap.String("session_file", store.Path()))

	printer.Line("movierec - type 'help' for commands")
	if err := terminal.NewShell(ctrl, printer).Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		logger.Get().Error("input error", zap.Error(err))
	}
}
