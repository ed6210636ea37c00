package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"example.com/catalog-api/internal/app"
	"example.com/catalog-api/internal/config"
	"example.com/catalog-api/internal/infra/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.WithError(err).Fatal("configure logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("start catalog service")
	}

	runErr := a.Run(ctx)
	if err := a.Close(); err != nil {
		logger.WithError(err).Error("close store")
	}
	if runErr != nil {
		logger.WithError(runErr).Fatal("catalog service stopped")
	}
	logger.Info("catalog service stopped")
}
