package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"salon/config"
	"salon/di"
	"salon/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := di.InitializeCLI(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		logger.ErrorWithStack(err)
		os.Exit(1)
	}
}
