package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	consumer, cleanup, err := di.InitializeAuditor()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize auditor")
	}

	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Auditor stopped")

		return
	}

	log.Info().Msg("Auditor shut down.")
}
