package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"royalpalace/config"
	"royalpalace/di"
	"royalpalace/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier := di.InitializeNotifier()
	notifier.Run(ctx)

	log.Info().Msg("Notifier shut down.")
}
