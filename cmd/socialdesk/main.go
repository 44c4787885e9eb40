package main

import (
	"github.com/rs/zerolog/log"

	"github.com/eringen/socialdesk"
)

func main() {
	cfg, err := socialdesk.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}

	logger := socialdesk.NewLogger(cfg.LogLevel)

	app := socialdesk.New(cfg, logger)
	if err := app.Start(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
