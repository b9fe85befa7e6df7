package main

import (
	"staybook/config"
	"staybook/di"
	"staybook/helper"
	"staybook/shared/logger"

	_ "staybook/docs"

	"github.com/rs/zerolog/log"
)

// @title Staybook Storefront API
// @version 1.0
// @description Storefront backend for lodging and dining bookings on top of the marketplace API.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Run(cfg, helper.ActionUp); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
