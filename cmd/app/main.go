package main

import (
	"os"

	"hoteladmin/config"
	"hoteladmin/di"
	"hoteladmin/helper"
	"hoteladmin/shared/logger"

	"github.com/rs/zerolog/log"
)

//	@title						Hotel Admin API
//	@version					1.0
//	@description				Hotels, room types and date-effective rate adjustments.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.SetOutput(cfg, os.Stdout)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
