package main

import (
	"context"
	"os"

	"hoteladmin/config"
	"hoteladmin/di"
	"hoteladmin/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.SetOutput(cfg, os.Stdout)

	seeder := di.InitializeSeeder()

	if err := seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	log.Info().Msg("Database seeded successfully")
}
