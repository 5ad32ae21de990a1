package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/suranga-printers/print-shop-api/config"
	"github.com/suranga-printers/print-shop-api/controllers"
	"github.com/suranga-printers/print-shop-api/models"
	"github.com/suranga-printers/print-shop-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	log.Info().Str("env", cfg.GoEnv).Msg("starting print shop API server")

	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	db := config.GetDB()
	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	log.Info().Msg("database migration completed successfully")

	if err := controllers.SeedAdmin(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	storage, err := services.NewFileStorage(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize file storage")
	}
	services.SetFileStorage(storage)
	services.SetNotifier(services.NewNotifier(cfg))

	if err := controllers.RegisterValidators(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}

	router, err := setupRouter(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up router")
	}

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("server is running")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
