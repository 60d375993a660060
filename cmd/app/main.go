package main

import (
	"context"
	"embed"

	"futbolamigos/internal/application"
	"futbolamigos/internal/delivery/telegram"
	"futbolamigos/internal/repository"
	"futbolamigos/pkg/config"
	"futbolamigos/pkg/logger"
	service "futbolamigos/pkg/services"
	"futbolamigos/pkg/sheets"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

func main() {
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.ReadEnvConfig(&cfg); err != nil {
		panic(err)
	}

	log := logger.NewLogger(&logger.Config{Level: cfg.LogLevel})

	db, err := repository.NewPostgresDB(&cfg.Repo)
	if err != nil {
		log.Error("failed to init db: %s", err.Error())
		return
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := repository.RunMigrations(db, migrationFS); err != nil {
		log.Error("failed to run migrations: %s", err.Error())
		return
	}
	log.Info("Migrations applied successfully")

	repos := repository.NewRepository(db)

	var sheetsClient sheets.Client
	if cfg.Sheets.CredentialsPath != "" {
		client, err := sheets.NewGoogleSheetsClient(cfg.Sheets.CredentialsPath)
		if err != nil {
			log.Warn("google sheets sync disabled: %s", err.Error())
		} else {
			sheetsClient = client
		}
	}

	services := application.NewService(repos, sheetsClient, cfg.Sheets, log)

	bot := telegram.NewBot(cfg.TelegramToken, services, log)

	manager := service.NewManager(log)
	manager.AddService(bot)

	if err := manager.Run(context.Background()); err != nil {
		log.Error("failed to run services: %s", err.Error())
		return
	}
	log.Info("Bot stopped")
}
