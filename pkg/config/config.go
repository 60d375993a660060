package config

import (
	"futbolamigos/internal/repository"
	"futbolamigos/pkg/sheets"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Repo          repository.Config `envPrefix:"REPO_"`
	Sheets        sheets.Config
	TelegramToken string `env:"TELEGRAM_TOKEN" envDefault:""`
	LogLevel      string `env:"LOGGER_LEVEL" envDefault:"debug"`
}

func ReadEnvConfig(cfg *Config) error {
	return env.Parse(cfg)
}
