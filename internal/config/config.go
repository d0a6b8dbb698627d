// Package config reads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application settings.
type Config struct {
	// Workbook locations.
	OwnershipPath  string `env:"PATRIMAP_OWNERSHIP_PATH" envDefault:"PORCENTAGEM_DE_PARTICIPACAO_NAS_EMPRESAS_2025.xlsx"`
	PropertiesPath string `env:"PATRIMAP_PROPERTIES_PATH" envDefault:"Controle_Patrimonial_2025.xlsx"`
	// Sheet is read from both workbooks; empty means the first worksheet.
	Sheet string `env:"PATRIMAP_SHEET"`

	Addr string `env:"PATRIMAP_ADDR" envDefault:":8501"`

	LogLevel  string `env:"PATRIMAP_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"PATRIMAP_LOG_FORMAT" envDefault:"text"`
}

// Load reads envFile (or ./.env when envFile is empty) into the process
// environment, then parses the environment into a Config. A missing
// ./.env is not an error; a missing explicit envFile is.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
