package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/patrimap-go/internal/config"
	"github.com/ukaji3/patrimap-go/internal/logging"
	"github.com/ukaji3/patrimap-go/pkg/patrimap"
)

// app carries what every command needs once flags are parsed.
type app struct {
	flags struct {
		envFile    string
		ownership  string
		properties string
		sheet      string
		logLevel   string
		logFormat  string
	}

	cfg    *config.Config
	logger *slog.Logger
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.flags.envFile)
	if err != nil {
		return err
	}

	override := func(name string, dst *string, val string) {
		if cmd.Flags().Changed(name) {
			*dst = val
		}
	}
	override("ownership", &cfg.OwnershipPath, a.flags.ownership)
	override("properties", &cfg.PropertiesPath, a.flags.properties)
	override("sheet", &cfg.Sheet, a.flags.sheet)
	override("log-level", &cfg.LogLevel, a.flags.logLevel)
	override("log-format", &cfg.LogFormat, a.flags.logFormat)

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) options() patrimap.Options {
	return patrimap.Options{
		OwnershipPath:  a.cfg.OwnershipPath,
		PropertiesPath: a.cfg.PropertiesPath,
		Sheet:          a.cfg.Sheet,
		Logger:         a.logger,
	}
}
