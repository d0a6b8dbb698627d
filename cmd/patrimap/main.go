// Package main provides the CLI entry point for patrimap.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "patrimap",
		Short: "Ownership and property dashboard",
		Long: `patrimap reads the ownership matrix and the property control workbooks,
reshapes ownership into (company, owner, percentage) records and shows
them as an Owner → Company → Property dashboard.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	f := rootCmd.PersistentFlags()
	f.StringVar(&a.flags.envFile, "env-file", "", "Env file to load (default: .env when present)")
	f.StringVar(&a.flags.ownership, "ownership", "", "Ownership matrix workbook (overrides PATRIMAP_OWNERSHIP_PATH)")
	f.StringVar(&a.flags.properties, "properties", "", "Property workbook (overrides PATRIMAP_PROPERTIES_PATH)")
	f.StringVar(&a.flags.sheet, "sheet", "", "Worksheet to read (default: first worksheet)")
	f.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&a.flags.logFormat, "log-format", "", "Log format: text, json")

	rootCmd.AddCommand(
		newReshapeCmd(a),
		newOwnersCmd(a),
		newRenderCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}
