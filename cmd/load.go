package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lastings-labs/bankgen/internal/config"
	"github.com/lastings-labs/bankgen/internal/loader"
)

var (
	loadFile     string
	loadTruncate bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Execute a generated fixture file against a live database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		path := loadFile
		if path == "" {
			path = cfg.OutputPath
		}

		l, err := loader.Open(cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer l.Close()

		ctx := context.Background()
		if loadTruncate {
			if err := l.Truncate(ctx); err != nil {
				return err
			}
		}

		return l.Load(ctx, path)
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVar(&loadFile, "file", "", "Fixture file to load (default is the configured output path)")
	loadCmd.Flags().BoolVar(&loadTruncate, "truncate", false, "Clear fixture tables before loading")
}
