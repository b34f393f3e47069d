package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lastings-labs/bankgen/internal/config"
	"github.com/lastings-labs/bankgen/internal/db"
	"github.com/lastings-labs/bankgen/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run referential-integrity checks against a loaded database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		conn, err := db.NewConnection(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer conn.Close()

		results, err := verify.Run(conn.DB, cfg.Database.Provider)
		if err != nil {
			return err
		}

		failed := 0
		for _, result := range results {
			if result.Violations == 0 {
				color.Green("  ✅ %s", result.Name)
			} else {
				failed++
				color.Red("  ❌ %s (%d violations)", result.Name, result.Violations)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d checks failed", failed, len(results))
		}
		color.Green("\n✅ All %d checks passed", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
