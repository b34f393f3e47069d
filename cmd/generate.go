package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lastings-labs/bankgen/internal/config"
	"github.com/lastings-labs/bankgen/internal/datagen"
	"github.com/lastings-labs/bankgen/internal/fixture"
	"github.com/lastings-labs/bankgen/internal/sqlfile"
)

var (
	genOut         string
	genProfile     string
	genProfileFile string
	genSeed        int64
	genBanks       int
	genCustomers   int
	genMaxTx       int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the fixture pipeline and write the SQL file",
	Long: `Generate a synthetic retail-banking dataset and write it as one multi-row
INSERT statement per table, in dependency order. Counts come from the config
file, optionally overlaid with a named profile and per-flag overrides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if genProfile != "" {
			profile, err := config.LoadProfile(genProfileFile, genProfile)
			if err != nil {
				return err
			}
			profile.Apply(cfg)
			color.Cyan("📋 Using profile %q", genProfile)
		}

		if genBanks > 0 {
			cfg.Banks = genBanks
		}
		if genCustomers > 0 {
			cfg.Customers = genCustomers
		}
		if genMaxTx > 0 {
			cfg.MaxTransactionsPerAccount = genMaxTx
		}
		if genSeed != 0 {
			cfg.Seed = genSeed
		}
		if genOut != "" {
			cfg.OutputPath = genOut
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		opening, err := cfg.OpeningDate()
		if err != nil {
			return err
		}

		runID := uuid.New().String()
		now := time.Now()

		color.Cyan("🏦 Generating fixture data (run %s)...", runID)

		gen := datagen.New(cfg.Seed, cfg.MaxRetries)
		pipeline := fixture.NewPipeline(fixture.Params{
			Banks:                  cfg.Banks,
			Customers:              cfg.Customers,
			MaxTransactionsPerAcct: cfg.MaxTransactionsPerAccount,
			StockCommission:        cfg.StockCommission,
			BankOpeningDate:        opening,
			RunDate:                now,
		}, gen)

		ds, err := pipeline.Run()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		tables := sqlfile.Tables(ds)
		if err := sqlfile.WriteFile(cfg.OutputPath, tables, runID, now); err != nil {
			return err
		}

		rows := 0
		for _, t := range tables {
			rows += len(t.Rows)
		}
		color.Green("✅ Wrote %d rows across %d tables to %s", rows, len(tables), cfg.OutputPath)
		color.White("   banks=%d customers=%d accounts=%d bargains=%d loans=%d",
			len(ds.Banks), len(ds.Clients), len(ds.Accounts), len(ds.Bargains), len(ds.Loans))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Output file path (overrides config)")
	generateCmd.Flags().StringVar(&genProfile, "profile", "", "Named generation profile to apply")
	generateCmd.Flags().StringVar(&genProfileFile, "profile-file", "bankgen.profiles.yaml", "Profile file path")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "PRNG seed (0 = time based)")
	generateCmd.Flags().IntVar(&genBanks, "banks", 0, "Bank count override")
	generateCmd.Flags().IntVar(&genCustomers, "customers", 0, "Customer count override")
	generateCmd.Flags().IntVar(&genMaxTx, "max-transactions", 0, "Max bargains per activated account override")
}
