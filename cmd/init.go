package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lastings-labs/bankgen/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a bankgen project",
	Long:  `Write a default bankgen.config.json and a starter profile file in the current directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault("bankgen.config.json"); err != nil {
			return err
		}
		color.Green("✅ Wrote bankgen.config.json")

		if err := config.WriteSampleProfiles("bankgen.profiles.yaml"); err != nil {
			return err
		}
		color.Green("✅ Wrote bankgen.profiles.yaml")

		color.Cyan("\n📝 Next: bankgen generate")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
