package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

func showBanner() {
	color.New(color.FgGreen, color.Bold).Println("bankgen — retail banking fixture generator")
	fmt.Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "bankgen",
	Short: "Generate internally consistent SQL fixture data for a retail-banking schema",
	Long: `
bankgen builds a synthetic but referentially consistent dataset for a mock
retail-banking database — banks, clients, accounts, cards, bargains, stocks
and loans — and emits it as multi-row INSERT statements.

Commands:
- generate: run the fixture pipeline and write the SQL file
- load:     execute a generated file against a live database
- verify:   run referential-integrity checks on a loaded database

Database support for load/verify:
- PostgreSQL
- MySQL
- SQLite`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("bankgen version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./bankgen.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("bankgen.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
