package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

type Config struct {
	Banks                     int      `json:"banks" mapstructure:"banks"`
	Customers                 int      `json:"customers" mapstructure:"customers"`
	MaxTransactionsPerAccount int      `json:"max_transactions_per_account" mapstructure:"max_transactions_per_account"`
	StockCommission           float64  `json:"stock_commission" mapstructure:"stock_commission"`
	BankOpeningDate           string   `json:"bank_opening_date" mapstructure:"bank_opening_date"`
	OutputPath                string   `json:"output_path" mapstructure:"output_path"`
	Seed                      int64    `json:"seed,omitempty" mapstructure:"seed"`
	MaxRetries                int      `json:"max_retries" mapstructure:"max_retries"`
	Database                  Database `json:"database" mapstructure:"database"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

func DefaultConfig() *Config {
	return &Config{
		Banks:                     10,
		Customers:                 10,
		MaxTransactionsPerAccount: 50,
		StockCommission:           0.02,
		BankOpeningDate:           "2021-11-01",
		OutputPath:                "generated_data.sql",
		MaxRetries:                1000,
		Database: Database{
			Provider: "mysql",
			URLEnv:   "DATABASE_URL",
		},
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	def := DefaultConfig()
	if cfg.Banks == 0 {
		cfg.Banks = def.Banks
	}
	if cfg.Customers == 0 {
		cfg.Customers = def.Customers
	}
	if cfg.MaxTransactionsPerAccount == 0 {
		cfg.MaxTransactionsPerAccount = def.MaxTransactionsPerAccount
	}
	// An explicit zero commission is a valid configuration; only default
	// when the key is absent.
	if cfg.StockCommission == 0 && !viper.IsSet("stock_commission") {
		cfg.StockCommission = def.StockCommission
	}
	if cfg.BankOpeningDate == "" {
		cfg.BankOpeningDate = def.BankOpeningDate
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = def.OutputPath
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = def.MaxRetries
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = def.Database.Provider
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = def.Database.URLEnv
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Banks < 1 {
		return fmt.Errorf("banks must be at least 1, got %d", c.Banks)
	}
	if c.Customers < 1 {
		return fmt.Errorf("customers must be at least 1, got %d", c.Customers)
	}
	if c.MaxTransactionsPerAccount < 1 {
		return fmt.Errorf("max_transactions_per_account must be at least 1, got %d", c.MaxTransactionsPerAccount)
	}
	if c.StockCommission < 0 || c.StockCommission >= 1 {
		return fmt.Errorf("stock_commission must be in [0, 1), got %v", c.StockCommission)
	}
	if _, err := c.OpeningDate(); err != nil {
		return err
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path cannot be empty")
	}

	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	return nil
}

// OpeningDate parses the configured bank opening date.
func (c *Config) OpeningDate() (time.Time, error) {
	t, err := time.Parse(dateLayout, c.BankOpeningDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid bank_opening_date %q: %w", c.BankOpeningDate, err)
	}
	return t, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

// WriteDefault writes the default config file. Fails if one already exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
