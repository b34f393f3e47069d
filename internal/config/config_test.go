package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Banks != 10 {
		t.Errorf("Expected default banks 10, got %d", cfg.Banks)
	}
	if cfg.Customers != 10 {
		t.Errorf("Expected default customers 10, got %d", cfg.Customers)
	}
	if cfg.MaxTransactionsPerAccount != 50 {
		t.Errorf("Expected default max_transactions_per_account 50, got %d", cfg.MaxTransactionsPerAccount)
	}
	if cfg.StockCommission != 0.02 {
		t.Errorf("Expected default stock_commission 0.02, got %v", cfg.StockCommission)
	}
	if cfg.BankOpeningDate != "2021-11-01" {
		t.Errorf("Expected default bank_opening_date 2021-11-01, got %s", cfg.BankOpeningDate)
	}
	if cfg.OutputPath != "generated_data.sql" {
		t.Errorf("Expected default output generated_data.sql, got %s", cfg.OutputPath)
	}
	if cfg.Database.Provider != "mysql" {
		t.Errorf("Expected default provider mysql, got %s", cfg.Database.Provider)
	}
	if cfg.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected default url_env DATABASE_URL, got %s", cfg.Database.URLEnv)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got error: %v", err)
	}
}

func TestLoadDefaultsUnsetFields(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StockCommission != 0.02 {
		t.Errorf("Expected default commission 0.02 when unset, got %v", cfg.StockCommission)
	}
	if cfg.Banks != 10 || cfg.Customers != 10 {
		t.Errorf("Expected default counts 10/10, got %d/%d", cfg.Banks, cfg.Customers)
	}
}

func TestLoadKeepsExplicitZeroCommission(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("stock_commission", 0.0)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StockCommission != 0 {
		t.Errorf("Explicit zero commission was replaced with %v", cfg.StockCommission)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Zero-commission config should validate, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		errHas string
	}{
		{"zero banks", func(c *Config) { c.Banks = 0 }, "banks"},
		{"zero customers", func(c *Config) { c.Customers = 0 }, "customers"},
		{"zero transactions", func(c *Config) { c.MaxTransactionsPerAccount = 0 }, "max_transactions_per_account"},
		{"negative commission", func(c *Config) { c.StockCommission = -0.1 }, "stock_commission"},
		{"commission of one", func(c *Config) { c.StockCommission = 1.0 }, "stock_commission"},
		{"bad opening date", func(c *Config) { c.BankOpeningDate = "01/11/2021" }, "bank_opening_date"},
		{"empty output path", func(c *Config) { c.OutputPath = "" }, "output_path"},
		{"unknown provider", func(c *Config) { c.Database.Provider = "oracle" }, "unsupported database provider"},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error, got nil", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.errHas) {
			t.Errorf("%s: expected error mentioning %q, got %v", tc.name, tc.errHas, err)
		}
	}
}

func TestValidateAcceptsAllProviders(t *testing.T) {
	for _, provider := range []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"} {
		cfg := DefaultConfig()
		cfg.Database.Provider = provider
		if err := cfg.Validate(); err != nil {
			t.Errorf("Provider %s should be accepted, got error: %v", provider, err)
		}
	}
}

func TestOpeningDate(t *testing.T) {
	cfg := DefaultConfig()
	opening, err := cfg.OpeningDate()
	if err != nil {
		t.Fatalf("OpeningDate failed: %v", err)
	}
	if opening.Year() != 2021 || opening.Month() != 11 || opening.Day() != 1 {
		t.Errorf("Expected 2021-11-01, got %v", opening)
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.URLEnv = "BANKGEN_TEST_DB_URL"

	os.Unsetenv("BANKGEN_TEST_DB_URL")
	if _, err := cfg.GetDatabaseURL(); err == nil {
		t.Error("Expected error when environment variable is unset")
	}

	t.Setenv("BANKGEN_TEST_DB_URL", "mysql://root@localhost/bank")
	url, err := cfg.GetDatabaseURL()
	if err != nil {
		t.Fatalf("GetDatabaseURL failed: %v", err)
	}
	if url != "mysql://root@localhost/bank" {
		t.Errorf("Expected URL from environment, got %s", url)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankgen.config.json")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written config: %v", err)
	}
	if !strings.Contains(string(data), `"bank_opening_date": "2021-11-01"`) {
		t.Errorf("Written config missing defaults:\n%s", data)
	}

	if err := WriteDefault(path); err == nil {
		t.Error("Expected error when config file already exists")
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankgen.profiles.yaml")
	content := `profiles:
  tiny:
    banks: 1
    customers: 2
    seed: 7
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write profile file: %v", err)
	}

	profile, err := LoadProfile(path, "tiny")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if profile.Banks != 1 || profile.Customers != 2 || profile.Seed != 7 {
		t.Errorf("Unexpected profile values: %+v", profile)
	}

	if _, err := LoadProfile(path, "huge"); err == nil {
		t.Error("Expected error for unknown profile name")
	} else if !strings.Contains(err.Error(), "tiny") {
		t.Errorf("Error should list available profiles, got: %v", err)
	}
}

func TestProfileApplyOverlaysNonZeroFields(t *testing.T) {
	cfg := DefaultConfig()
	profile := &Profile{Customers: 99, Seed: 5}
	profile.Apply(cfg)

	if cfg.Customers != 99 {
		t.Errorf("Expected customers overridden to 99, got %d", cfg.Customers)
	}
	if cfg.Seed != 5 {
		t.Errorf("Expected seed overridden to 5, got %d", cfg.Seed)
	}
	if cfg.Banks != 10 {
		t.Errorf("Zero profile field should not override banks, got %d", cfg.Banks)
	}
	if cfg.MaxTransactionsPerAccount != 50 {
		t.Errorf("Zero profile field should not override transactions, got %d", cfg.MaxTransactionsPerAccount)
	}
}

func TestWriteSampleProfilesIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankgen.profiles.yaml")

	if err := WriteSampleProfiles(path); err != nil {
		t.Fatalf("WriteSampleProfiles failed: %v", err)
	}
	for _, name := range []string{"small", "medium", "large"} {
		if _, err := LoadProfile(path, name); err != nil {
			t.Errorf("Sample profile %s missing: %v", name, err)
		}
	}

	before, _ := os.ReadFile(path)
	if err := WriteSampleProfiles(path); err != nil {
		t.Fatalf("Second WriteSampleProfiles failed: %v", err)
	}
	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Error("Existing profile file should be left untouched")
	}
}
