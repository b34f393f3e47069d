package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a named override set for generation sizes, kept in a YAML file so
// teams can check in small/medium/large dataset shapes next to the config.
type Profile struct {
	Banks                     int   `yaml:"banks"`
	Customers                 int   `yaml:"customers"`
	MaxTransactionsPerAccount int   `yaml:"max_transactions_per_account"`
	Seed                      int64 `yaml:"seed"`
}

type profileFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// LoadProfile reads the profile file and returns the named profile.
func LoadProfile(path, name string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse profile file: %w", err)
	}

	profile, ok := file.Profiles[name]
	if !ok {
		names := make([]string, 0, len(file.Profiles))
		for n := range file.Profiles {
			names = append(names, n)
		}
		return nil, fmt.Errorf("profile %q not found in %s (available: %v)", name, path, names)
	}
	return &profile, nil
}

// Apply overlays the profile's non-zero fields onto the config.
func (p *Profile) Apply(cfg *Config) {
	if p.Banks > 0 {
		cfg.Banks = p.Banks
	}
	if p.Customers > 0 {
		cfg.Customers = p.Customers
	}
	if p.MaxTransactionsPerAccount > 0 {
		cfg.MaxTransactionsPerAccount = p.MaxTransactionsPerAccount
	}
	if p.Seed != 0 {
		cfg.Seed = p.Seed
	}
}

// WriteSampleProfiles writes a starter profile file next to the config.
func WriteSampleProfiles(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	sample := profileFile{
		Profiles: map[string]Profile{
			"small":  {Banks: 2, Customers: 5, MaxTransactionsPerAccount: 10},
			"medium": {Banks: 10, Customers: 10, MaxTransactionsPerAccount: 50},
			"large":  {Banks: 25, Customers: 200, MaxTransactionsPerAccount: 50},
		},
	}

	data, err := yaml.Marshal(&sample)
	if err != nil {
		return fmt.Errorf("failed to marshal sample profiles: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}
	return nil
}
