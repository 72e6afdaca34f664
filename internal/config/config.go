package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const FileName = "remitgen.config.json"

type Config struct {
	OutputDir string   `json:"output_dir" mapstructure:"output_dir"`
	Formats   []string `json:"formats" mapstructure:"formats"`
	Seed      int64    `json:"seed" mapstructure:"seed"` // 0 = new entropy each run
	Counts    Counts   `json:"counts" mapstructure:"counts"`
	Database  Database `json:"database" mapstructure:"database"`
}

type Counts struct {
	Agents       int `json:"agents" mapstructure:"agents"`
	Clients      int `json:"clients" mapstructure:"clients"`
	Transactions int `json:"transactions" mapstructure:"transactions"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

func DefaultConfig() *Config {
	return &Config{
		OutputDir: "data",
		Formats:   []string{"csv", "json"},
		Counts: Counts{
			Agents:       25,
			Clients:      100,
			Transactions: 1000,
		},
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

	// Set defaults. Counts default as a block so an explicit zero in the
	// config file survives.
	if cfg.OutputDir == "" {
		cfg.OutputDir = "data"
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{"csv", "json"}
	}
	if !viper.IsSet("counts") {
		cfg.Counts = DefaultConfig().Counts
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "mysql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"mysql", "postgresql", "postgres", "sqlite", "sqlite3"}
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

	if c.Counts.Agents < 0 || c.Counts.Clients < 0 || c.Counts.Transactions < 0 {
		return fmt.Errorf("record counts cannot be negative")
	}

	for _, format := range c.Formats {
		switch format {
		case "csv", "json", "all":
		default:
			return fmt.Errorf("unsupported export format: %s (supported: csv, json, all)", format)
		}
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}

	return nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) EnsureDirectories() error {
	if c.OutputDir == "" || c.OutputDir == "." {
		return nil
	}
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.OutputDir, err)
	}
	return nil
}

// InitializeProject writes a default config file and creates the output
// directory. Fails if the project is already initialized.
func InitializeProject() error {
	if IsInitialized() {
		return fmt.Errorf("project already initialized: %s exists", FileName)
	}

	cfg := DefaultConfig()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(FileName, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg.EnsureDirectories()
}

func IsInitialized() bool {
	_, err := os.Stat(FileName)
	return err == nil
}
