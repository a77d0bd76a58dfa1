// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. IBANBOOK_LOG_LEVEL.
const EnvPrefix = "IBANBOOK"

// Delete policies accepted by categories.delete_policy.
const (
	DeletePolicyUnfiled = "unfiled"
	DeletePolicyCascade = "cascade"
)

// LogConfig selects logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DataConfig locates the key-value store.
type DataConfig struct {
	// Directory holds one JSON file per stored key. Empty means the
	// per-user default.
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// CategoriesConfig controls category seeding and removal.
type CategoriesConfig struct {
	Defaults     []string `mapstructure:"defaults" yaml:"defaults"`
	DeletePolicy string   `mapstructure:"delete_policy" yaml:"delete_policy"`
}

// BankCodesConfig points at an optional YAML file extending the bank table.
type BankCodesConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// ExportConfig configures clipboard, share and CSV output.
type ExportConfig struct {
	CSVDelimiter     string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
	ClipboardCommand string `mapstructure:"clipboard_command" yaml:"clipboard_command"`
	ShareFile        string `mapstructure:"share_file" yaml:"share_file"`
}

// Config represents the complete application configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Data       DataConfig       `mapstructure:"data" yaml:"data"`
	Categories CategoriesConfig `mapstructure:"categories" yaml:"categories"`
	BankCodes  BankCodesConfig  `mapstructure:"bank_codes" yaml:"bank_codes"`
	Export     ExportConfig     `mapstructure:"export" yaml:"export"`
}

// Delimiter returns the CSV delimiter as a rune. validateConfig guarantees a
// single character.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Export.CSVDelimiter)
	return r
}

// InitializeConfig loads defaults, then the config file, then environment
// variables. configFile, when set, replaces the search path and must exist.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.iban-book")
		v.AddConfigPath(".iban-book")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless named explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "")

	v.SetDefault("categories.defaults", []string{"personal"})
	v.SetDefault("categories.delete_policy", DeletePolicyUnfiled)

	v.SetDefault("bank_codes.file", "")

	v.SetDefault("export.csv_delimiter", ",")
	v.SetDefault("export.clipboard_command", "")
	v.SetDefault("export.share_file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	switch config.Categories.DeletePolicy {
	case DeletePolicyUnfiled, DeletePolicyCascade:
	default:
		return fmt.Errorf("invalid delete policy: %s (must be '%s' or '%s')",
			config.Categories.DeletePolicy, DeletePolicyUnfiled, DeletePolicyCascade)
	}

	if utf8.RuneCountInString(config.Export.CSVDelimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Export.CSVDelimiter)
	}

	return nil
}
