// Package config provides centralized configuration management using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for the kiosk.
type Config struct {
	KioskID         string        `mapstructure:"kiosk_id" yaml:"kiosk_id"`
	BaseCurrency    string        `mapstructure:"base_currency" yaml:"base_currency"`
	Fee             string        `mapstructure:"fee" yaml:"fee"`
	DefaultCurrency string        `mapstructure:"default_currency" yaml:"default_currency"`
	AmountMaxLength int           `mapstructure:"amount_max_length" yaml:"amount_max_length"`
	OtpAdvanceDelay time.Duration `mapstructure:"otp_advance_delay" yaml:"otp_advance_delay"`
	PromoInterval   time.Duration `mapstructure:"promo_interval" yaml:"promo_interval"`
	Skin            string        `mapstructure:"skin" yaml:"skin"`
	Language        string        `mapstructure:"language" yaml:"language"`
	DirectoryFile   string        `mapstructure:"directory_file" yaml:"directory_file"`
	DataDir         string        `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel        string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile         string        `mapstructure:"log_file" yaml:"log_file"`
	Journal         JournalConfig `mapstructure:"journal" yaml:"journal"`
}

// JournalConfig controls the in-memory activity journal.
type JournalConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// defaults is the single source of default values; Defaults and Load both
// read from it.
var defaults = map[string]any{
	"kiosk_id":          "MUSCAT-772",
	"base_currency":     "OMR",
	"fee":               "0.500",
	"default_currency":  "INR",
	"amount_max_length": 7,
	"otp_advance_delay": 300 * time.Millisecond,
	"promo_interval":    5 * time.Second,
	"skin":              "unimoni",
	"language":          "en",
	"directory_file":    "",
	"data_dir":          ".remitkiosk",
	"log_level":         "info",
	"log_file":          "",
	"journal.enabled":   true,
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	var cfg Config
	// Decoding static defaults cannot fail.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults.
// CLI flags are applied on top by the caller.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("remitkiosk")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Setup ENV binding with REMITKIOSK_ prefix
	v.SetEnvPrefix("REMITKIOSK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit bindings so Unmarshal sees env values for keys that no
	// config file mentions.
	for key := range defaults {
		env := "REMITKIOSK_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Normalize upper-cases currency codes so they match rate table keys.
func (c *Config) Normalize() {
	c.BaseCurrency = strings.ToUpper(strings.TrimSpace(c.BaseCurrency))
	c.DefaultCurrency = strings.ToUpper(strings.TrimSpace(c.DefaultCurrency))
}

// RateLookup is the part of a rate table CheckRates needs.
type RateLookup interface {
	Rate(code string) (decimal.Decimal, bool)
}

// CheckRates verifies settings that depend on the loaded rate table.
func (c *Config) CheckRates(rates RateLookup) error {
	if c.DefaultCurrency == "" {
		return nil
	}
	if _, ok := rates.Rate(c.DefaultCurrency); !ok {
		return fmt.Errorf("default_currency %s has no exchange rate", c.DefaultCurrency)
	}
	return nil
}

// FeeAmount parses the flat transfer fee.
func (c *Config) FeeAmount() (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(strings.TrimSpace(c.Fee))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid fee %q: %w", c.Fee, err)
	}
	return fee, nil
}

// Validate checks values that would otherwise break the wizard at runtime.
func (c *Config) Validate() error {
	var errs []error

	fee, err := c.FeeAmount()
	if err != nil {
		errs = append(errs, err)
	} else if fee.IsNegative() {
		errs = append(errs, fmt.Errorf("fee must not be negative: %s", fee))
	}
	if strings.TrimSpace(c.BaseCurrency) == "" {
		errs = append(errs, errors.New("base_currency is required"))
	}
	if strings.TrimSpace(c.KioskID) == "" {
		errs = append(errs, errors.New("kiosk_id is required"))
	}
	if c.AmountMaxLength < 2 {
		errs = append(errs, fmt.Errorf("amount_max_length must be at least 2, got %d", c.AmountMaxLength))
	}
	if c.OtpAdvanceDelay < 0 {
		errs = append(errs, fmt.Errorf("otp_advance_delay must not be negative: %s", c.OtpAdvanceDelay))
	}
	if c.PromoInterval <= 0 {
		errs = append(errs, fmt.Errorf("promo_interval must be positive: %s", c.PromoInterval))
	}

	return errors.Join(errs...)
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/remitkiosk/remitkiosk.yml or $XDG_CONFIG_HOME/remitkiosk/remitkiosk.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "remitkiosk", "remitkiosk.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "remitkiosk", "remitkiosk.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "remitkiosk.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
