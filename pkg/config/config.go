package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Pointer values describe the host's primary pointing device.
const (
	PointerFine   = "fine"
	PointerCoarse = "coarse"
)

// EnvPrefix is the prefix for environment overrides (CHATENTRY_LOCALE, ...).
const EnvPrefix = "chatentry"

var validate = validator.New()

// Config represents the application configuration
type Config struct {
	Locale      string `json:"locale" envconfig:"LOCALE" validate:"required"`
	TimeZone    string `json:"time_zone" envconfig:"TIMEZONE"`
	Pointer     string `json:"pointer" envconfig:"POINTER" validate:"oneof=fine coarse"`
	BubbleWidth int    `json:"bubble_width" envconfig:"BUBBLE_WIDTH" validate:"gte=10,lte=400"`
	Brand       string `json:"brand" envconfig:"BRAND" validate:"required"`
	LogLevel    string `json:"log_level" envconfig:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn warning error"`
	LogFile     string `json:"log_file" envconfig:"LOG_FILE"`
	LogFormat   string `json:"log_format" envconfig:"LOG_FORMAT" validate:"omitempty,oneof=json text"`
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		Locale:      "en-US",
		TimeZone:    "Local",
		Pointer:     PointerFine,
		BubbleWidth: 60,
		Brand:       "Sunrise Coffee",
		LogLevel:    "info",
		LogFile:     "",
		LogFormat:   "json",
	}
}

// Touch reports whether headers should stay visible without hover.
func (c Config) Touch() bool {
	return c.Pointer == PointerCoarse
}

// Load loads configuration from the specified path
// If the file doesn't exist, creates one with default values
func Load(configPath string) (Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(configPath, cfg); err != nil {
				return Config{}, fmt.Errorf("failed to create default config: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	// Start from defaults so keys missing from older files keep sane values
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides cfg with CHATENTRY_* variables. A .env file in the
// working directory is read first when present.
func ApplyEnv(cfg Config) (Config, error) {
	_ = godotenv.Load()
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

// Save saves the configuration to the specified path
func Save(configPath string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid time_zone %q: %w", c.TimeZone, err)
	}
	return nil
}

// Location resolves TimeZone. Empty and "Local" mean the host zone.
func (c Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.TimeZone)
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".chatentry/config.json"
	}
	return filepath.Join(homeDir, ".chatentry", "config.json")
}
