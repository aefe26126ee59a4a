package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the hetbot configuration.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Storage  StorageConfig  `yaml:"storage"`
	Provider ProviderConfig `yaml:"provider"`
	Reminder ReminderConfig `yaml:"reminder"`
	Graphs   GraphsConfig   `yaml:"graphs"`
	Texts    TextsConfig    `yaml:"texts"`
	Ops      OpsConfig      `yaml:"ops"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// TelegramConfig holds Bot API settings.
type TelegramConfig struct {
	Token          string `yaml:"token"`
	PollTimeoutSec int    `yaml:"poll_timeout_sec"`
}

// StorageConfig holds the JSON collection files.
type StorageConfig struct {
	Dir          string `yaml:"dir"`
	AccountsFile string `yaml:"accounts_file"`
	UsageFile    string `yaml:"usage_file"`
}

// AccountsPath returns the full path of the accounts collection.
func (s StorageConfig) AccountsPath() string {
	return filepath.Join(s.Dir, s.AccountsFile)
}

// UsagePath returns the full path of the usage log collection.
func (s StorageConfig) UsagePath() string {
	return filepath.Join(s.Dir, s.UsageFile)
}

// Provider modes.
const (
	ProviderStatic = "static"
	ProviderRemote = "remote"
)

// ProviderConfig selects and tunes the consumption data source.
type ProviderConfig struct {
	Mode       string `yaml:"mode"` // static, remote (default: static)
	BaseURL    string `yaml:"base_url"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// ReminderConfig holds the daily reminder schedule.
type ReminderConfig struct {
	Enabled bool `yaml:"enabled"`
	Hour    int  `yaml:"hour"`
	Minute  int  `yaml:"minute"`
}

// GraphsConfig holds the local fallback directory for pre-rendered graphs.
type GraphsConfig struct {
	LocalDir string `yaml:"local_dir"`
}

// TextsConfig points at the optional message template overrides.
type TextsConfig struct {
	Path string `yaml:"path"`
}

// OpsConfig holds the operator HTTP server settings.
type OpsConfig struct {
	Port int `yaml:"port"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Telegram.PollTimeoutSec <= 0 {
		c.Telegram.PollTimeoutSec = 30
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = "data"
	}
	if c.Storage.AccountsFile == "" {
		c.Storage.AccountsFile = "accounts.json"
	}
	if c.Storage.UsageFile == "" {
		c.Storage.UsageFile = "daily_usage.json"
	}
	if c.Provider.Mode == "" {
		c.Provider.Mode = ProviderStatic
	}
	if c.Provider.TimeoutSec <= 0 {
		c.Provider.TimeoutSec = 10
	}
	if c.Ops.Port <= 0 {
		c.Ops.Port = 9090
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}
	switch c.Provider.Mode {
	case ProviderStatic:
		// no further requirements
	case ProviderRemote:
		if c.Provider.BaseURL == "" {
			return fmt.Errorf("provider.base_url is required when provider.mode is %q", ProviderRemote)
		}
	default:
		return fmt.Errorf("provider.mode must be %q or %q, got %q", ProviderStatic, ProviderRemote, c.Provider.Mode)
	}
	if c.Reminder.Hour < 0 || c.Reminder.Hour > 23 {
		return fmt.Errorf("reminder.hour must be between 0 and 23, got %d", c.Reminder.Hour)
	}
	if c.Reminder.Minute < 0 || c.Reminder.Minute > 59 {
		return fmt.Errorf("reminder.minute must be between 0 and 59, got %d", c.Reminder.Minute)
	}
	if c.Ops.Port > 65535 {
		return fmt.Errorf("ops.port must be between 1 and 65535, got %d", c.Ops.Port)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
