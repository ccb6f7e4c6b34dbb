package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LoggingConfig configures console mirroring of run log events.
type LoggingConfig struct {
	ConsoleLevel string `mapstructure:"console_level"`
}

// JournalConfig configures run history.
type JournalConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Path          string `mapstructure:"path"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce string `mapstructure:"debounce"`
}

// Config represents the application configuration.
type Config struct {
	Output  string        `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
	Journal JournalConfig `mapstructure:"journal"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/tidy/config.yaml
//   - $HOME/.config/tidy/config.yaml
//
// Environment variables are prefixed with TIDY_ (e.g. TIDY_OUTPUT).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "tidy"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "tidy"))

	v.SetEnvPrefix("TIDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is acceptable; we use defaults.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Journal.Path == "" {
		cfg.Journal.Path = JournalDir()
	}
	if strings.HasPrefix(cfg.Journal.Path, "~") {
		cfg.Journal.Path = filepath.Join(homeDir, cfg.Journal.Path[1:])
	}

	return &cfg, nil
}

// SetDefaults registers tidy's defaults on the given viper instance. The
// CLI shares these with Load so flag-bound settings fall back consistently.
func SetDefaults(v *viper.Viper) {
	setDefaults(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("logging.console_level", DefaultConsoleLevel)
	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", "")
	v.SetDefault("journal.retention_days", DefaultRetentionDays)
	v.SetDefault("watch.debounce", DefaultDebounce)
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "tidy"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "tidy"), nil
}

// StateDir returns $XDG_STATE_HOME/tidy/ for the journal.
func StateDir() string {
	return filepath.Join(xdg.StateHome, "tidy")
}

// JournalDir returns the default journal directory.
func JournalDir() string {
	return filepath.Join(StateDir(), "journal")
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, path[1:]), nil
}

// WriteDefault writes a default config file if none exists.
// Returns nil if a config file already exists.
func WriteDefault() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configDir, err := ConfigDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	defaultConfig := fmt.Sprintf(`# Tidy Configuration

# Summary output format: pretty, plain, json
output: %s

# Logging configuration
logging:
  # Level at which run log events are mirrored to the console
  # when --verbose is set: debug, info, warn, error
  console_level: %s

# Run history settings
journal:
  enabled: true
  # Journal directory (empty means use default: $XDG_STATE_HOME/tidy/journal)
  path: ""
  retention_days: %d

# Watch mode settings
watch:
  # Quiet period before a run is triggered after filesystem activity
  debounce: %s
`, DefaultOutput, DefaultConsoleLevel, DefaultRetentionDays, DefaultDebounce)

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}
	return nil
}
