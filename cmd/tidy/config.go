package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kfenner/tidy/pkg/tidy/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage tidy configuration settings.

Configuration is loaded from:
  1. $XDG_CONFIG_HOME/tidy/config.yaml (if set)
  2. ~/.config/tidy/config.yaml

Environment variables can override config file settings using the TIDY_ prefix:
  TIDY_OUTPUT=json
  TIDY_JOURNAL_ENABLED=false`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings from all sources.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long:  `Create a default configuration file if one doesn't exist.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		printError("Failed to load configuration: %v", err)
		// Show defaults anyway
		cfg = &config.Config{Output: config.DefaultOutput}
		cfg.Logging.ConsoleLevel = config.DefaultConsoleLevel
		cfg.Journal.Enabled = true
		cfg.Journal.RetentionDays = config.DefaultRetentionDays
		cfg.Watch.Debounce = config.DefaultDebounce
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Printf("Config file: %s\n\n", configFile)
	} else {
		fmt.Println("Config file: (using defaults, no file found)")
		fmt.Println()
	}

	fmt.Println("Current Configuration:")
	fmt.Println("----------------------")
	fmt.Printf("output:                 %s\n", cfg.Output)
	fmt.Printf("logging.console_level:  %s\n", cfg.Logging.ConsoleLevel)
	fmt.Printf("journal.enabled:        %t\n", cfg.Journal.Enabled)
	fmt.Printf("journal.path:           %s\n", cfg.Journal.Path)
	fmt.Printf("journal.retention:      %d days\n", cfg.Journal.RetentionDays)
	fmt.Printf("watch.debounce:         %s\n", cfg.Watch.Debounce)

	fmt.Println("\nEnvironment Overrides:")
	fmt.Println("----------------------")
	envVars := []string{
		"TIDY_OUTPUT",
		"TIDY_LOGGING_CONSOLE_LEVEL",
		"TIDY_JOURNAL_ENABLED",
		"TIDY_JOURNAL_PATH",
		"TIDY_JOURNAL_RETENTION_DAYS",
		"TIDY_WATCH_DEBOUNCE",
	}

	anyOverrides := false
	for _, name := range envVars {
		if val := os.Getenv(name); val != "" {
			fmt.Printf("%s=%s\n", name, val)
			anyOverrides = true
		}
	}
	if !anyOverrides {
		fmt.Println("(none)")
	}

	return nil
}

// runConfigInit creates a default config file.
func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir, err := config.ConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		printInfo("Config file already exists: %s", configPath)
		return nil
	}

	if err := config.WriteDefault(); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	printInfo("Created default config file: %s", configPath)
	return nil
}

// runConfigPath shows the config file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	configDir, err := config.ConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")

	fmt.Println(configPath)

	if _, err := os.Stat(configPath); err == nil {
		printVerbose("File exists")
	} else if os.IsNotExist(err) {
		printVerbose("File does not exist (will use defaults)")
	}

	return nil
}
