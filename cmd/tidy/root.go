package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kfenner/tidy/pkg/tidy/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "tidy [path]",
		Short: "Organize files in a directory by extension",
		Long: `Tidy classifies the files in a directory by extension and moves them
into category subdirectories (HTML, IMAGES, VIDEOS, DOCUMENTS, ARCHIVES,
AUDIO, OTHER). Subdirectories are never descended into.

By default tidy runs a non-destructive preview first and asks for
confirmation before moving anything. Use --yes to skip the preview, or
--dry-run to stop after it.

Examples:
  tidy ~/Downloads           # Preview, confirm, then organize
  tidy -d ~/Downloads        # Preview only, move nothing
  tidy -y ~/Downloads        # Organize without confirmation
  tidy -y -o json .          # Organize, print a JSON summary
  tidy watch ~/Downloads     # Keep organizing as files arrive
  tidy history               # Review past runs`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE:          runOrganize,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/tidy/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "summary format (pretty, plain, json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "mirror log events to the console")
	rootCmd.PersistentFlags().Bool("no-journal", false, "don't record the run in the journal")

	// Root command flags
	rootCmd.Flags().BoolP("dry-run", "d", false, "preview only, don't move files")
	rootCmd.Flags().BoolP("yes", "y", false, "skip the preview pass and confirmation prompt")

	// Bind flags to viper
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("no_journal", rootCmd.PersistentFlags().Lookup("no-journal"))
	_ = viper.BindPFlag("dry_run", rootCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("yes", rootCmd.Flags().Lookup("yes"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		// Add config paths in order of precedence
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "tidy"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "tidy"))
		}
	}

	// Set environment variable prefix and enable auto env binding
	viper.SetEnvPrefix("TIDY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Set defaults from config package
	config.SetDefaults(viper.GetViper())

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
