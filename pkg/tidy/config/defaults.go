// Package config provides configuration management for tidy.
package config

// Default configuration values.
const (
	// DefaultOutput is the summary formatter used when none is configured.
	DefaultOutput = "pretty"

	// DefaultConsoleLevel is the level at which run log events are mirrored
	// to the console in verbose mode.
	DefaultConsoleLevel = "warn"

	// DefaultRetentionDays is how long journal entries are kept.
	DefaultRetentionDays = 30

	// DefaultDebounce is the quiet period watch mode waits for before
	// triggering a run.
	DefaultDebounce = "2s"
)
