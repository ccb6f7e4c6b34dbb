package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kfenner/tidy/pkg/tidy/config"
	"github.com/kfenner/tidy/pkg/tidy/journal"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View past organize runs",
	Long: `View the history of organize runs recorded in the journal.

Each entry records the run mode, the target directory, and every file
the run moved (or would have moved in a preview).`,
	RunE: runHistory,
}

var historyCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove journal entries older than the retention period",
	RunE:  runHistoryClean,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum number of entries to show")

	historyCmd.AddCommand(historyCleanCmd)
	rootCmd.AddCommand(historyCmd)
}

// getJournal returns a journal instance with the configured directory.
func getJournal() (*journal.Journal, error) {
	dir := viper.GetString("journal.path")
	if dir == "" {
		dir = config.JournalDir()
	}
	return journal.New(dir)
}

// runHistory lists recent runs.
func runHistory(cmd *cobra.Command, args []string) error {
	j, err := getJournal()
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}

	entries, err := j.List()
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		printInfo("No journal entries found.")
		printInfo("Run 'tidy [path]' to organize a directory.")
		return nil
	}

	if historyLimit > 0 && len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}

	fmt.Printf("\n%-20s  %-8s  %-7s  %-10s  %s\n", "TIME", "MODE", "FILES", "SIZE", "TARGET")
	fmt.Println(strings.Repeat("-", 80))

	for _, entry := range entries {
		fmt.Printf("%-20s  %-8s  %-7d  %-10s  %s\n",
			entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
			entry.Mode,
			entry.Summary.TotalFiles,
			humanize.IBytes(uint64(entry.Summary.TotalBytes)),
			entry.Target,
		)
	}

	fmt.Println(strings.Repeat("-", 80))
	printInfo("Showing %d entries. Use --limit to see more.", len(entries))

	return nil
}

// runHistoryClean prunes old journal entries.
func runHistoryClean(cmd *cobra.Command, args []string) error {
	j, err := getJournal()
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}

	retention := viper.GetInt("journal.retention_days")
	if retention <= 0 {
		retention = config.DefaultRetentionDays
	}

	removed, err := j.Prune(time24h(retention))
	if err != nil {
		return fmt.Errorf("failed to prune journal: %w", err)
	}

	printInfo("Removed %d entries older than %d days.", removed, retention)
	return nil
}
