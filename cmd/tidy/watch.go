package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kfenner/tidy/pkg/tidy/organize"
	"github.com/kfenner/tidy/pkg/tidy/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch a directory and organize new files as they arrive",
	Long: `Watch observes the target directory and triggers an organize run after
a quiet period of filesystem activity. Only the directory itself is
watched; files already sorted into category subdirectories are ignored.

Press ctrl-c to stop watching.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("debounce", "", "quiet period before organizing (e.g. 2s, 500ms)")
	_ = viper.BindPFlag("watch.debounce", watchCmd.Flags().Lookup("debounce"))

	rootCmd.AddCommand(watchCmd)
}

// runWatch is the watch command handler.
func runWatch(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(args)
	if err != nil {
		return err
	}

	debounceStr := viper.GetString("watch.debounce")
	debounce, err := time.ParseDuration(debounceStr)
	if err != nil {
		return fmt.Errorf("invalid debounce %q: %w", debounceStr, err)
	}

	org := newOrganizer()

	// Each quiet period triggers one commit run; runs are sequential.
	w, err := watcher.New(debounce, func(root string) error {
		report, err := org.Run(root, organize.Commit)
		if err != nil {
			return err
		}
		if report.Stats.Processed == 0 && report.Stats.Skipped == 0 {
			return nil
		}
		if err := printSummary(report); err != nil {
			return err
		}
		recordRun(report)
		return nil
	}, watcher.WithErrorHandler(func(err error) {
		printError("%v", err)
	}))
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	printInfo("Watching %s (press ctrl-c to stop)", target)
	return w.Watch(ctx, target)
}
