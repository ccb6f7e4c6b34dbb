package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kfenner/tidy/pkg/tidy/category"
	"github.com/kfenner/tidy/pkg/tidy/config"
	"github.com/kfenner/tidy/pkg/tidy/journal"
	"github.com/kfenner/tidy/pkg/tidy/logging"
	"github.com/kfenner/tidy/pkg/tidy/organize"
	"github.com/kfenner/tidy/pkg/tidy/output"
)

// runOrganize is the root command handler: preview, confirm, commit.
func runOrganize(_ *cobra.Command, args []string) error {
	target, err := resolveTarget(args)
	if err != nil {
		return err
	}

	dryRun := viper.GetBool("dry_run")
	yes := viper.GetBool("yes")
	if dryRun && yes {
		return fmt.Errorf("--dry-run and --yes are mutually exclusive")
	}

	org := newOrganizer()

	if !yes {
		report, err := org.Run(target, organize.Preview)
		if err != nil {
			return err
		}
		if err := printSummary(report); err != nil {
			return err
		}
		recordRun(report)

		if dryRun {
			return nil
		}
		if !confirm(os.Stdin, os.Stdout, "Proceed with organization?") {
			printInfo("Organization cancelled.")
			return nil
		}
	}

	report, err := org.Run(target, organize.Commit)
	if err != nil {
		return err
	}
	if err := printSummary(report); err != nil {
		return err
	}
	recordRun(report)

	return nil
}

// resolveTarget turns the optional positional argument into an absolute
// path. Surrounding quotes are stripped so pasted paths work as-is.
func resolveTarget(args []string) (string, error) {
	target := "."
	if len(args) > 0 {
		target = stripQuotes(args[0])
	}
	if target == "" {
		return "", fmt.Errorf("no path provided")
	}

	expanded, err := config.ExpandPath(target)
	if err != nil {
		return "", fmt.Errorf("failed to expand path: %w", err)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	return abs, nil
}

// stripQuotes removes surrounding single or double quotes and whitespace.
func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	s = strings.Trim(s, `'`)
	return s
}

// newOrganizer builds an Organizer wired to the CLI's verbosity settings.
func newOrganizer() *organize.Organizer {
	opts := []organize.Option{}
	if getQuiet() {
		opts = append(opts, organize.WithConsole(io.Discard))
	}
	if getVerbose() {
		level := logging.ParseLevel(viper.GetString("logging.console_level"))
		opts = append(opts, organize.WithLoggerOptions(logging.WithConsole(level)))
	}
	return organize.New(opts...)
}

// printSummary renders the run report with the configured formatter.
func printSummary(r *organize.Report) error {
	formatter, err := output.Get(viper.GetString("output"))
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(output.Available(), ", "))
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, buildReport(r)); err != nil {
		return fmt.Errorf("failed to format summary: %w", err)
	}
	fmt.Print(buf.String())
	return nil
}

// buildReport converts an organize run report into the output structure,
// with category rows in declaration order and OTHER last.
func buildReport(r *organize.Report) *output.Report {
	labels := category.All()
	rows := make([]output.CategoryCount, 0, len(labels))
	for _, label := range labels {
		size := r.Stats.Bytes[label]
		rows = append(rows, output.CategoryCount{
			Name:       label,
			Count:      r.Stats.Counts[label],
			Bytes:      size,
			BytesHuman: humanize.IBytes(uint64(size)),
		})
	}

	total := r.Stats.TotalBytes()
	return &output.Report{
		Target:          r.Target,
		Mode:            r.Mode.String(),
		Processed:       r.Stats.Processed,
		Skipped:         r.Stats.Skipped,
		Categories:      rows,
		TotalBytes:      total,
		TotalBytesHuman: humanize.IBytes(uint64(total)),
		Elapsed:         r.Elapsed,
		LogPath:         r.LogPath,
	}
}

// recordRun appends the run to the journal unless journaling is disabled.
// Journal failures are reported in verbose mode but never fail the run.
func recordRun(r *organize.Report) {
	if viper.GetBool("no_journal") || !viper.GetBool("journal.enabled") {
		return
	}

	dir := viper.GetString("journal.path")
	if dir == "" {
		dir = config.JournalDir()
	}

	j, err := journal.New(dir)
	if err != nil {
		printVerbose("journal unavailable: %v", err)
		return
	}
	if err := j.EnsureDir(); err != nil {
		printVerbose("journal unavailable: %v", err)
		return
	}

	records := make([]journal.MoveRecord, 0, len(r.Results))
	for _, res := range r.Results {
		rec := journal.MoveRecord{
			Source:   res.Source,
			Dest:     res.Dest,
			Category: res.Category,
			Size:     res.Size,
			Outcome:  res.Outcome.String(),
		}
		if res.Err != nil {
			rec.Error = res.Err.Error()
		}
		records = append(records, rec)
	}

	if _, err := j.Record(r.Mode.String(), r.Target, records); err != nil {
		printVerbose("failed to record run: %v", err)
		return
	}

	retention := viper.GetInt("journal.retention_days")
	if retention > 0 {
		if _, err := j.Prune(time24h(retention)); err != nil {
			printVerbose("failed to prune journal: %v", err)
		}
	}
}

// time24h converts a retention day count to a duration.
func time24h(days int) time.Duration {
	return time.Duration(days) * 24 * time.Hour
}

// confirm prompts for a yes/no answer and returns true only for y/yes.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "\n%s (y/N): ", prompt)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
