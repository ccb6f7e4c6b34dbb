package organize

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/kfenner/tidy/pkg/tidy/category"
	"github.com/kfenner/tidy/pkg/tidy/logging"
)

// Organizer validates a target directory and runs preview or commit scans
// over it. A single Organizer can run multiple passes; each pass gets fresh
// statistics and its own scoped logger inside the target directory.
type Organizer struct {
	console io.Writer
	logOpts []logging.Option
	now     func() time.Time
}

// Option customizes an Organizer.
type Option func(*Organizer)

// WithConsole redirects user-facing progress lines. Defaults to os.Stdout;
// pass io.Discard for quiet operation.
func WithConsole(w io.Writer) Option {
	return func(o *Organizer) {
		o.console = w
	}
}

// WithLoggerOptions forwards options to the run logger, e.g. console
// mirroring of log events in verbose mode.
func WithLoggerOptions(opts ...logging.Option) Option {
	return func(o *Organizer) {
		o.logOpts = opts
	}
}

// WithClock overrides the timestamp source. Used by tests to pin the
// conflict-rename token.
func WithClock(now func() time.Time) Option {
	return func(o *Organizer) {
		o.now = now
	}
}

// New creates an Organizer.
func New(opts ...Option) *Organizer {
	o := &Organizer{
		console: os.Stdout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run validates path and performs one scan in the given mode. Validation
// failures (ErrInvalidPath, ErrNotADirectory) are returned before the log
// file is created; per-entry move failures never abort the scan and are
// reported in the Results of the returned Report.
func (o *Organizer) Run(path string, mode RunMode) (*Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
		}
		return nil, fmt.Errorf("cannot access path %q: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	// Log setup happens only after validation succeeds, so an aborted run
	// leaves no artifact behind.
	logger, err := logging.Open(path, o.logOpts...)
	if err != nil {
		return nil, fmt.Errorf("setting up run log: %w", err)
	}
	defer logger.Close()

	started := o.now()
	logger.Info(fmt.Sprintf("--- Starting cleanup (%s) in: %s ---", mode.Banner(), path))
	o.printf("Organizing files in: %s... (%s)", path, mode.Banner())

	stats, results, err := o.scan(path, mode, logger)
	if err != nil {
		logger.Error(fmt.Sprintf("scan aborted: %v", err))
		return nil, err
	}

	logger.Info("--- Summary ---")
	logger.Info(fmt.Sprintf("Total files processed: %d", stats.Processed))
	for _, label := range category.All() {
		if n := stats.Counts[label]; n > 0 {
			logger.Info(fmt.Sprintf("SUMMARY: %s: %d file(s)", label, n))
		}
	}
	logger.Info("--- Cleanup Finished ---")

	return &Report{
		Target:  path,
		Mode:    mode,
		Stats:   stats,
		Results: results,
		Started: started,
		Elapsed: o.now().Sub(started),
		LogPath: logger.Path(),
	}, nil
}

// scan enumerates the immediate entries of root and routes each regular
// file through the mover. Subdirectories and the log artifact are skipped.
func (o *Organizer) scan(root string, mode RunMode, logger *logging.Logger) (*Statistics, []Result, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, fmt.Errorf("reading directory %q: %w", root, err)
	}

	stats := NewStatistics()
	results := make([]Result, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == logging.FileName {
			continue
		}

		res := o.move(root, entry, mode, logger)
		results = append(results, res)

		if res.Outcome == SkippedError {
			// Skipped entries stay unprocessed and do not count.
			stats.AddSkipped()
			continue
		}
		stats.Add(res.Category, res.Size)
	}

	return stats, results, nil
}

// move routes one entry: classify, resolve conflicts, then move or simulate.
func (o *Organizer) move(root string, entry fs.DirEntry, mode RunMode, logger *logging.Logger) Result {
	name := entry.Name()
	src := filepath.Join(root, name)
	label := category.ClassifyName(name)

	var size int64
	if info, err := entry.Info(); err == nil {
		size = info.Size()
	}

	destDir := filepath.Join(root, label)

	if mode == Preview {
		// Preview creates nothing and probes nothing: the destination
		// directory may not exist yet, so conflict resolution is skipped
		// and the unresolved candidate path is reported.
		dest := filepath.Join(destDir, name)
		o.printf("Would move: %s -> %s", name, label)
		if label == category.Other {
			logger.Warn(fmt.Sprintf("DRY RUN UNKNOWN: %s -> %s", name, label))
		} else {
			logger.Info(fmt.Sprintf("DRY RUN: %s -> %s", name, label))
		}
		return Result{Source: src, Dest: dest, Category: label, Size: size, Outcome: WouldMove}
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return o.fail(logger, name, src, label, err)
	}

	dest, renamed := resolvePath(destDir, name, o.now())
	if renamed {
		logger.Warn(fmt.Sprintf("File exists, renaming: %s -> %s", name, filepath.Base(dest)))
	}

	if err := os.Rename(src, dest); err != nil {
		return o.fail(logger, name, src, label, err)
	}

	if label == category.Other {
		logger.Warn(fmt.Sprintf("UNKNOWN: %s -> %s", name, label))
	} else {
		logger.Info(fmt.Sprintf("MOVED: %s -> %s", name, label))
	}
	return Result{Source: src, Dest: dest, Category: label, Size: size, Outcome: Moved}
}

// fail reports a per-entry failure to both the log and the console and
// returns a SkippedError result. The scan continues with the next entry.
func (o *Organizer) fail(logger *logging.Logger, name, src, label string, err error) Result {
	logger.Error(fmt.Sprintf("ERROR moving %s: %v", name, err))
	o.printf("Error moving %s: %v", name, err)
	return Result{Source: src, Category: label, Outcome: SkippedError, Err: err}
}

// printf writes a user-facing progress line.
func (o *Organizer) printf(format string, args ...interface{}) {
	fmt.Fprintf(o.console, format+"\n", args...)
}
