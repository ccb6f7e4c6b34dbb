// Package organize implements the classification-and-move engine: it scans
// the immediate entries of a target directory, classifies each file by
// extension, and either moves it into its category subdirectory or reports
// the move it would perform.
package organize

import (
	"errors"
	"time"

	"github.com/kfenner/tidy/pkg/tidy/category"
)

// Validation errors. Both abort a run before any scanning or log setup.
var (
	// ErrInvalidPath indicates the target path does not exist.
	ErrInvalidPath = errors.New("path does not exist")

	// ErrNotADirectory indicates the target exists but is not a directory.
	ErrNotADirectory = errors.New("path is not a directory")
)

// RunMode selects between a preview scan and a committing scan.
type RunMode int

const (
	// Preview computes and reports intended moves without touching the filesystem.
	Preview RunMode = iota
	// Commit creates category directories and performs the moves.
	Commit
)

// String returns the lowercase mode name.
func (m RunMode) String() string {
	if m == Preview {
		return "preview"
	}
	return "commit"
}

// Banner returns the mode label used in console and log banners.
func (m RunMode) Banner() string {
	if m == Preview {
		return "DRY RUN"
	}
	return "ACTUAL RUN"
}

// Outcome is the result of routing a single entry.
type Outcome int

const (
	// Moved means the file was relocated (Commit mode).
	Moved Outcome = iota
	// WouldMove means the move was simulated (Preview mode).
	WouldMove
	// SkippedError means the entry failed and was left in place.
	SkippedError
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case WouldMove:
		return "would-move"
	case SkippedError:
		return "skipped-error"
	default:
		return "unknown"
	}
}

// Result records what happened to one directory entry.
type Result struct {
	// Source is the absolute path of the entry before the move.
	Source string

	// Dest is the final destination path after conflict resolution.
	// In Preview mode this is the unresolved candidate path.
	Dest string

	// Category is the label the entry was classified under.
	Category string

	// Size is the entry size in bytes at scan time.
	Size int64

	// Outcome reports whether the entry was moved, simulated, or skipped.
	Outcome Outcome

	// Err is set when Outcome is SkippedError.
	Err error
}

// Statistics accumulates per-category counts for one run. A fresh value is
// created per scan; entries that fail are counted in Skipped only, so the
// sum of Counts always equals Processed.
type Statistics struct {
	Counts    map[string]int64
	Bytes     map[string]int64
	Processed int64
	Skipped   int64
}

// NewStatistics returns empty statistics with every category label present.
func NewStatistics() *Statistics {
	s := &Statistics{
		Counts: make(map[string]int64),
		Bytes:  make(map[string]int64),
	}
	for _, label := range category.All() {
		s.Counts[label] = 0
		s.Bytes[label] = 0
	}
	return s
}

// Add records one successfully routed entry.
func (s *Statistics) Add(label string, size int64) {
	s.Counts[label]++
	s.Bytes[label] += size
	s.Processed++
}

// AddSkipped records an entry that failed and was left in place.
func (s *Statistics) AddSkipped() {
	s.Skipped++
}

// TotalBytes returns the byte total across all categories.
func (s *Statistics) TotalBytes() int64 {
	var total int64
	for _, b := range s.Bytes {
		total += b
	}
	return total
}

// Report is the outcome of one orchestrated run.
type Report struct {
	// Target is the directory that was organized.
	Target string

	// Mode is the run mode the scan executed under.
	Mode RunMode

	// Stats holds the per-category counters for this run.
	Stats *Statistics

	// Results lists every entry the scan routed or skipped,
	// in filesystem-reported order.
	Results []Result

	// Started is when the scan began.
	Started time.Time

	// Elapsed is the total scan duration.
	Elapsed time.Duration

	// LogPath is the log artifact written during the run.
	LogPath string
}
