package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Journal manages run history entries on the filesystem.
type Journal struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// New creates a Journal rooted at dir. The directory is not created until
// EnsureDir is called.
func New(dir string) (*Journal, error) {
	if dir == "" {
		return nil, errors.New("journal directory cannot be empty")
	}
	return &Journal{dir: dir, now: time.Now}, nil
}

// EnsureDir creates the journal directory if it does not exist.
func (j *Journal) EnsureDir() error {
	return os.MkdirAll(j.dir, 0o755)
}

// Record creates and persists an entry for one run.
func (j *Journal) Record(mode, target string, files []MoveRecord) (*Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	var summary Summary
	for _, f := range files {
		if f.Outcome == "skipped-error" {
			summary.Skipped++
			continue
		}
		summary.TotalFiles++
		summary.TotalBytes += f.Size
	}

	entry := &Entry{
		ID:        uuid.NewString(),
		Timestamp: j.now().UTC(),
		Mode:      mode,
		Target:    target,
		Files:     files,
		Summary:   summary,
	}

	if err := j.writeEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to write journal entry: %w", err)
	}
	return entry, nil
}

// writeEntry writes an entry to a JSON file in the journal directory,
// atomically via a temp file and rename.
func (j *Journal) writeEntry(entry *Entry) error {
	path := filepath.Join(j.dir, j.entryFilename(entry))

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// entryFilename builds a sortable filename: timestamp plus an ID prefix.
func (j *Journal) entryFilename(entry *Entry) string {
	short := entry.ID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("%s-%s.json", entry.Timestamp.Format("20060102T150405Z"), short)
}

// List returns all entries sorted newest first.
func (j *Journal) List() ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	files, err := os.ReadDir(j.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read journal directory: %w", err)
	}

	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(j.dir, f.Name()))
		if err != nil {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			// Unreadable entries are skipped rather than failing the listing.
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(a, b int) bool {
		return entries[a].Timestamp.After(entries[b].Timestamp)
	})
	return entries, nil
}

// Prune removes entries older than retention. It returns how many entries
// were removed.
func (j *Journal) Prune(retention time.Duration) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	files, err := os.ReadDir(j.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read journal directory: %w", err)
	}

	cutoff := j.now().UTC().Add(-retention)
	removed := 0
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		path := filepath.Join(j.dir, f.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			continue
		}
		if entry.Timestamp.Before(cutoff) {
			if err := os.Remove(path); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
