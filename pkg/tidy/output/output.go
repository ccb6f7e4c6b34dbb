// Package output provides formatters for rendering run summaries in
// various formats (pretty, plain, json).
//
// The package uses a registry pattern so formatters can be selected by
// name at runtime:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, report); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"
)

// CategoryCount is one summary row: how many files were routed to a
// category and how many bytes they held.
type CategoryCount struct {
	// Name is the category label.
	Name string `json:"name"`

	// Count is the number of files routed to this category.
	Count int64 `json:"count"`

	// Bytes is the byte total of those files.
	Bytes int64 `json:"bytes"`

	// BytesHuman is the human-readable byte total (e.g. "1.5 MiB").
	BytesHuman string `json:"bytes_human"`
}

// Report contains the complete summary data for one run.
// Categories appear in table declaration order with OTHER last,
// including zero rows; formatters decide what to omit.
type Report struct {
	// Target is the directory that was organized.
	Target string `json:"target"`

	// Mode is the run mode ("preview" or "commit").
	Mode string `json:"mode"`

	// Processed is the number of entries moved or simulated.
	Processed int64 `json:"processed"`

	// Skipped is the number of entries that errored and were left in place.
	Skipped int64 `json:"skipped"`

	// Categories holds the per-category rows in declaration order.
	Categories []CategoryCount `json:"categories"`

	// TotalBytes is the byte total across all categories.
	TotalBytes int64 `json:"total_bytes"`

	// TotalBytesHuman is the human-readable byte total.
	TotalBytesHuman string `json:"total_bytes_human"`

	// Elapsed is the scan duration.
	Elapsed time.Duration `json:"elapsed"`

	// LogPath is the log artifact written during the run.
	LogPath string `json:"log_path"`
}

// NonZero returns the category rows with at least one file, preserving order.
func (r *Report) NonZero() []CategoryCount {
	rows := make([]CategoryCount, 0, len(r.Categories))
	for _, c := range r.Categories {
		if c.Count > 0 {
			rows = append(rows, c)
		}
	}
	return rows
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted report to the buffer.
	Format(w *bytes.Buffer, r *Report) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It replaces any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
