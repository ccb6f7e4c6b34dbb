// Package journal provides durable run history for tidy. Each run appends
// one JSON entry recording what was moved (or would have been moved), so
// past runs can be reviewed after the fact. The journal is history only;
// it carries no undo information.
package journal

import "time"

// Entry represents one recorded run.
type Entry struct {
	ID        string       `json:"id"`
	Timestamp time.Time    `json:"timestamp"`
	Mode      string       `json:"mode"`
	Target    string       `json:"target"`
	Files     []MoveRecord `json:"files"`
	Summary   Summary      `json:"summary"`
}

// MoveRecord represents one routed file.
type MoveRecord struct {
	Source   string `json:"source"`
	Dest     string `json:"dest"`
	Category string `json:"category"`
	Size     int64  `json:"size"`
	Outcome  string `json:"outcome"`
	Error    string `json:"error,omitempty"`
}

// Summary contains run totals.
type Summary struct {
	TotalFiles int64 `json:"total_files"`
	TotalBytes int64 `json:"total_bytes"`
	Skipped    int64 `json:"skipped"`
}
