package output

import (
	"bytes"
	"encoding/json"
)

// jsonReport is the JSON wire structure for a run summary.
type jsonReport struct {
	Target     string          `json:"target"`
	Mode       string          `json:"mode"`
	Processed  int64           `json:"processed"`
	Skipped    int64           `json:"skipped"`
	Categories []CategoryCount `json:"categories"`
	TotalBytes int64           `json:"total_bytes"`
	Elapsed    string          `json:"elapsed"`
	LogPath    string          `json:"log_path,omitempty"`
}

// JSONFormatter renders the summary as a single indented JSON object.
// Zero-count categories are omitted for compactness.
type JSONFormatter struct{}

// Format writes the formatted summary to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Report) error {
	out := jsonReport{
		Target:     r.Target,
		Mode:       r.Mode,
		Processed:  r.Processed,
		Skipped:    r.Skipped,
		Categories: r.NonZero(),
		TotalBytes: r.TotalBytes,
		Elapsed:    r.Elapsed.String(),
		LogPath:    r.LogPath,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
