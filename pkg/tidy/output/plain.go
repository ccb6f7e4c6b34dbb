package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// PlainFormatter renders the summary as plain text suitable for scripting
// and piping. No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted summary to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Report) error {
	fmt.Fprintf(w, "Target: %s\n", r.Target)
	fmt.Fprintf(w, "Mode: %s\n", r.Mode)
	fmt.Fprintf(w, "Total files processed: %d\n", r.Processed)

	rows := r.NonZero()
	if len(rows) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	if _, err := tw.Write([]byte("CATEGORY\tFILES\tSIZE\n")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\n", row.Name, row.Count, row.BytesHuman); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.Skipped > 0 {
		fmt.Fprintf(w, "Skipped: %d\n", r.Skipped)
	}
	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
