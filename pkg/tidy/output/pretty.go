package output

import (
	"bytes"
	"fmt"
	"strings"
)

// PrettyFormatter renders the run summary as a styled box using lipgloss.
// It is the default formatter for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted summary to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Report) error {
	var lines []string

	lines = append(lines, TitleStyle.Render("ORGANIZATION SUMMARY"))
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("%s %s", LabelStyle.Render("Target:"), ValueStyle.Render(r.Target)))
	lines = append(lines, fmt.Sprintf("%s %s", LabelStyle.Render("Mode:"), f.renderMode(r.Mode)))
	lines = append(lines, fmt.Sprintf("%s %s", LabelStyle.Render("Total files processed:"),
		ValueStyle.Render(fmt.Sprintf("%d", r.Processed))))

	if rows := r.NonZero(); len(rows) > 0 {
		lines = append(lines, "")
		nameWidth := 0
		for _, row := range rows {
			if len(row.Name) > nameWidth {
				nameWidth = len(row.Name)
			}
		}
		for _, row := range rows {
			padded := row.Name + strings.Repeat(" ", nameWidth-len(row.Name))
			lines = append(lines, fmt.Sprintf("%s  %s  %s",
				CategoryStyle.Render(padded),
				CountStyle.Render(fmt.Sprintf("%d file(s)", row.Count)),
				MutedStyle.Render(row.BytesHuman)))
		}
	} else {
		lines = append(lines, "")
		lines = append(lines, MutedStyle.Render("No files to organize"))
	}

	if r.Skipped > 0 {
		lines = append(lines, "")
		lines = append(lines, ErrorStyle.Render(fmt.Sprintf("%d file(s) skipped due to errors", r.Skipped)))
	}

	w.WriteString(SummaryBox.Render(strings.Join(lines, "\n")))
	w.WriteString("\n")

	if r.LogPath != "" {
		w.WriteString(MutedStyle.Render(fmt.Sprintf("Details logged to %s", r.LogPath)))
		w.WriteString("\n")
	}

	return nil
}

// renderMode styles the mode label: preview runs get the warning color so
// the non-destructive pass is visually distinct.
func (f *PrettyFormatter) renderMode(mode string) string {
	if mode == "preview" {
		return WarningStyle.Render("DRY RUN")
	}
	return ValueStyle.Render("commit")
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
