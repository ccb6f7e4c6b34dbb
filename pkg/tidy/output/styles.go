package output

import "github.com/charmbracelet/lipgloss"

// Color constants using the ANSI 256-color palette.
const (
	// ColorPrimary is used for titles and headers (bright blue).
	ColorPrimary = lipgloss.Color("39")

	// ColorSuccess is used for commit-mode accents (green).
	ColorSuccess = lipgloss.Color("42")

	// ColorWarning is used for preview-mode accents and skips (orange).
	ColorWarning = lipgloss.Color("214")

	// ColorDanger is used for error counts (red).
	ColorDanger = lipgloss.Color("196")

	// ColorMuted is used for secondary text (gray).
	ColorMuted = lipgloss.Color("245")
)

// Box styles.
var (
	// SummaryBox frames the run summary.
	SummaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)
)

// Text styles.
var (
	// TitleStyle is used for the summary title.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// LabelStyle is used for field labels (e.g. "Target:").
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ValueStyle is used for field values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	// CategoryStyle is used for category labels in summary rows.
	CategoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// CountStyle is used for file counts.
	CountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	// WarningStyle is used for preview-mode notices and skip counts.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// ErrorStyle is used for error text.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	// MutedStyle is used for less important text such as the log path.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
