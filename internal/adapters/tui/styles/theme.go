package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Source colors
	SourceRunning   = lipgloss.Color("#10B981") // Green
	SourceCandidate = lipgloss.Color("#F59E0B") // Amber
	SourceImported  = lipgloss.Color("#60A5FA") // Blue

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// List row styles
	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	RowMarked = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	RowName = lipgloss.NewStyle().
		Bold(true)

	RowMeta = lipgloss.NewStyle().
		Foreground(Muted)

	// Snippet styles
	SnippetName = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	SnippetXPath = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	SnippetBody = lipgloss.NewStyle().
			Foreground(White)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// SourceColor returns the color for a snapshot source
func SourceColor(source string) lipgloss.Color {
	switch source {
	case "running":
		return SourceRunning
	case "candidate":
		return SourceCandidate
	case "imported":
		return SourceImported
	default:
		return Muted
	}
}
