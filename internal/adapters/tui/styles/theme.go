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

	// Mapping entry styles
	EntryMatched = lipgloss.NewStyle().
			Foreground(Secondary)

	EntryDeleted = lipgloss.NewStyle().
			Foreground(Error)

	EntryInserted = lipgloss.NewStyle().
			Foreground(Warning)

	EntrySelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Node shapes
	NodePaired = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	NodeUnpaired = lipgloss.NewStyle()

	// Structure strings
	Sequence = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	Structure = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A78BFA"))

	// Filter tabs
	TabActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Labels
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

	// Distance badge
	Distance = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Bold(true).
			Padding(0, 1)
)

// EntryColor returns the color for a mapping entry kind
func EntryColor(templateNode, targetNode int) lipgloss.Color {
	switch {
	case templateNode == 0:
		return Warning
	case targetNode == 0:
		return Error
	default:
		return Secondary
	}
}
