package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rnamap/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	v := NewViewBuilder()
	v.Title("rnamap Help")
	v.Subtitle("Template to target node mapping browser")

	v.Line(styles.InputLabel.Render("Navigation"))
	v.Raw(helpLine("j / k / ↑ / ↓", "Move up/down"))
	v.Raw(helpLine("h / l / ← / →", "Previous/next page"))
	v.Raw(helpLine("g / G", "First/last entry"))
	v.Raw(helpLine("tab", "Cycle filter: all, matched, deleted, inserted"))
	v.BlankLine()

	v.Line(styles.InputLabel.Render("Actions"))
	v.Raw(helpLine("e", "Edit the alignment in $EDITOR and reload"))
	v.Raw(helpLine("r", "Reload the alignment"))
	v.Raw(helpLine("y", "Copy the mapping in text format"))
	v.BlankLine()

	v.Line(styles.InputLabel.Render("General"))
	v.Raw(helpLine("?", "Toggle help"))
	v.Raw(helpLine("q / Ctrl+C", "Quit"))
	v.BlankLine()

	v.Line(styles.InputLabel.Render("Nodes"))
	v.Muted("  U(i)    unpaired column i")
	v.Muted("  P(i,j)  base pair between columns i and j")
	v.Line("  " + styles.EntryMatched.Render("matched") + "  " +
		styles.EntryDeleted.Render("deleted from template") + "  " +
		styles.EntryInserted.Render("inserted in target"))
	v.BlankLine()

	v.Raw(styles.HelpDesc.Render("Press "))
	v.Raw(styles.HelpKey.Render("esc"))
	v.Raw(styles.HelpDesc.Render(" or "))
	v.Raw(styles.HelpKey.Render("?"))
	v.Raw(styles.HelpDesc.Render(" to close"))

	return v.String()
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}
