package views

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rnamap/internal/adapters/format"
	"rnamap/internal/adapters/tui/styles"
	"rnamap/internal/application/commands"
	"rnamap/internal/domain"
	"rnamap/internal/ports"
)

// Filter selects which mapping entries are listed
type Filter int

const (
	FilterAll Filter = iota
	FilterMatched
	FilterDeleted
	FilterInserted
	numFilters
)

var filterNames = [numFilters]string{"all", "matched", "deleted", "inserted"}

func (f Filter) String() string {
	if f < 0 || f >= numFilters {
		return "unknown"
	}
	return filterNames[f]
}

// Keep reports whether an entry passes the filter
func (f Filter) Keep(e domain.Entry) bool {
	switch f {
	case FilterMatched:
		return e.IsMatch()
	case FilterDeleted:
		return e.Template != 0 && e.Target == 0
	case FilterInserted:
		return e.Template == 0 && e.Target != 0
	default:
		return true
	}
}

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Filter   key.Binding
	Edit     key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Filter: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "filter"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit input"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy mapping"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// headerLines is the number of lines drawn above and below the entry list
const headerLines = 16

// BrowserModel lists the mapping entries of one alignment
type BrowserModel struct {
	ViewState

	files     ports.FileStore
	inputPath string
	clip      func(string) error

	result  *commands.InspectResult
	filter  Filter
	visible []domain.Entry
	pager   *Paginator
	loadErr error
}

// NewBrowserModel creates a browser for the alignment at inputPath
func NewBrowserModel(files ports.FileStore, inputPath string) *BrowserModel {
	return &BrowserModel{
		files:     files,
		inputPath: inputPath,
		clip:      clipboard.WriteAll,
		pager:     NewPaginator(20),
	}
}

// Init loads the alignment
func (m *BrowserModel) Init() tea.Cmd {
	return m.load
}

func (m *BrowserModel) load() tea.Msg {
	result, err := commands.NewInspectCommand(m.files, m.inputPath).Execute(context.Background())
	if err != nil {
		return loadErrMsg{err}
	}
	return mappingLoadedMsg{result}
}

type mappingLoadedMsg struct {
	result *commands.InspectResult
}

type loadErrMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case mappingLoadedMsg:
		m.result = msg.result
		m.loadErr = nil
		m.refreshVisible()
		return m, nil

	case loadErrMsg:
		m.loadErr = msg.err
		m.SetError("", msg.err)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.SetError("Copy", msg.err)
		} else {
			m.SetMessage("Copied mapping to clipboard", false)
		}
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.pager.CursorUp()

		case key.Matches(msg, BrowserKeys.Down):
			m.pager.CursorDown()

		case key.Matches(msg, BrowserKeys.PrevPage):
			m.pager.PrevPage()

		case key.Matches(msg, BrowserKeys.NextPage):
			m.pager.NextPage()

		case key.Matches(msg, BrowserKeys.Top):
			m.pager.First()

		case key.Matches(msg, BrowserKeys.Bottom):
			m.pager.Last()

		case key.Matches(msg, BrowserKeys.Filter):
			m.filter = (m.filter + 1) % numFilters
			m.pager.First()
			m.refreshVisible()

		case key.Matches(msg, BrowserKeys.Copy):
			return m, m.copyMapping()

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Edit):
			path := m.inputPath
			return m, func() tea.Msg {
				return OpenEditorMsg{Path: path}
			}

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) copyMapping() tea.Cmd {
	if m.result == nil {
		return nil
	}
	mapping := m.result.Conversion.Mapping
	copyFn := m.clip
	return func() tea.Msg {
		var buf bytes.Buffer
		if err := (format.TextCodec{}).Encode(&buf, mapping); err != nil {
			return copiedMsg{err}
		}
		return copiedMsg{copyFn(buf.String())}
	}
}

func (m *BrowserModel) refreshVisible() {
	m.visible = m.visible[:0]
	if m.result != nil {
		for _, e := range m.result.Conversion.Mapping.Entries {
			if m.filter.Keep(e) {
				m.visible = append(m.visible, e)
			}
		}
	}
	m.pager.SetTotal(len(m.visible))
}

// SelectedEntry returns the entry under the cursor
func (m *BrowserModel) SelectedEntry() (domain.Entry, bool) {
	c := m.pager.Cursor()
	if c >= 0 && c < len(m.visible) {
		return m.visible[c], true
	}
	return domain.Entry{}, false
}

// View renders the browser
func (m *BrowserModel) View() string {
	v := NewViewBuilder()
	v.Title("rnamap")

	if m.result == nil {
		if m.loadErr != nil {
			v.Subtitle(m.inputPath)
			v.Message(m.loadErr.Error(), true)
			v.Help(BrowserKeys.Edit, BrowserKeys.Reload, BrowserKeys.Quit)
			return v.String()
		}
		return v.Line("Loading...").String()
	}

	conv := m.result.Conversion
	a := conv.Alignment
	v.Subtitle(fmt.Sprintf("%s  %s", m.inputPath, a.SequenceName))

	v.Variant(a.Template.Variant.String(), a.Template.Sequence, a.Template.Structure)
	v.Variant(a.Target.Variant.String(), a.Target.Sequence, a.Target.Structure)
	v.BlankLine()

	v.Summary(conv.Mapping.Distance, m.result.Matched, len(m.result.Deleted), len(m.result.Inserted))
	v.BlankLine()

	v.Line(m.renderTabs())
	v.BlankLine()

	if len(m.visible) == 0 {
		v.Muted("  no entries")
	}
	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		v.Line(m.renderEntry(m.visible[i], i == m.pager.Cursor()))
	}
	if m.pager.TotalPages() > 1 {
		v.Muted(fmt.Sprintf("  page %d/%d", m.pager.CurrentPage(), m.pager.TotalPages()))
	}
	v.BlankLine()

	v.Message(m.Message, m.MessageErr)
	v.Help(BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.Filter, BrowserKeys.Edit,
		BrowserKeys.Copy, BrowserKeys.Help, BrowserKeys.Quit)

	return v.String()
}

func (m *BrowserModel) renderTabs() string {
	var parts []string
	for f := FilterAll; f < numFilters; f++ {
		if f == m.filter {
			parts = append(parts, styles.TabActive.Render(f.String()))
		} else {
			parts = append(parts, styles.TabInactive.Render(f.String()))
		}
	}
	return strings.Join(parts, " ")
}

func (m *BrowserModel) renderEntry(e domain.Entry, selected bool) string {
	conv := m.result.Conversion
	text := FormatEntry(e, conv)

	if selected {
		return "> " + styles.EntrySelected.Render(text)
	}
	switch {
	case e.Template == 0:
		return "  " + styles.EntryInserted.Render(text)
	case e.Target == 0:
		return "  " + styles.EntryDeleted.Render(text)
	default:
		return "  " + styles.EntryMatched.Render(text)
	}
}

// FormatEntry renders an entry with the shapes of both nodes, for example
// "   1 P(1,4)    ->    3 P(1,4)" or "   2 U(5)      ->    - -"
func FormatEntry(e domain.Entry, conv *domain.Conversion) string {
	return fmt.Sprintf("%s  ->  %s",
		formatSide(e.Template, conv.TemplateNode),
		formatSide(e.Target, conv.TargetNode))
}

func formatSide(n int, lookup func(int) (domain.Node, bool)) string {
	if n == 0 {
		return fmt.Sprintf("%4s %-10s", "-", "-")
	}
	node, ok := lookup(n)
	if !ok {
		return fmt.Sprintf("%4d %-10s", n, "?")
	}
	return fmt.Sprintf("%4d %-10s", n, node.String())
}

// SetSize updates the view dimensions and the page size
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(m.BodyHeight(headerLines, 5))
}

// Reload reads the alignment again
func (m *BrowserModel) Reload() tea.Cmd {
	return m.load
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}

// OpenEditorMsg asks the app to open a file in the editor
type OpenEditorMsg struct {
	Path string
}
