package views

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"rnamap/internal/domain"
)

type stubFiles map[string]string

func (s stubFiles) ReadFile(path string) ([]byte, error) {
	content, ok := s[path]
	if !ok {
		return nil, fmt.Errorf("failed to read %s: not found", path)
	}
	return []byte(content), nil
}

func (s stubFiles) Create(string) (io.WriteCloser, error) {
	return nil, errors.New("read only")
}

// Two stacked pairs around two inserted loop columns: four matched pairs
// and two inserted unpaired target nodes
const browserAlignment = ">demo\nGGAAaaUUCC\n>SS_cons\n((<<..>>))\n"

func loadedBrowser(t *testing.T) *BrowserModel {
	t.Helper()
	m := NewBrowserModel(stubFiles{"aln.txt": browserAlignment}, "aln.txt")
	m.SetSize(100, 40)

	msg := m.Init()()
	if _, ok := msg.(mappingLoadedMsg); !ok {
		t.Fatalf("expected mappingLoadedMsg, got %T", msg)
	}
	m.Update(msg)
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowser_LoadsEntries(t *testing.T) {
	m := loadedBrowser(t)

	if len(m.visible) != len(m.result.Conversion.Mapping.Entries) {
		t.Fatalf("expected all entries visible, got %d", len(m.visible))
	}
	view := m.View()
	if !strings.Contains(view, "DISTANCE 2") {
		t.Errorf("view missing distance:\n%s", view)
	}
	if !strings.Contains(view, "demo") {
		t.Errorf("view missing sequence name")
	}
}

func TestBrowser_FilterCycles(t *testing.T) {
	m := loadedBrowser(t)

	tests := []struct {
		filter Filter
		check  func(domain.Entry) bool
	}{
		{FilterMatched, domain.Entry.IsMatch},
		{FilterDeleted, func(e domain.Entry) bool { return e.Template != 0 && e.Target == 0 }},
		{FilterInserted, func(e domain.Entry) bool { return e.Template == 0 && e.Target != 0 }},
		{FilterAll, func(domain.Entry) bool { return true }},
	}

	for _, tt := range tests {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		if m.filter != tt.filter {
			t.Fatalf("expected filter %s, got %s", tt.filter, m.filter)
		}
		for _, e := range m.visible {
			if !tt.check(e) {
				t.Errorf("filter %s let through %v", tt.filter, e)
			}
		}
	}

	if len(m.visible) != len(m.result.Conversion.Mapping.Entries) {
		t.Errorf("filter all should show every entry")
	}
}

func TestBrowser_CursorMoves(t *testing.T) {
	m := loadedBrowser(t)

	m.Update(keyRunes("j"))
	m.Update(keyRunes("j"))
	if got, _ := m.SelectedEntry(); got != m.visible[2] {
		t.Errorf("expected third entry selected, got %v", got)
	}

	m.Update(keyRunes("G"))
	if got, _ := m.SelectedEntry(); got != m.visible[len(m.visible)-1] {
		t.Errorf("expected last entry selected, got %v", got)
	}

	m.Update(keyRunes("g"))
	if got, _ := m.SelectedEntry(); got != m.visible[0] {
		t.Errorf("expected first entry selected, got %v", got)
	}
}

func TestBrowser_Copy(t *testing.T) {
	m := loadedBrowser(t)
	var copied string
	m.clip = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := m.Update(keyRunes("y"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	m.Update(cmd())

	if !strings.HasPrefix(copied, "DISTANCE: 2\n") {
		t.Errorf("unexpected clipboard content %q", copied)
	}
	if m.Message != "Copied mapping to clipboard" || m.MessageErr {
		t.Errorf("unexpected message %q", m.Message)
	}
}

func TestBrowser_EditAndHelpEmitMessages(t *testing.T) {
	m := loadedBrowser(t)

	_, cmd := m.Update(keyRunes("e"))
	if msg, ok := cmd().(OpenEditorMsg); !ok || msg.Path != "aln.txt" {
		t.Errorf("expected OpenEditorMsg for aln.txt, got %#v", cmd())
	}

	_, cmd = m.Update(keyRunes("?"))
	if _, ok := cmd().(SwitchToHelpMsg); !ok {
		t.Errorf("expected SwitchToHelpMsg")
	}
}

func TestBrowser_LoadError(t *testing.T) {
	m := NewBrowserModel(stubFiles{"bad.txt": ">t\nAA\n>s\n((\n"}, "bad.txt")
	m.Update(m.Init()())

	if m.result != nil {
		t.Fatal("expected no result")
	}
	if !strings.Contains(m.View(), "unbalanced") {
		t.Errorf("expected error in view:\n%s", m.View())
	}
}

func TestFormatEntry(t *testing.T) {
	conv := &domain.Conversion{
		TemplateNodes: domain.NodeList{domain.Paired(0, 5)},
		TargetNodes:   domain.NodeList{domain.Unpaired(3), domain.Paired(0, 5)},
	}

	got := FormatEntry(domain.Entry{Template: 1, Target: 2}, conv)
	if !strings.Contains(got, "1 P(0,5)") || !strings.Contains(got, "2 P(0,5)") {
		t.Errorf("unexpected matched entry %q", got)
	}

	got = FormatEntry(domain.Entry{Template: 0, Target: 1}, conv)
	if !strings.HasPrefix(strings.TrimSpace(got), "- -") || !strings.Contains(got, "1 U(3)") {
		t.Errorf("unexpected inserted entry %q", got)
	}
}

func TestFilterString(t *testing.T) {
	if FilterDeleted.String() != "deleted" || Filter(9).String() != "unknown" {
		t.Errorf("unexpected filter names")
	}
}
