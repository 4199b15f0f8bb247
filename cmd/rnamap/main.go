package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rnamap/internal/adapters/editor"
	"rnamap/internal/adapters/filesystem"
	"rnamap/internal/adapters/tui"
)

func main() {
	input := flag.String("input", "", "alignment file to browse")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Error: --input is required")
		flag.Usage()
		os.Exit(2)
	}

	// Initialize adapters
	files := filesystem.NewStore()
	editorOpener := editor.NewOpener()

	// Create and run TUI app
	app := tui.NewApp(files, editorOpener, filesystem.ExpandPath(*input))

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
