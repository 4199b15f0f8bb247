package ports

import "os/exec"

// EditorOpener launches the user's editor on an alignment file so it can be
// fixed and converted again
type EditorOpener interface {
	// OpenFile runs the editor on path and waits for it to exit
	OpenFile(path string) error

	// Command builds the editor process without starting it, for callers
	// that hand the terminal over themselves (tea.ExecProcess)
	Command(path string) (*exec.Cmd, error)
}
