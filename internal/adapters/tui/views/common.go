package views

import "fmt"

// ViewState is embedded by every view: terminal size plus a one-line
// status message that the next key press clears.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// BodyHeight returns the rows left for a list once chrome rows are taken,
// never fewer than minRows
func (s *ViewState) BodyHeight(chrome, minRows int) int {
	return max(s.Height-chrome, minRows)
}

// SetMessage sets the status message
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// SetError shows err as an error status, prefixed when action is set
func (s *ViewState) SetError(action string, err error) {
	if action == "" {
		s.SetMessage(err.Error(), true)
		return
	}
	s.SetMessage(fmt.Sprintf("%s failed: %v", action, err), true)
}

// ClearMessage clears the status message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}
