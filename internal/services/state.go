package services

import "github.com/renato0307/tabstash/internal/domain"

// State is the coordinator's in-memory state. It is only touched from the
// task queue goroutine, so it carries no lock.
type State struct {
	History domain.SelectionHistory

	dialogID   int
	dialogOpen bool
}

// NewState creates an empty State
func NewState() *State {
	return &State{}
}

// DialogID returns the live dialog window id, if any
func (s *State) DialogID() (int, bool) {
	return s.dialogID, s.dialogOpen
}

// SetDialog records the live dialog window
func (s *State) SetDialog(windowID int) {
	s.dialogID = windowID
	s.dialogOpen = true
}

// ClearDialog forgets the live dialog window
func (s *State) ClearDialog() {
	s.dialogID = 0
	s.dialogOpen = false
}

// IsDialog reports whether windowID is the live dialog
func (s *State) IsDialog(windowID int) bool {
	return s.dialogOpen && s.dialogID == windowID
}
