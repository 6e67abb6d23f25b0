package services

import (
	"context"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/ports"
)

// SelectionService keeps the history of highlighted tab selections
type SelectionService struct {
	state *State
	tabs  ports.TabService
}

// NewSelectionService creates a new SelectionService
func NewSelectionService(state *State, tabs ports.TabService) *SelectionService {
	return &SelectionService{
		state: state,
		tabs:  tabs,
	}
}

// RecordHighlightEvent snapshots the highlighted tabs of a window into the history.
// A failed host query pushes an empty selection.
func (s *SelectionService) RecordHighlightEvent(ctx context.Context, windowID int) domain.Selection {
	tabs, err := s.tabs.HighlightedTabs(ctx, windowID)
	if err != nil {
		logging.Logger.Error("Failed to query highlighted tabs", "error", err, "window_id", windowID)
		tabs = nil
	}

	selection := domain.NewSelection(tabs)
	s.state.History.Push(selection)

	logging.Logger.Debug("Selection recorded",
		"window_id", windowID,
		"highlighted", len(tabs),
		"bookmarkable", selection.Len())

	return selection
}

// Snapshot returns the selection in a history slot
func (s *SelectionService) Snapshot(slot int) domain.Selection {
	return s.state.History.At(slot)
}

// Reset empties the history
func (s *SelectionService) Reset() {
	s.state.History.Reset()
	logging.Logger.Debug("Selection history reset")
}
