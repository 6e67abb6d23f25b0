package services

import (
	"context"
	"fmt"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/events"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/ports"
)

// BoundsService persists the dialog geometry after the user stops moving it
type BoundsService struct {
	debouncer *events.Debouncer
	state     *State
	store     *StoreService
	windows   ports.WindowManager
}

// NewBoundsService creates a new BoundsService
func NewBoundsService(state *State, store *StoreService, windows ports.WindowManager, debouncer *events.Debouncer) *BoundsService {
	return &BoundsService{
		debouncer: debouncer,
		state:     state,
		store:     store,
		windows:   windows,
	}
}

// HandleBoundsChanged (re)arms the debounced write when the dialog moves.
// Events for other windows are ignored.
func (s *BoundsService) HandleBoundsChanged(ctx context.Context, win domain.Window) {
	if !s.state.IsDialog(win.ID) || win.Type != domain.WindowTypePopup {
		return
	}

	windowID := win.ID
	s.debouncer.Schedule(func(ctx context.Context) {
		s.persistCurrentBounds(ctx, windowID)
	})
}

// Pending reports whether a debounced write is armed
func (s *BoundsService) Pending() bool {
	return s.debouncer.Pending()
}

// SaveWindowState persists a geometry immediately
func (s *BoundsService) SaveWindowState(ctx context.Context, state domain.WindowState) error {
	if !state.Valid() {
		return fmt.Errorf("invalid window state %dx%d", state.Width, state.Height)
	}
	if err := s.store.SaveWindowState(ctx, state); err != nil {
		logging.Logger.Error("Failed to save dialog geometry", "error", err)
		return err
	}
	logging.Logger.Debug("Dialog geometry saved", "state", state)
	return nil
}

// persistCurrentBounds re-reads the window and stores its bounds when it is
// still an unmaximized popup
func (s *BoundsService) persistCurrentBounds(ctx context.Context, windowID int) {
	win, err := s.windows.GetWindow(ctx, windowID)
	if err != nil {
		logging.Logger.Debug("Dialog gone before bounds were saved", "error", err, "window_id", windowID)
		return
	}
	if win.Type != domain.WindowTypePopup || win.State != domain.WindowStateNormal {
		logging.Logger.Debug("Skipping bounds save", "window_id", windowID, "type", win.Type, "state", win.State)
		return
	}
	if err := s.store.SaveWindowState(ctx, win.Geometry()); err != nil {
		logging.Logger.Error("Failed to save dialog geometry", "error", err, "window_id", windowID)
		return
	}
	logging.Logger.Debug("Dialog geometry saved", "window_id", windowID, "state", win.Geometry())
}
