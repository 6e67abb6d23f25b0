package memhost

import (
	"fmt"

	"github.com/renato0307/tabstash/internal/domain"
)

// OpenWindow opens a normal browser window and returns its id
func (h *Host) OpenWindow() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	win := &domain.Window{
		ID:     h.newID(),
		Type:   domain.WindowTypeNormal,
		State:  domain.WindowStateNormal,
		Width:  1280,
		Height: 800,
	}
	h.windows[win.ID] = win
	return win.ID
}

// OpenTab adds a tab to a window and returns its id
func (h *Host) OpenTab(windowID int, title, rawURL string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.newID()
	h.tabs[id] = &tab{
		record:   domain.TabRecord{ID: id, Title: title, URL: rawURL},
		windowID: windowID,
	}
	h.tabOrder = append(h.tabOrder, id)
	return id
}

// Highlight makes exactly tabIDs highlighted in the window and emits tabsHighlighted
func (h *Host) Highlight(windowID int, tabIDs ...int) error {
	h.mu.Lock()
	if h.publisher == nil {
		h.mu.Unlock()
		return ErrNoPublisher
	}
	wanted := make(map[int]bool, len(tabIDs))
	for _, id := range tabIDs {
		t, ok := h.tabs[id]
		if !ok || t.windowID != windowID {
			h.mu.Unlock()
			return fmt.Errorf("tab %d is not in window %d", id, windowID)
		}
		wanted[id] = true
	}
	for _, t := range h.tabs {
		if t.windowID == windowID {
			t.highlighted = wanted[t.record.ID]
		}
	}
	publisher := h.publisher
	h.mu.Unlock()

	publisher.Publish(domain.Event{
		Type:    domain.EventTabsHighlighted,
		Payload: domain.TabsHighlightedPayload{WindowID: windowID, TabIDs: tabIDs},
	})
	return nil
}

// MoveWindow changes a window's bounds as the user would and emits windowBoundsChanged
func (h *Host) MoveWindow(windowID int, bounds domain.WindowState) error {
	h.mu.Lock()
	if h.publisher == nil {
		h.mu.Unlock()
		return ErrNoPublisher
	}
	win, ok := h.windows[windowID]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("%w: %d", domain.ErrWindowNotFound, windowID)
	}
	win.Width, win.Height, win.Top, win.Left = bounds.Width, bounds.Height, bounds.Top, bounds.Left
	snapshot := *win
	publisher := h.publisher
	h.mu.Unlock()

	publisher.Publish(domain.Event{
		Type:    domain.EventWindowBoundsChanged,
		Payload: domain.WindowBoundsChangedPayload{Window: snapshot},
	})
	return nil
}

// SetWindowState maximizes, minimizes or restores a window
func (h *Host) SetWindowState(windowID int, state domain.WindowDisplayState) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	win, ok := h.windows[windowID]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrWindowNotFound, windowID)
	}
	win.State = state
	return nil
}

// CloseWindow closes a window as the user would and emits windowRemoved
func (h *Host) CloseWindow(windowID int) error {
	h.mu.Lock()
	publisher, err := h.removeWindowLocked(windowID)
	h.mu.Unlock()
	if err != nil {
		return err
	}
	publish(publisher, domain.Event{Type: domain.EventWindowRemoved, Payload: domain.WindowRemovedPayload{WindowID: windowID}})
	return nil
}

// ClickMenu emits menuClicked for a context menu item
func (h *Host) ClickMenu(menuItemID string) error {
	return h.emit(domain.Event{Type: domain.EventMenuClicked, Payload: domain.MenuClickedPayload{MenuItemID: menuItemID}})
}

// InvokeCommand emits commandInvoked for a keyboard command
func (h *Host) InvokeCommand(command string) error {
	return h.emit(domain.Event{Type: domain.EventCommandInvoked, Payload: domain.CommandInvokedPayload{Command: command}})
}

// Install emits the installed event
func (h *Host) Install() error {
	return h.emit(domain.Event{Type: domain.EventInstalled})
}

func (h *Host) emit(e domain.Event) error {
	h.mu.Lock()
	publisher := h.publisher
	h.mu.Unlock()
	if publisher == nil {
		return ErrNoPublisher
	}
	publisher.Publish(e)
	return nil
}
