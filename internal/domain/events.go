package domain

// EventType names a host or dialog event the coordinator reacts to
type EventType string

const (
	EventInstalled           EventType = "installed"
	EventTabsHighlighted     EventType = "tabsHighlighted"
	EventWindowBoundsChanged EventType = "windowBoundsChanged"
	EventWindowRemoved       EventType = "windowRemoved"
	EventMenuClicked         EventType = "menuClicked"
	EventCommandInvoked      EventType = "commandInvoked"
	EventMessageReceived     EventType = "messageReceived"
)

// Event is a single occurrence delivered to the coordinator.
// Payload holds one of the *Payload types below, matching Type.
type Event struct {
	Type    EventType
	Payload any
}

// TabsHighlightedPayload carries the window whose highlight changed
type TabsHighlightedPayload struct {
	WindowID int   `json:"windowId"`
	TabIDs   []int `json:"tabIds,omitempty"`
}

// WindowBoundsChangedPayload carries the window whose bounds changed
type WindowBoundsChangedPayload struct {
	Window Window `json:"window"`
}

// WindowRemovedPayload carries the removed window id
type WindowRemovedPayload struct {
	WindowID int `json:"windowId"`
}

// MenuClickedPayload carries the clicked context menu item
type MenuClickedPayload struct {
	MenuItemID string `json:"menuItemId"`
}

// CommandInvokedPayload carries the keyboard command name
type CommandInvokedPayload struct {
	Command string `json:"command"`
}

// MessageReceivedPayload carries a dialog request and the reply callback.
// Reply is called exactly once; with nil for actions without a response.
type MessageReceivedPayload struct {
	Request Request
	Reply   func(*Response, error)
}
