package domain

import "time"

// Persistent store keys
const (
	// PendingTransferKey holds the selection handed from the coordinator to the dialog
	PendingTransferKey = "tabsToBookmark"
	// DialogWindowStateKey holds the last persisted dialog geometry
	DialogWindowStateKey = "saveDialogWindowState"
	// ThemeKey holds the dialog theme preference in the sync scope
	ThemeKey = "theme"
)

// StorageScope selects a partition of the persistent key-value store
type StorageScope string

const (
	// ScopeLocal is machine-local storage
	ScopeLocal StorageScope = "local"
	// ScopeSync is storage that follows the user across machines
	ScopeSync StorageScope = "sync"
)

// PendingTransfer is the selection awaiting a folder choice in the dialog
type PendingTransfer struct {
	Items          []TabRecord `json:"items" yaml:"items"`
	CloseAfterSave bool        `json:"closeAfterSave" yaml:"close_after_save"`
	Ticket         string      `json:"ticket,omitempty" yaml:"ticket,omitempty"`
	CreatedAt      time.Time   `json:"createdAt" yaml:"created_at"`
}

// TabIDs returns the ids of the tabs in the transfer
func (p PendingTransfer) TabIDs() []int {
	return Selection{Items: p.Items}.TabIDs()
}

// WindowState is the persisted geometry of the dialog window
type WindowState struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	Top    int `json:"top" yaml:"top"`
	Left   int `json:"left" yaml:"left"`
}

// Valid reports whether the state describes a usable window size
func (s WindowState) Valid() bool {
	return s.Width > 0 && s.Height > 0
}
