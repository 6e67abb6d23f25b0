package domain

// WindowType is the host window kind
type WindowType string

const (
	WindowTypeNormal WindowType = "normal"
	WindowTypePopup  WindowType = "popup"
)

// WindowDisplayState is the host window display state
type WindowDisplayState string

const (
	WindowStateNormal     WindowDisplayState = "normal"
	WindowStateMinimized  WindowDisplayState = "minimized"
	WindowStateMaximized  WindowDisplayState = "maximized"
	WindowStateFullscreen WindowDisplayState = "fullscreen"
)

// Window is a host window as reported by the host
type Window struct {
	ID      int                `json:"id"`
	Type    WindowType         `json:"type"`
	State   WindowDisplayState `json:"state"`
	Focused bool               `json:"focused"`
	Width   int                `json:"width"`
	Height  int                `json:"height"`
	Top     int                `json:"top"`
	Left    int                `json:"left"`
}

// Geometry returns the window bounds as a WindowState
func (w Window) Geometry() WindowState {
	return WindowState{Width: w.Width, Height: w.Height, Top: w.Top, Left: w.Left}
}

// WindowCreateParams describes a window to open
type WindowCreateParams struct {
	URL     string     `json:"url"`
	Type    WindowType `json:"type"`
	Focused bool       `json:"focused"`
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Top     int        `json:"top"`
	Left    int        `json:"left"`
}

// WindowUpdateParams describes new bounds for an existing window
type WindowUpdateParams struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Top    int `json:"top"`
	Left   int `json:"left"`
}

// Rect is a screen rectangle
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Display is a physical display and its usable work area
type Display struct {
	ID        string `json:"id"`
	IsPrimary bool   `json:"isPrimary"`
	WorkArea  Rect   `json:"workArea"`
}
