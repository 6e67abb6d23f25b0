package ports

import (
	"context"

	"github.com/renato0307/tabstash/internal/domain"
)

// TabService reads and closes browser tabs
type TabService interface {
	// HighlightedTabs returns every highlighted tab of a window in highlight order
	HighlightedTabs(ctx context.Context, windowID int) ([]domain.TabRecord, error)

	// RemoveTab closes a tab
	RemoveTab(ctx context.Context, tabID int) error
}

// BookmarkRepository reads and creates bookmarks and folders
type BookmarkRepository interface {
	// CreateBookmark creates a bookmark, or a folder when params.URL is empty
	CreateBookmark(ctx context.Context, params domain.CreateBookmarkParams) (domain.BookmarkNode, error)

	// GetBookmark returns a single node without children
	GetBookmark(ctx context.Context, id string) (domain.BookmarkNode, error)

	// GetTree returns the whole tree starting at the absolute root
	GetTree(ctx context.Context) ([]domain.BookmarkNode, error)
}

// WindowManager creates, moves and closes browser windows
type WindowManager interface {
	CreateWindow(ctx context.Context, params domain.WindowCreateParams) (domain.Window, error)
	GetWindow(ctx context.Context, windowID int) (domain.Window, error)
	RemoveWindow(ctx context.Context, windowID int) error
	UpdateWindow(ctx context.Context, windowID int, params domain.WindowUpdateParams) (domain.Window, error)
}

// DisplayLister lists the connected displays
type DisplayLister interface {
	Displays(ctx context.Context) ([]domain.Display, error)
}

// Notifier shows user-facing notifications
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// MenuRegistrar registers context menu items
type MenuRegistrar interface {
	RegisterMenuItem(ctx context.Context, item domain.MenuItem) error
}

// Host is the composite interface of everything the browser provides
type Host interface {
	TabService
	BookmarkRepository
	WindowManager
	DisplayLister
	Notifier
	MenuRegistrar
}
