// Package memhost is an in-memory browser host. It backs the coordinator in
// tests and can simulate user actions by publishing the events a real
// browser would send.
package memhost

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"sync"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/ports"
)

// Well-known bookmark folder ids
const (
	RootID          = "0"
	BookmarksBarID  = "1"
	OtherBookmarkID = "2"
)

type tab struct {
	record      domain.TabRecord
	windowID    int
	highlighted bool
}

type bookmark struct {
	node     domain.BookmarkNode
	children []string
}

// Host implements ports.Host in memory
type Host struct {
	mu        sync.Mutex
	publisher ports.EventPublisher

	nextID    int
	tabs      map[int]*tab
	tabOrder  []int
	bookmarks map[string]*bookmark
	windows   map[int]*domain.Window
	displays  []domain.Display

	notifications []domain.Notification
	menuItems     []domain.MenuItem
	failures      map[domain.HostMethod]error
	calls         map[domain.HostMethod]int

	// AdjustWindow, when set, rewrites the bounds of newly created windows
	AdjustWindow func(domain.WindowCreateParams) domain.WindowState
}

// Verify interface compliance at compile time
var _ ports.Host = (*Host)(nil)

// New creates a host with an empty bookmark tree and one 1920x1080 display
func New() *Host {
	h := &Host{
		nextID:    100,
		tabs:      make(map[int]*tab),
		bookmarks: make(map[string]*bookmark),
		windows:   make(map[int]*domain.Window),
		failures:  make(map[domain.HostMethod]error),
		calls:     make(map[domain.HostMethod]int),
		displays: []domain.Display{{
			ID:        "display-1",
			IsPrimary: true,
			WorkArea:  domain.Rect{Left: 0, Top: 0, Width: 1920, Height: 1080},
		}},
	}
	h.bookmarks[RootID] = &bookmark{node: domain.BookmarkNode{ID: RootID}}
	h.addBookmarkLocked(RootID, BookmarksBarID, "Bookmarks bar", "")
	h.addBookmarkLocked(RootID, OtherBookmarkID, "Other bookmarks", "")
	return h
}

// SetPublisher makes the host emit events for simulated user actions
func (h *Host) SetPublisher(p ports.EventPublisher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.publisher = p
}

// Fail makes every call to method return err until cleared with a nil err
func (h *Host) Fail(method domain.HostMethod, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err == nil {
		delete(h.failures, method)
		return
	}
	h.failures[method] = err
}

// Calls returns how many times method was called
func (h *Host) Calls(method domain.HostMethod) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls[method]
}

// SetDisplays replaces the display list
func (h *Host) SetDisplays(displays []domain.Display) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.displays = displays
}

// begin records a call and returns the injected failure, if any. Caller holds mu.
func (h *Host) begin(method domain.HostMethod) error {
	h.calls[method]++
	return h.failures[method]
}

func (h *Host) newID() int {
	h.nextID++
	return h.nextID
}

// HighlightedTabs implements ports.TabService
func (h *Host) HighlightedTabs(_ context.Context, windowID int) ([]domain.TabRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(domain.MethodTabsQueryHighlighted); err != nil {
		return nil, err
	}
	var out []domain.TabRecord
	for _, id := range h.tabOrder {
		t := h.tabs[id]
		if t.windowID == windowID && t.highlighted {
			out = append(out, t.record)
		}
	}
	return out, nil
}

// RemoveTab implements ports.TabService
func (h *Host) RemoveTab(_ context.Context, tabID int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(domain.MethodTabsRemove); err != nil {
		return err
	}
	if _, ok := h.tabs[tabID]; !ok {
		return fmt.Errorf("no tab with id: %d", tabID)
	}
	delete(h.tabs, tabID)
	for i, id := range h.tabOrder {
		if id == tabID {
			h.tabOrder = append(h.tabOrder[:i], h.tabOrder[i+1:]...)
			break
		}
	}
	return nil
}

// CreateBookmark implements ports.BookmarkRepository
func (h *Host) CreateBookmark(_ context.Context, params domain.CreateBookmarkParams) (domain.BookmarkNode, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(domain.MethodBookmarksCreate); err != nil {
		return domain.BookmarkNode{}, err
	}
	parent, ok := h.bookmarks[params.ParentID]
	if !ok || !parent.node.IsFolder() {
		return domain.BookmarkNode{}, fmt.Errorf("can't find parent bookmark for id: %s", params.ParentID)
	}
	if params.URL != "" {
		u, err := url.Parse(params.URL)
		if err != nil || u.Scheme == "" {
			return domain.BookmarkNode{}, fmt.Errorf("invalid URL: %s", params.URL)
		}
	}
	id := strconv.Itoa(h.newID())
	return h.addBookmarkLocked(params.ParentID, id, params.Title, params.URL), nil
}

func (h *Host) addBookmarkLocked(parentID, id, title, rawURL string) domain.BookmarkNode {
	node := domain.BookmarkNode{ID: id, ParentID: parentID, Title: title, URL: rawURL}
	h.bookmarks[id] = &bookmark{node: node}
	parent := h.bookmarks[parentID]
	parent.children = append(parent.children, id)
	return node
}

// GetBookmark implements ports.BookmarkRepository
func (h *Host) GetBookmark(_ context.Context, id string) (domain.BookmarkNode, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(domain.MethodBookmarksGet); err != nil {
		return domain.BookmarkNode{}, err
	}
	b, ok := h.bookmarks[id]
	if !ok {
		return domain.BookmarkNode{}, fmt.Errorf("%w: %s", domain.ErrBookmarkNotFound, id)
	}
	return b.node, nil
}

// GetTree implements ports.BookmarkRepository
func (h *Host) GetTree(_ context.Context) ([]domain.BookmarkNode, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(domain.MethodBookmarksGetTree); err != nil {
		return nil, err
	}
	return []domain.BookmarkNode{h.subtreeLocked(RootID)}, nil
}

func (h *Host) subtreeLocked(id string) domain.BookmarkNode {
	b := h.bookmarks[id]
	node := b.node
	node.Children = nil
	for _, childID := range b.children {
		node.Children = append(node.Children, h.subtreeLocked(childID))
	}
	return node
}

// CreateWindow implements ports.WindowManager
func (h *Host) CreateWindow(_ context.Context, params domain.WindowCreateParams) (domain.Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(domain.MethodWindowsCreate); err != nil {
		return domain.Window{}, err
	}
	geometry := domain.WindowState{Width: params.Width, Height: params.Height, Top: params.Top, Left: params.Left}
	if h.AdjustWindow != nil {
		geometry = h.AdjustWindow(params)
	}
	win := &domain.Window{
		ID:      h.newID(),
		Type:    params.Type,
		State:   domain.WindowStateNormal,
		Focused: params.Focused,
		Width:   geometry.Width,
		Height:  geometry.Height,
		Top:     geometry.Top,
		Left:    geometry.Left,
	}
	if win.Type == "" {
		win.Type = domain.WindowTypeNormal
	}
	h.windows[win.ID] = win
	return *win, nil
}

// GetWindow implements ports.WindowManager
func (h *Host) GetWindow(_ context.Context, windowID int) (domain.Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(domain.MethodWindowsGet); err != nil {
		return domain.Window{}, err
	}
	win, ok := h.windows[windowID]
	if !ok {
		return domain.Window{}, fmt.Errorf("%w: %d", domain.ErrWindowNotFound, windowID)
	}
	return *win, nil
}

// RemoveWindow implements ports.WindowManager
func (h *Host) RemoveWindow(_ context.Context, windowID int) error {
	h.mu.Lock()
	if err := h.begin(domain.MethodWindowsRemove); err != nil {
		h.mu.Unlock()
		return err
	}
	publisher, err := h.removeWindowLocked(windowID)
	h.mu.Unlock()
	if err != nil {
		return err
	}
	publish(publisher, domain.Event{Type: domain.EventWindowRemoved, Payload: domain.WindowRemovedPayload{WindowID: windowID}})
	return nil
}

func (h *Host) removeWindowLocked(windowID int) (ports.EventPublisher, error) {
	if _, ok := h.windows[windowID]; !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrWindowNotFound, windowID)
	}
	delete(h.windows, windowID)
	return h.publisher, nil
}

// UpdateWindow implements ports.WindowManager
func (h *Host) UpdateWindow(_ context.Context, windowID int, params domain.WindowUpdateParams) (domain.Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(domain.MethodWindowsUpdate); err != nil {
		return domain.Window{}, err
	}
	win, ok := h.windows[windowID]
	if !ok {
		return domain.Window{}, fmt.Errorf("%w: %d", domain.ErrWindowNotFound, windowID)
	}
	win.Width, win.Height, win.Top, win.Left = params.Width, params.Height, params.Top, params.Left
	return *win, nil
}

// Displays implements ports.DisplayLister
func (h *Host) Displays(_ context.Context) ([]domain.Display, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(domain.MethodDisplayGetInfo); err != nil {
		return nil, err
	}
	return append([]domain.Display(nil), h.displays...), nil
}

// Notify implements ports.Notifier
func (h *Host) Notify(_ context.Context, n domain.Notification) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(domain.MethodNotificationsCreate); err != nil {
		return err
	}
	h.notifications = append(h.notifications, n)
	return nil
}

// RegisterMenuItem implements ports.MenuRegistrar
func (h *Host) RegisterMenuItem(_ context.Context, item domain.MenuItem) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(domain.MethodContextMenusCreate); err != nil {
		return err
	}
	for _, existing := range h.menuItems {
		if existing.ID == item.ID {
			return fmt.Errorf("duplicate menu item id: %s", item.ID)
		}
	}
	h.menuItems = append(h.menuItems, item)
	return nil
}

// Notifications returns every notification shown so far
func (h *Host) Notifications() []domain.Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]domain.Notification(nil), h.notifications...)
}

// MenuItems returns the registered context menu items
func (h *Host) MenuItems() []domain.MenuItem {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]domain.MenuItem(nil), h.menuItems...)
}

// Windows returns all open windows ordered by id
func (h *Host) Windows() []domain.Window {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]domain.Window, 0, len(h.windows))
	for _, w := range h.windows {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Children returns the direct children of a bookmark folder
func (h *Host) Children(parentID string) []domain.BookmarkNode {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.bookmarks[parentID]
	if !ok {
		return nil
	}
	out := make([]domain.BookmarkNode, 0, len(b.children))
	for _, id := range b.children {
		out = append(out, h.bookmarks[id].node)
	}
	return out
}

// TabIDs returns the ids of all open tabs
func (h *Host) TabIDs() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]int(nil), h.tabOrder...)
}

// ErrNoPublisher is returned by simulations that need to emit an event
var ErrNoPublisher = errors.New("memhost: no event publisher set")

func publish(p ports.EventPublisher, e domain.Event) {
	if p != nil {
		p.Publish(e)
	}
}
