package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/google/uuid"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/ports"
)

const (
	// DefaultCallTimeout bounds how long a host call waits for its result
	DefaultCallTimeout = 10 * time.Second
	pingInterval       = 10 * time.Second
)

// Host implements ports.Host over a WebSocket connection to a browser shim.
// Calls are correlated by id; events are published as they arrive.
type Host struct {
	publisher ports.EventPublisher
	timeout   time.Duration

	mu      sync.Mutex
	conn    *hostConn
	pending map[string]chan callResult
}

// Verify interface compliance at compile time
var _ ports.Host = (*Host)(nil)

type hostConn struct {
	net.Conn
	writeMu sync.Mutex
}

func (c *hostConn) writeFrame(f Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return wsutil.WriteServerText(c.Conn, data)
}

func (c *hostConn) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return wsutil.WriteServerMessage(c.Conn, ws.OpPing, nil)
}

type callResult struct {
	frame Frame
	err   error
}

// NewHost creates a Host that publishes shim events to publisher
func NewHost(publisher ports.EventPublisher, timeout time.Duration) *Host {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &Host{
		publisher: publisher,
		timeout:   timeout,
		pending:   make(map[string]chan callResult),
	}
}

// Connected reports whether a shim is attached
func (h *Host) Connected() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.conn != nil
}

// ServeHTTP upgrades the request and serves the shim until it disconnects.
// A new shim connection replaces the current one.
func (h *Host) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		logging.Logger.Error("Host upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}

	hc := &hostConn{Conn: conn}
	h.attach(hc)
	defer h.detach(hc)

	done := make(chan struct{})
	defer close(done)
	go h.keepAlive(hc, done)

	logging.Logger.Info("Host connected", "remote", r.RemoteAddr)
	for {
		data, op, err := wsutil.ReadClientData(conn)
		if err != nil {
			logging.Logger.Info("Host disconnected", "remote", r.RemoteAddr, "reason", err)
			return
		}
		if op != ws.OpText {
			continue
		}
		h.handleFrame(data)
	}
}

func (h *Host) keepAlive(hc *hostConn, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := hc.ping(); err != nil {
				logging.Logger.Debug("Host ping failed", "error", err)
				_ = hc.Close()
				return
			}
		}
	}
}

func (h *Host) attach(hc *hostConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conn != nil {
		logging.Logger.Warn("Replacing existing host connection")
		_ = h.conn.Close()
		h.failPendingLocked(errors.New("host connection replaced"))
	}
	h.conn = hc
}

func (h *Host) detach(hc *hostConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	_ = hc.Close()
	if h.conn != hc {
		return
	}
	h.conn = nil
	h.failPendingLocked(errors.New("host disconnected"))
}

func (h *Host) failPendingLocked(cause error) {
	for id, ch := range h.pending {
		ch <- callResult{err: fmt.Errorf("%w: %w", domain.ErrHostUnavailable, cause)}
		delete(h.pending, id)
	}
}

func (h *Host) handleFrame(data []byte) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		logging.Logger.Warn("Ignoring malformed host frame", "error", err)
		return
	}

	switch f.Type {
	case FrameResult:
		h.mu.Lock()
		ch, ok := h.pending[f.ID]
		delete(h.pending, f.ID)
		h.mu.Unlock()
		if !ok {
			logging.Logger.Debug("Result for unknown call", "id", f.ID)
			return
		}
		ch <- callResult{frame: f}
	case FrameEvent:
		event, err := decodeEvent(f)
		if err != nil {
			logging.Logger.Warn("Ignoring host event", "error", err)
			return
		}
		h.publisher.Publish(event)
	default:
		logging.Logger.Warn("Ignoring host frame", "type", f.Type)
	}
}

// call sends a call frame and decodes the result into out
func (h *Host) call(ctx context.Context, method domain.HostMethod, params any, out any) error {
	var raw json.RawMessage
	if params != nil {
		var err error
		if raw, err = json.Marshal(params); err != nil {
			return fmt.Errorf("failed to encode %s params: %w", method, err)
		}
	}

	id := uuid.NewString()
	ch := make(chan callResult, 1)

	h.mu.Lock()
	conn := h.conn
	if conn == nil {
		h.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrHostUnavailable, method)
	}
	h.pending[id] = ch
	h.mu.Unlock()
	defer h.forget(id)

	if err := conn.writeFrame(Frame{ID: id, Type: FrameCall, Method: method, Params: raw}); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrHostUnavailable, err)
	}

	timer := time.NewTimer(h.timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			return res.err
		}
		if res.frame.Error != "" {
			return errors.New(res.frame.Error)
		}
		if out != nil && len(res.frame.Result) > 0 {
			if err := json.Unmarshal(res.frame.Result, out); err != nil {
				return fmt.Errorf("failed to decode %s result: %w", method, err)
			}
		}
		return nil
	case <-timer.C:
		return fmt.Errorf("%w: %s timed out after %s", domain.ErrHostUnavailable, method, h.timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Host) forget(id string) {
	h.mu.Lock()
	delete(h.pending, id)
	h.mu.Unlock()
}

// HighlightedTabs implements ports.TabService
func (h *Host) HighlightedTabs(ctx context.Context, windowID int) ([]domain.TabRecord, error) {
	var tabs []domain.TabRecord
	err := h.call(ctx, domain.MethodTabsQueryHighlighted, windowRef{WindowID: windowID}, &tabs)
	return tabs, err
}

// RemoveTab implements ports.TabService
func (h *Host) RemoveTab(ctx context.Context, tabID int) error {
	return h.call(ctx, domain.MethodTabsRemove, tabRef{TabID: tabID}, nil)
}

// CreateBookmark implements ports.BookmarkRepository
func (h *Host) CreateBookmark(ctx context.Context, params domain.CreateBookmarkParams) (domain.BookmarkNode, error) {
	var node domain.BookmarkNode
	err := h.call(ctx, domain.MethodBookmarksCreate, params, &node)
	return node, err
}

// GetBookmark implements ports.BookmarkRepository
func (h *Host) GetBookmark(ctx context.Context, id string) (domain.BookmarkNode, error) {
	var node domain.BookmarkNode
	err := h.call(ctx, domain.MethodBookmarksGet, bookmarkRef{ID: id}, &node)
	return node, err
}

// GetTree implements ports.BookmarkRepository
func (h *Host) GetTree(ctx context.Context) ([]domain.BookmarkNode, error) {
	var tree []domain.BookmarkNode
	err := h.call(ctx, domain.MethodBookmarksGetTree, nil, &tree)
	return tree, err
}

// CreateWindow implements ports.WindowManager
func (h *Host) CreateWindow(ctx context.Context, params domain.WindowCreateParams) (domain.Window, error) {
	var w domain.Window
	err := h.call(ctx, domain.MethodWindowsCreate, params, &w)
	return w, err
}

// GetWindow implements ports.WindowManager
func (h *Host) GetWindow(ctx context.Context, windowID int) (domain.Window, error) {
	var w domain.Window
	err := h.call(ctx, domain.MethodWindowsGet, windowRef{WindowID: windowID}, &w)
	return w, err
}

// RemoveWindow implements ports.WindowManager
func (h *Host) RemoveWindow(ctx context.Context, windowID int) error {
	return h.call(ctx, domain.MethodWindowsRemove, windowRef{WindowID: windowID}, nil)
}

// UpdateWindow implements ports.WindowManager
func (h *Host) UpdateWindow(ctx context.Context, windowID int, params domain.WindowUpdateParams) (domain.Window, error) {
	var w domain.Window
	err := h.call(ctx, domain.MethodWindowsUpdate, windowUpdate{WindowID: windowID, WindowUpdateParams: params}, &w)
	return w, err
}

// Displays implements ports.DisplayLister
func (h *Host) Displays(ctx context.Context) ([]domain.Display, error) {
	var displays []domain.Display
	err := h.call(ctx, domain.MethodDisplayGetInfo, nil, &displays)
	return displays, err
}

// Notify implements ports.Notifier
func (h *Host) Notify(ctx context.Context, n domain.Notification) error {
	return h.call(ctx, domain.MethodNotificationsCreate, n, nil)
}

// RegisterMenuItem implements ports.MenuRegistrar
func (h *Host) RegisterMenuItem(ctx context.Context, item domain.MenuItem) error {
	return h.call(ctx, domain.MethodContextMenusCreate, item, nil)
}
