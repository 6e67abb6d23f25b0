package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/ports"
)

// Dialog defaults
const (
	DefaultDialogURL       = "save_dialog.html"
	DefaultDialogWidth     = 440
	DefaultDialogHeight    = 568
	DefaultDialogOffsetTop = 50
	fallbackDialogTop      = 100
	fallbackDialogLeft     = 100
)

const (
	msgNotEnoughTabs    = "No recent multi-tab selection found. Please select multiple tabs first."
	msgDialogOpenFailed = "Error opening save dialog."
)

// DialogConfig controls where and how big the save dialog opens
type DialogConfig struct {
	URL       string
	Width     int
	Height    int
	OffsetTop int
}

// DefaultDialogConfig returns the built-in dialog settings
func DefaultDialogConfig() DialogConfig {
	return DialogConfig{
		URL:       DefaultDialogURL,
		Width:     DefaultDialogWidth,
		Height:    DefaultDialogHeight,
		OffsetTop: DefaultDialogOffsetTop,
	}
}

func (c DialogConfig) withDefaults() DialogConfig {
	if c.URL == "" {
		c.URL = DefaultDialogURL
	}
	if c.Width <= 0 {
		c.Width = DefaultDialogWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultDialogHeight
	}
	return c
}

// DialogService opens the save dialog and keeps at most one alive
type DialogService struct {
	config        DialogConfig
	displays      ports.DisplayLister
	notifications *NotificationService
	state         *State
	store         *StoreService
	windows       ports.WindowManager

	now       func() time.Time
	newTicket func() string
}

// NewDialogService creates a new DialogService
func NewDialogService(
	config DialogConfig,
	state *State,
	store *StoreService,
	windows ports.WindowManager,
	displays ports.DisplayLister,
	notifications *NotificationService,
) *DialogService {
	return &DialogService{
		config:        config.withDefaults(),
		displays:      displays,
		notifications: notifications,
		state:         state,
		store:         store,
		windows:       windows,
		now:           time.Now,
		newTicket:     func() string { return uuid.New().String() },
	}
}

// InitiateSave hands a selection to a freshly opened dialog.
// With a nil explicit selection the latest history slot is used.
func (s *DialogService) InitiateSave(ctx context.Context, closeAfterSave bool, explicit *domain.Selection) error {
	selection := s.state.History.At(domain.SlotLatest)
	if explicit != nil {
		selection = *explicit
	}

	logging.Logger.Info("Save requested",
		"tabs", selection.Len(),
		"close_after_save", closeAfterSave,
		"explicit", explicit != nil)

	if selection.Len() < 2 {
		s.notifications.Show(ctx, msgNotEnoughTabs)
		return domain.ErrNotEnoughTabs
	}

	transfer := domain.PendingTransfer{
		Items:          selection.Items,
		CloseAfterSave: closeAfterSave,
		Ticket:         s.newTicket(),
		CreatedAt:      s.now().UTC(),
	}
	if err := s.store.SavePendingTransfer(ctx, transfer); err != nil {
		logging.Logger.Error("Failed to store pending transfer", "error", err)
		s.notifications.Show(ctx, msgDialogOpenFailed)
		return fmt.Errorf("%w: %w", domain.ErrDialogOpenFailed, err)
	}

	s.closeExisting(ctx)

	geometry := s.dialogGeometry(ctx)
	params := domain.WindowCreateParams{
		URL:     s.dialogURL(transfer.Ticket),
		Type:    domain.WindowTypePopup,
		Focused: true,
		Width:   geometry.Width,
		Height:  geometry.Height,
		Top:     geometry.Top,
		Left:    geometry.Left,
	}

	win, err := s.windows.CreateWindow(ctx, params)
	if err != nil {
		logging.Logger.Error("Failed to open save dialog", "error", err)
		s.notifications.Show(ctx, msgDialogOpenFailed)
		if clearErr := s.store.ClearPendingTransfer(ctx); clearErr != nil {
			logging.Logger.Error("Failed to clear pending transfer", "error", clearErr)
		}
		return fmt.Errorf("%w: %w", domain.ErrDialogOpenFailed, err)
	}

	s.state.SetDialog(win.ID)
	logging.Logger.Info("Save dialog opened", "window_id", win.ID, "ticket", transfer.Ticket)

	// Some hosts ignore the requested bounds on creation
	if win.Geometry() != geometry {
		logging.Logger.Debug("Dialog geometry differs from request, updating",
			"requested", geometry,
			"actual", win.Geometry())
		_, err := s.windows.UpdateWindow(ctx, win.ID, domain.WindowUpdateParams{
			Width:  geometry.Width,
			Height: geometry.Height,
			Top:    geometry.Top,
			Left:   geometry.Left,
		})
		if err != nil {
			logging.Logger.Warn("Failed to correct dialog geometry", "error", err, "window_id", win.ID)
		}
	}

	return nil
}

// HandleWindowRemoved forgets the dialog when its window closes.
// It reports whether the removed window was the dialog.
func (s *DialogService) HandleWindowRemoved(windowID int) bool {
	if !s.state.IsDialog(windowID) {
		return false
	}
	s.state.ClearDialog()
	logging.Logger.Debug("Save dialog closed", "window_id", windowID)
	return true
}

func (s *DialogService) closeExisting(ctx context.Context) {
	id, open := s.state.DialogID()
	if !open {
		return
	}
	if err := s.windows.RemoveWindow(ctx, id); err != nil {
		logging.Logger.Debug("Previous dialog already gone", "error", err, "window_id", id)
	}
	s.state.ClearDialog()
}

// dialogGeometry returns the saved geometry or a centered default
func (s *DialogService) dialogGeometry(ctx context.Context) domain.WindowState {
	saved, err := s.store.WindowState(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to read saved dialog geometry", "error", err)
	} else if saved != nil && saved.Valid() {
		return *saved
	}
	return s.centeredGeometry(ctx)
}

func (s *DialogService) centeredGeometry(ctx context.Context) domain.WindowState {
	width, height := s.config.Width, s.config.Height

	displays, err := s.displays.Displays(ctx)
	if err != nil || len(displays) == 0 {
		logging.Logger.Warn("No display information, using fallback position", "error", err)
		return domain.WindowState{Width: width, Height: height, Top: fallbackDialogTop, Left: fallbackDialogLeft}
	}

	display := displays[0]
	for _, d := range displays {
		if d.IsPrimary {
			display = d
			break
		}
	}

	area := display.WorkArea
	left := area.Left + (area.Width-width)/2
	top := area.Top + (area.Height-height)/2 - s.config.OffsetTop
	left = max(left, area.Left)
	top = max(top, area.Top)

	return domain.WindowState{Width: width, Height: height, Top: top, Left: left}
}

func (s *DialogService) dialogURL(ticket string) string {
	u, err := url.Parse(s.config.URL)
	if err != nil {
		return s.config.URL
	}
	q := u.Query()
	q.Set("ticket", ticket)
	u.RawQuery = q.Encode()
	return u.String()
}
