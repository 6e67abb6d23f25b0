package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/events"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/ports"
)

// SelectionPolicy picks the history slot each save trigger reads.
// Menu clicks highlight the clicked tab first, so they read the selection
// from before that click.
type SelectionPolicy struct {
	MenuSlot    int
	CommandSlot int
}

// DefaultSelectionPolicy returns the built-in slot policy
func DefaultSelectionPolicy() SelectionPolicy {
	return SelectionPolicy{
		MenuSlot:    domain.SlotPrevious,
		CommandSlot: domain.SlotLatest,
	}
}

// CoordinatorService subscribes the services to host and dialog events
type CoordinatorService struct {
	bounds    *BoundsService
	dialog    *DialogService
	menus     ports.MenuRegistrar
	policy    SelectionPolicy
	router    *RouterService
	selection *SelectionService
}

// NewCoordinatorService creates a new CoordinatorService
func NewCoordinatorService(
	policy SelectionPolicy,
	menus ports.MenuRegistrar,
	selection *SelectionService,
	dialog *DialogService,
	bounds *BoundsService,
	router *RouterService,
) *CoordinatorService {
	return &CoordinatorService{
		bounds:    bounds,
		dialog:    dialog,
		menus:     menus,
		policy:    policy,
		router:    router,
		selection: selection,
	}
}

// Register subscribes every handler on the bus
func (c *CoordinatorService) Register(bus *events.Bus) {
	bus.Subscribe(domain.EventInstalled, c.onInstalled)
	bus.Subscribe(domain.EventTabsHighlighted, c.onTabsHighlighted)
	bus.Subscribe(domain.EventWindowBoundsChanged, c.onWindowBoundsChanged)
	bus.Subscribe(domain.EventWindowRemoved, c.onWindowRemoved)
	bus.Subscribe(domain.EventMenuClicked, c.onMenuClicked)
	bus.Subscribe(domain.EventCommandInvoked, c.onCommandInvoked)
	bus.Subscribe(domain.EventMessageReceived, c.onMessageReceived)
}

func (c *CoordinatorService) onInstalled(ctx context.Context, _ domain.Event) {
	for _, item := range domain.MenuItems {
		if err := c.menus.RegisterMenuItem(ctx, item); err != nil {
			logging.Logger.Error("Failed to register menu item", "error", err, "id", item.ID)
		}
	}
}

func (c *CoordinatorService) onTabsHighlighted(ctx context.Context, e domain.Event) {
	p, ok := e.Payload.(domain.TabsHighlightedPayload)
	if !ok {
		logUnexpectedPayload(e)
		return
	}
	c.selection.RecordHighlightEvent(ctx, p.WindowID)
}

func (c *CoordinatorService) onWindowBoundsChanged(ctx context.Context, e domain.Event) {
	p, ok := e.Payload.(domain.WindowBoundsChangedPayload)
	if !ok {
		logUnexpectedPayload(e)
		return
	}
	c.bounds.HandleBoundsChanged(ctx, p.Window)
}

func (c *CoordinatorService) onWindowRemoved(_ context.Context, e domain.Event) {
	p, ok := e.Payload.(domain.WindowRemovedPayload)
	if !ok {
		logUnexpectedPayload(e)
		return
	}
	c.dialog.HandleWindowRemoved(p.WindowID)
}

func (c *CoordinatorService) onMenuClicked(ctx context.Context, e domain.Event) {
	p, ok := e.Payload.(domain.MenuClickedPayload)
	if !ok {
		logUnexpectedPayload(e)
		return
	}

	var closeAfterSave bool
	switch p.MenuItemID {
	case domain.MenuAddToFavorites:
	case domain.MenuAddToFavoritesAndClose:
		closeAfterSave = true
	default:
		return
	}

	selection := c.selection.Snapshot(c.policy.MenuSlot)
	c.initiateSave(ctx, closeAfterSave, &selection)
}

func (c *CoordinatorService) onCommandInvoked(ctx context.Context, e domain.Event) {
	p, ok := e.Payload.(domain.CommandInvokedPayload)
	if !ok {
		logUnexpectedPayload(e)
		return
	}

	var closeAfterSave bool
	switch p.Command {
	case domain.CommandSaveSelectedTabs:
	case domain.CommandSaveSelectedTabsAndClose:
		closeAfterSave = true
	default:
		logging.Logger.Debug("Ignoring unknown command", "command", p.Command)
		return
	}

	selection := c.selection.Snapshot(c.policy.CommandSlot)
	c.initiateSave(ctx, closeAfterSave, &selection)
}

func (c *CoordinatorService) onMessageReceived(ctx context.Context, e domain.Event) {
	p, ok := e.Payload.(domain.MessageReceivedPayload)
	if !ok {
		logUnexpectedPayload(e)
		return
	}
	resp, err := c.router.Handle(ctx, p.Request)
	if p.Reply != nil {
		p.Reply(resp, err)
	}
}

func (c *CoordinatorService) initiateSave(ctx context.Context, closeAfterSave bool, selection *domain.Selection) {
	err := c.dialog.InitiateSave(ctx, closeAfterSave, selection)
	if err != nil && !errors.Is(err, domain.ErrNotEnoughTabs) {
		logging.Logger.Error("Failed to start save", "error", err)
	}
}

func logUnexpectedPayload(e domain.Event) {
	logging.Logger.Error("Unexpected event payload", "event", e.Type, "payload_type", fmt.Sprintf("%T", e.Payload))
}
