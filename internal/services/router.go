package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/ports"
)

const (
	msgTransferReadFailed = "Failed to retrieve tab data."
	msgNoPendingTransfer  = "No tab data found to save."
	msgTicketMismatch     = "This save dialog is out of date. Please start the save again."
	msgEmptyFolderName    = "New folder name cannot be empty."
)

// RouterService answers dialog messages
type RouterService struct {
	bookmarks     ports.BookmarkRepository
	bounds        *BoundsService
	commit        *CommitService
	notifications *NotificationService
	selection     *SelectionService
	store         *StoreService
}

// NewRouterService creates a new RouterService
func NewRouterService(
	store *StoreService,
	bookmarks ports.BookmarkRepository,
	commit *CommitService,
	selection *SelectionService,
	bounds *BoundsService,
	notifications *NotificationService,
) *RouterService {
	return &RouterService{
		bookmarks:     bookmarks,
		bounds:        bounds,
		commit:        commit,
		notifications: notifications,
		selection:     selection,
		store:         store,
	}
}

// Handle dispatches a request by action. Fire-and-forget actions return a
// nil response.
func (r *RouterService) Handle(ctx context.Context, req domain.Request) (*domain.Response, error) {
	logging.Logger.Debug("Message received", "action", req.Action)

	switch req.Action {
	case domain.ActionGetBookmarkTree:
		return r.getBookmarkTree(ctx), nil
	case domain.ActionSaveBookmarks:
		return r.saveBookmarks(ctx, req), nil
	case domain.ActionSaveWindowState:
		return nil, r.saveWindowState(ctx, req)
	case domain.ActionCancelSave:
		return nil, r.cancelSave(ctx)
	default:
		logging.Logger.Warn("Unknown message action", "action", req.Action)
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, req.Action)
	}
}

func (r *RouterService) getBookmarkTree(ctx context.Context) *domain.Response {
	tree, err := r.bookmarks.GetTree(ctx)
	if err != nil {
		logging.Logger.Error("Failed to read bookmark tree", "error", err)
		return domain.ErrorResponse(err.Error())
	}
	if len(tree) == 0 {
		return domain.TreeResponse(nil)
	}
	// The host returns the absolute root; the dialog only shows its children
	return domain.TreeResponse(tree[0].Children)
}

func (r *RouterService) saveBookmarks(ctx context.Context, req domain.Request) *domain.Response {
	folderName, err := resolveFolderName(req)
	if err != nil {
		return domain.SaveResponse(false, msgEmptyFolderName)
	}

	transfer, err := r.store.PendingTransfer(ctx)
	if err != nil {
		logging.Logger.Error("Failed to read pending transfer", "error", err)
		return domain.SaveResponse(false, msgTransferReadFailed)
	}
	if transfer == nil {
		return domain.SaveResponse(false, msgNoPendingTransfer)
	}

	// A stale dialog must not consume the transfer of a newer one
	if req.Ticket != "" && transfer.Ticket != "" && req.Ticket != transfer.Ticket {
		logging.Logger.Warn("Rejected save from stale dialog", "error", domain.ErrTicketMismatch)
		return domain.SaveResponse(false, msgTicketMismatch)
	}

	// One commit attempt per transfer, whatever the outcome
	defer func() {
		if err := r.store.ClearPendingTransfer(ctx); err != nil {
			logging.Logger.Error("Failed to clear pending transfer", "error", err)
		}
	}()

	result, err := r.commit.Commit(ctx, domain.CommitRequest{
		Items:               transfer.Items,
		DestinationFolderID: req.ParentID,
		NewFolderName:       folderName,
	})
	if err != nil {
		r.notifications.Show(ctx, "Error: "+result.Message)
		return domain.SaveResponse(false, result.Message)
	}

	message := fmt.Sprintf("Successfully bookmarked %d tab(s) to folder \"%s\".", result.Count, result.FolderName)
	if transfer.CloseAfterSave {
		closed := r.commit.CloseTabs(ctx, transfer.TabIDs())
		message += fmt.Sprintf("\nAttempted to close %d tab(s).", closed)
		r.selection.Reset()
	}
	r.notifications.Show(ctx, message)

	return domain.SaveResponse(true, "")
}

func (r *RouterService) saveWindowState(ctx context.Context, req domain.Request) error {
	if req.State == nil {
		return errors.New("saveWindowState requires a state")
	}
	return r.bounds.SaveWindowState(ctx, *req.State)
}

func (r *RouterService) cancelSave(ctx context.Context) error {
	if err := r.store.ClearPendingTransfer(ctx); err != nil {
		logging.Logger.Error("Failed to clear pending transfer on cancel", "error", err)
		return err
	}
	logging.Logger.Info("Save cancelled")
	return nil
}

// resolveFolderName returns the name of the folder to create, or "" for
// direct mode
func resolveFolderName(req domain.Request) (string, error) {
	name := ""
	if req.FolderName != nil {
		name = strings.TrimSpace(*req.FolderName)
	}

	switch req.SaveMode {
	case domain.SaveModeDirect:
		return "", nil
	case domain.SaveModeCreate:
		if name == "" {
			return "", domain.ErrEmptyFolderName
		}
		return name, nil
	default:
		return name, nil
	}
}
