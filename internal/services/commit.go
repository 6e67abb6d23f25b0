package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/ports"
)

const (
	msgNoTabData          = "No tab data found to bookmark."
	msgMissingDestination = "Parent folder or name missing."
)

// CommitService turns a selection into bookmarks and closes tabs
type CommitService struct {
	bookmarks ports.BookmarkRepository
	tabs      ports.TabService
}

// NewCommitService creates a new CommitService
func NewCommitService(bookmarks ports.BookmarkRepository, tabs ports.TabService) *CommitService {
	return &CommitService{
		bookmarks: bookmarks,
		tabs:      tabs,
	}
}

// Commit creates one bookmark per item. With a non-blank NewFolderName a
// folder is created under the destination first. Failing to resolve the
// target folder aborts before any bookmark is created; a single bookmark
// failing does not.
func (s *CommitService) Commit(ctx context.Context, req domain.CommitRequest) (domain.CommitResult, error) {
	if len(req.Items) == 0 {
		return domain.CommitResult{Message: msgNoTabData}, domain.ErrNoTabData
	}
	if req.DestinationFolderID == "" {
		return domain.CommitResult{Message: msgMissingDestination}, domain.ErrMissingDestination
	}

	folderID, folderName, err := s.resolveFolder(ctx, req)
	if err != nil {
		logging.Logger.Error("Commit aborted", "error", err, "destination", req.DestinationFolderID)
		return domain.CommitResult{Message: capitalize(err.Error())}, err
	}

	count := 0
	for i, item := range req.Items {
		_, err := s.bookmarks.CreateBookmark(ctx, domain.CreateBookmarkParams{
			ParentID: folderID,
			Title:    item.Title,
			URL:      item.URL,
		})
		if err != nil {
			logging.Logger.Warn("Failed to create bookmark",
				"error", err,
				"index", i,
				"url", item.URL)
			continue
		}
		count++
	}

	result := domain.CommitResult{
		Success:    true,
		Count:      count,
		Attempted:  len(req.Items),
		FolderID:   folderID,
		FolderName: folderName,
	}
	logging.Logger.Info("Bookmarks committed",
		"count", result.Count,
		"attempted", result.Attempted,
		"folder_id", folderID,
		"outcome", result.Outcome())

	return result, nil
}

// CloseTabs closes each tab independently and returns how many closed
func (s *CommitService) CloseTabs(ctx context.Context, tabIDs []int) int {
	closed := 0
	for _, id := range tabIDs {
		if err := s.tabs.RemoveTab(ctx, id); err != nil {
			logging.Logger.Warn("Failed to close tab", "error", err, "tab_id", id)
			continue
		}
		closed++
	}
	logging.Logger.Debug("Tabs closed", "closed", closed, "requested", len(tabIDs))
	return closed
}

func (s *CommitService) resolveFolder(ctx context.Context, req domain.CommitRequest) (string, string, error) {
	if req.CreatesFolder() {
		title := strings.TrimSpace(req.NewFolderName)
		folder, err := s.bookmarks.CreateBookmark(ctx, domain.CreateBookmarkParams{
			ParentID: req.DestinationFolderID,
			Title:    title,
		})
		if err != nil {
			return "", "", fmt.Errorf("%w: %w", domain.ErrFolderCreateFailed, err)
		}
		if folder.Title != "" {
			title = folder.Title
		}
		return folder.ID, title, nil
	}

	node, err := s.bookmarks.GetBookmark(ctx, req.DestinationFolderID)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", domain.ErrDestinationNotFound, err)
	}
	return req.DestinationFolderID, node.DisplayTitle(), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
