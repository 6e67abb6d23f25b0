package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tabstash/internal/adapters/memhost"
	"github.com/renato0307/tabstash/internal/domain"
	portsmocks "github.com/renato0307/tabstash/internal/ports/mocks"
)

func fiveTabs() []domain.TabRecord {
	items := make([]domain.TabRecord, 0, 5)
	for i := 1; i <= 5; i++ {
		items = append(items, domain.TabRecord{ID: i, Title: fmt.Sprintf("Page %d", i), URL: fmt.Sprintf("https://trip.example/%d", i)})
	}
	return items
}

func TestCommit_NewFolderToleratesBadItem(t *testing.T) {
	env := newTestEnv(t)
	items := fiveTabs()
	items[2].URL = "not a url"

	result, err := env.commit.Commit(env.ctx, domain.CommitRequest{
		Items:               items,
		DestinationFolderID: memhost.OtherBookmarkID,
		NewFolderName:       "  Trip ",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 4, result.Count)
	assert.Equal(t, 5, result.Attempted)
	assert.Equal(t, "Trip", result.FolderName)
	assert.Equal(t, domain.OutcomePartiallyCommitted, result.Outcome())

	children := env.host.Children(memhost.OtherBookmarkID)
	require.Len(t, children, 1)
	assert.Equal(t, "Trip", children[0].Title)
	assert.True(t, children[0].IsFolder())
	assert.Len(t, env.host.Children(children[0].ID), 4)
}

func TestCommit_BlankNameSavesDirectly(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.commit.Commit(env.ctx, domain.CommitRequest{
		Items:               fiveTabs(),
		DestinationFolderID: memhost.BookmarksBarID,
		NewFolderName:       "   ",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 5, result.Count)
	assert.Equal(t, "Bookmarks bar", result.FolderName)
	for _, child := range env.host.Children(memhost.BookmarksBarID) {
		assert.False(t, child.IsFolder(), "no folder should be created")
	}
	assert.Len(t, env.host.Children(memhost.BookmarksBarID), 5)
}

func TestCommit_UntitledDestination(t *testing.T) {
	bookmarks := portsmocks.NewMockBookmarkRepository(t)
	bookmarks.EXPECT().GetBookmark(mock.Anything, "9").Return(domain.BookmarkNode{ID: "9"}, nil)
	bookmarks.EXPECT().CreateBookmark(mock.Anything, mock.Anything).Return(domain.BookmarkNode{ID: "10"}, nil).Times(2)
	svc := NewCommitService(bookmarks, portsmocks.NewMockTabService(t))

	result, err := svc.Commit(t.Context(), domain.CommitRequest{
		Items:               fiveTabs()[:2],
		DestinationFolderID: "9",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.UntitledFolder, result.FolderName)
	assert.Equal(t, 2, result.Count)
}

func TestCommit_FolderCreationFailureAborts(t *testing.T) {
	bookmarks := portsmocks.NewMockBookmarkRepository(t)
	bookmarks.EXPECT().
		CreateBookmark(mock.Anything, domain.CreateBookmarkParams{ParentID: "2", Title: "Trip"}).
		Return(domain.BookmarkNode{}, errors.New("quota exceeded"))
	svc := NewCommitService(bookmarks, portsmocks.NewMockTabService(t))

	result, err := svc.Commit(t.Context(), domain.CommitRequest{
		Items:               fiveTabs(),
		DestinationFolderID: "2",
		NewFolderName:       "Trip",
	})

	assert.ErrorIs(t, err, domain.ErrFolderCreateFailed)
	assert.False(t, result.Success)
	assert.Equal(t, 0, result.Count)
	assert.Equal(t, "Could not create folder: quota exceeded", result.Message)
	bookmarks.AssertNumberOfCalls(t, "CreateBookmark", 1)
}

func TestCommit_DestinationLookupFailureAborts(t *testing.T) {
	bookmarks := portsmocks.NewMockBookmarkRepository(t)
	bookmarks.EXPECT().GetBookmark(mock.Anything, "404").Return(domain.BookmarkNode{}, domain.ErrBookmarkNotFound)
	svc := NewCommitService(bookmarks, portsmocks.NewMockTabService(t))

	result, err := svc.Commit(t.Context(), domain.CommitRequest{
		Items:               fiveTabs(),
		DestinationFolderID: "404",
	})

	assert.ErrorIs(t, err, domain.ErrDestinationNotFound)
	assert.False(t, result.Success)
	bookmarks.AssertNotCalled(t, "CreateBookmark", mock.Anything, mock.Anything)
}

func TestCommit_RejectsBadInput(t *testing.T) {
	svc := NewCommitService(portsmocks.NewMockBookmarkRepository(t), portsmocks.NewMockTabService(t))

	result, err := svc.Commit(t.Context(), domain.CommitRequest{DestinationFolderID: "1"})
	assert.ErrorIs(t, err, domain.ErrNoTabData)
	assert.Equal(t, msgNoTabData, result.Message)

	result, err = svc.Commit(t.Context(), domain.CommitRequest{Items: fiveTabs()})
	assert.ErrorIs(t, err, domain.ErrMissingDestination)
	assert.Equal(t, msgMissingDestination, result.Message)
}

func TestCloseTabs_CountsOnlyClosedTabs(t *testing.T) {
	tabs := portsmocks.NewMockTabService(t)
	tabs.EXPECT().RemoveTab(mock.Anything, 1).Return(nil)
	tabs.EXPECT().RemoveTab(mock.Anything, 2).Return(errors.New("tab is pinned"))
	tabs.EXPECT().RemoveTab(mock.Anything, 3).Return(nil)
	svc := NewCommitService(portsmocks.NewMockBookmarkRepository(t), tabs)

	closed := svc.CloseTabs(t.Context(), []int{1, 2, 3})

	assert.Equal(t, 2, closed)
}
