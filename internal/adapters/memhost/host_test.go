package memhost

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tabstash/internal/domain"
)

type recorder struct {
	events []domain.Event
}

func (r *recorder) Publish(e domain.Event) {
	r.events = append(r.events, e)
}

func TestHost_HighlightedTabsInOrder(t *testing.T) {
	h := New()
	rec := &recorder{}
	h.SetPublisher(rec)
	win := h.OpenWindow()
	a := h.OpenTab(win, "A", "https://a.example")
	b := h.OpenTab(win, "B", "https://b.example")
	h.OpenTab(win, "C", "https://c.example")

	require.NoError(t, h.Highlight(win, b, a))

	tabs, err := h.HighlightedTabs(context.Background(), win)
	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.Equal(t, a, tabs[0].ID)
	assert.Equal(t, b, tabs[1].ID)
	require.Len(t, rec.events, 1)
	assert.Equal(t, domain.EventTabsHighlighted, rec.events[0].Type)
}

func TestHost_CreateBookmarkRejectsInvalidURL(t *testing.T) {
	h := New()
	ctx := context.Background()

	folder, err := h.CreateBookmark(ctx, domain.CreateBookmarkParams{ParentID: OtherBookmarkID, Title: "Trip"})
	require.NoError(t, err)
	assert.True(t, folder.IsFolder())

	_, err = h.CreateBookmark(ctx, domain.CreateBookmarkParams{ParentID: folder.ID, Title: "bad", URL: "not a url"})
	assert.Error(t, err)

	_, err = h.CreateBookmark(ctx, domain.CreateBookmarkParams{ParentID: "missing", Title: "x", URL: "https://x.example"})
	assert.Error(t, err)

	_, err = h.CreateBookmark(ctx, domain.CreateBookmarkParams{ParentID: folder.ID, Title: "ok", URL: "https://ok.example"})
	require.NoError(t, err)
	assert.Len(t, h.Children(folder.ID), 1)
}

func TestHost_GetTreeStartsAtRoot(t *testing.T) {
	h := New()

	tree, err := h.GetTree(context.Background())

	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, RootID, tree[0].ID)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, BookmarksBarID, tree[0].Children[0].ID)
	assert.Equal(t, OtherBookmarkID, tree[0].Children[1].ID)
}

func TestHost_InjectedFailures(t *testing.T) {
	h := New()
	boom := errors.New("boom")
	h.Fail(domain.MethodDisplayGetInfo, boom)

	_, err := h.Displays(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, h.Calls(domain.MethodDisplayGetInfo))

	h.Fail(domain.MethodDisplayGetInfo, nil)
	displays, err := h.Displays(context.Background())
	require.NoError(t, err)
	assert.Len(t, displays, 1)
}

func TestHost_RemoveWindowEmitsEvent(t *testing.T) {
	h := New()
	rec := &recorder{}
	h.SetPublisher(rec)
	win, err := h.CreateWindow(context.Background(), domain.WindowCreateParams{Type: domain.WindowTypePopup, Width: 10, Height: 10})
	require.NoError(t, err)

	require.NoError(t, h.RemoveWindow(context.Background(), win.ID))

	require.Len(t, rec.events, 1)
	assert.Equal(t, domain.WindowRemovedPayload{WindowID: win.ID}, rec.events[0].Payload)
	_, err = h.GetWindow(context.Background(), win.ID)
	assert.ErrorIs(t, err, domain.ErrWindowNotFound)
}

func TestHost_SimulationsNeedPublisher(t *testing.T) {
	h := New()
	assert.ErrorIs(t, h.ClickMenu(domain.MenuAddToFavorites), ErrNoPublisher)
	assert.ErrorIs(t, h.InvokeCommand(domain.CommandSaveSelectedTabs), ErrNoPublisher)
}
