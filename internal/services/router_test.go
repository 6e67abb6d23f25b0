package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tabstash/internal/adapters/memhost"
	"github.com/renato0307/tabstash/internal/domain"
)

func TestRouter_GetBookmarkTreeReturnsRootChildren(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.send(domain.Request{Action: domain.ActionGetBookmarkTree})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Empty(t, resp.Error)
	require.Len(t, resp.Tree, 2)
	assert.Equal(t, memhost.BookmarksBarID, resp.Tree[0].ID)
	assert.Equal(t, memhost.OtherBookmarkID, resp.Tree[1].ID)
}

func TestRouter_GetBookmarkTreeError(t *testing.T) {
	env := newTestEnv(t)
	env.host.Fail(domain.MethodBookmarksGetTree, errors.New("bookmarks unavailable"))

	resp, err := env.send(domain.Request{Action: domain.ActionGetBookmarkTree})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "bookmarks unavailable", resp.Error)
	assert.Nil(t, resp.Tree)
}

func TestRouter_SaveCommitsAndClearsTransfer(t *testing.T) {
	env := newTestEnv(t)
	env.startSave(3, false)

	resp, err := env.send(domain.Request{
		Action:     domain.ActionSaveBookmarks,
		FolderName: strPtr("Reading"),
		ParentID:   memhost.OtherBookmarkID,
		Ticket:     "ticket-1",
	})

	require.NoError(t, err)
	assert.True(t, resp.Succeeded())
	assert.Nil(t, env.pendingTransfer())
	assert.Equal(t, `Successfully bookmarked 3 tab(s) to folder "Reading".`, env.lastNotification())
	assert.Len(t, env.host.TabIDs(), 3, "tabs stay open without closeAfterSave")
}

func TestRouter_SaveAndCloseResetsHistory(t *testing.T) {
	env := newTestEnv(t)
	ids := env.startSave(4, true)

	resp, err := env.send(domain.Request{
		Action:   domain.ActionSaveBookmarks,
		SaveMode: domain.SaveModeDirect,
		ParentID: memhost.BookmarksBarID,
	})

	require.NoError(t, err)
	assert.True(t, resp.Succeeded())
	for _, id := range ids {
		assert.NotContains(t, env.host.TabIDs(), id)
	}
	assert.Equal(t, "Successfully bookmarked 4 tab(s) to folder \"Bookmarks bar\".\nAttempted to close 4 tab(s).", env.lastNotification())
	for _, s := range env.state.History.Snapshot() {
		assert.Equal(t, 0, s.Len())
	}
}

func TestRouter_CancelThenSaveFindsNoData(t *testing.T) {
	env := newTestEnv(t)
	env.startSave(2, false)

	resp, err := env.send(domain.Request{Action: domain.ActionCancelSave})
	require.NoError(t, err)
	assert.Nil(t, resp)

	resp, err = env.send(domain.Request{Action: domain.ActionSaveBookmarks, ParentID: memhost.BookmarksBarID})
	require.NoError(t, err)
	assert.False(t, resp.Succeeded())
	assert.Equal(t, msgNoPendingTransfer, resp.Message)
	assert.Empty(t, env.host.Children(memhost.BookmarksBarID))
}

func TestRouter_SaveIsNeverCommittedTwice(t *testing.T) {
	env := newTestEnv(t)
	env.startSave(2, false)
	req := domain.Request{Action: domain.ActionSaveBookmarks, ParentID: memhost.BookmarksBarID}

	first, err := env.send(req)
	require.NoError(t, err)
	second, err := env.send(req)
	require.NoError(t, err)

	assert.True(t, first.Succeeded())
	assert.False(t, second.Succeeded())
	assert.Len(t, env.host.Children(memhost.BookmarksBarID), 2)
}

func TestRouter_FailedCommitStillClearsTransfer(t *testing.T) {
	env := newTestEnv(t)
	env.startSave(2, false)

	resp, err := env.send(domain.Request{
		Action:     domain.ActionSaveBookmarks,
		FolderName: strPtr("Trip"),
		ParentID:   "does-not-exist",
	})

	require.NoError(t, err)
	assert.False(t, resp.Succeeded())
	assert.Contains(t, resp.Message, "Could not create folder")
	assert.Nil(t, env.pendingTransfer())
	assert.Contains(t, env.lastNotification(), "Error: Could not create folder")
}

func TestRouter_TransferReadFailure(t *testing.T) {
	env := newTestEnv(t)
	env.kv.FailReads(errors.New("corrupt database"))

	resp, err := env.send(domain.Request{Action: domain.ActionSaveBookmarks, ParentID: "1"})

	require.NoError(t, err)
	assert.False(t, resp.Succeeded())
	assert.Equal(t, msgTransferReadFailed, resp.Message)
}

func TestRouter_StaleTicketKeepsTransfer(t *testing.T) {
	env := newTestEnv(t)
	env.startSave(2, false)

	resp, err := env.send(domain.Request{
		Action:   domain.ActionSaveBookmarks,
		ParentID: memhost.BookmarksBarID,
		Ticket:   "ticket-from-old-dialog",
	})

	require.NoError(t, err)
	assert.False(t, resp.Succeeded())
	assert.Equal(t, msgTicketMismatch, resp.Message)
	assert.NotNil(t, env.pendingTransfer())
	assert.Empty(t, env.host.Children(memhost.BookmarksBarID))
}

func TestRouter_SaveModes(t *testing.T) {
	tests := []struct {
		name          string
		mode          domain.SaveMode
		folderName    *string
		expectSuccess bool
		expectFolder  bool
	}{
		{"inferred with name", domain.SaveModeInferred, strPtr("New"), true, true},
		{"inferred without name", domain.SaveModeInferred, nil, true, false},
		{"create with name", domain.SaveModeCreate, strPtr("New"), true, true},
		{"create with blank name", domain.SaveModeCreate, strPtr("  "), false, false},
		{"direct ignores name", domain.SaveModeDirect, strPtr("Ignored"), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.startSave(2, false)

			resp, err := env.send(domain.Request{
				Action:     domain.ActionSaveBookmarks,
				SaveMode:   tt.mode,
				FolderName: tt.folderName,
				ParentID:   memhost.OtherBookmarkID,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectSuccess, resp.Succeeded())

			children := env.host.Children(memhost.OtherBookmarkID)
			if !tt.expectSuccess {
				assert.Equal(t, msgEmptyFolderName, resp.Message)
				assert.Empty(t, children)
				assert.NotNil(t, env.pendingTransfer(), "validation errors keep the transfer")
				return
			}
			if tt.expectFolder {
				require.Len(t, children, 1)
				assert.True(t, children[0].IsFolder())
			} else {
				assert.Len(t, children, 2)
			}
		})
	}
}

func TestRouter_SaveWindowState(t *testing.T) {
	env := newTestEnv(t)
	state := domain.WindowState{Width: 450, Height: 600, Top: 10, Left: 20}

	resp, err := env.send(domain.Request{Action: domain.ActionSaveWindowState, State: &state})
	require.NoError(t, err)
	assert.Nil(t, resp)

	saved, err := env.store.WindowState(env.ctx)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, state, *saved)

	_, err = env.send(domain.Request{Action: domain.ActionSaveWindowState})
	assert.Error(t, err)
}

func TestRouter_UnknownAction(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.send(domain.Request{Action: "launchRockets"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
}
