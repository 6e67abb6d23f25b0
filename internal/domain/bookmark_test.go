package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderTree_DropsBookmarks(t *testing.T) {
	tree := []BookmarkNode{
		{
			ID:    "1",
			Title: "Bookmarks bar",
			Children: []BookmarkNode{
				{ID: "10", ParentID: "1", Title: "Go", URL: "https://go.dev"},
				{ID: "11", ParentID: "1", Title: "Work", Children: []BookmarkNode{
					{ID: "110", ParentID: "11", Title: "CI", URL: "https://ci.example"},
					{ID: "111", ParentID: "11", Title: ""},
				}},
			},
		},
		{ID: "2", Title: "Other bookmarks"},
	}

	folders := FolderTree(tree)

	require.Len(t, folders, 2)
	require.Len(t, folders[0].Children, 1)
	assert.Equal(t, "11", folders[0].Children[0].ID)
	require.Len(t, folders[0].Children[0].Children, 1)
	assert.Equal(t, UntitledFolder, folders[0].Children[0].Children[0].DisplayTitle())
	assert.Equal(t, "2", folders[1].ID)
}

func TestCommitResult_Outcome(t *testing.T) {
	assert.Equal(t, OutcomeAborted, CommitResult{Success: false}.Outcome())
	assert.Equal(t, OutcomePartiallyCommitted, CommitResult{Success: true, Count: 4, Attempted: 5}.Outcome())
	assert.Equal(t, OutcomeCommitted, CommitResult{Success: true, Count: 5, Attempted: 5}.Outcome())
}

func TestGetActionByName(t *testing.T) {
	action := GetActionByName(ActionSaveBookmarks)
	require.NotNil(t, action)
	assert.True(t, action.HasResponse)

	action = GetActionByName(ActionCancelSave)
	require.NotNil(t, action)
	assert.False(t, action.HasResponse)

	assert.Nil(t, GetActionByName("launchRockets"))
}
