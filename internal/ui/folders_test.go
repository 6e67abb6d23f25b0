package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tabstash/internal/domain"
)

func TestFlattenFolders(t *testing.T) {
	tree := []domain.BookmarkNode{
		{ID: "1", Title: "Bookmarks bar", Children: []domain.BookmarkNode{
			{ID: "3", Title: "Go", URL: "https://go.dev"},
			{ID: "4", Title: "", Children: []domain.BookmarkNode{
				{ID: "5", Title: "Deep"},
			}},
		}},
		{ID: "2", Title: "Other bookmarks"},
	}

	got := FlattenFolders(tree)

	require.Len(t, got, 4)
	assert.Equal(t, FolderOption{ID: "1", Path: "Bookmarks bar", Depth: 0, TopLevel: true}, got[0])
	assert.Equal(t, FolderOption{ID: "4", Path: "Bookmarks bar / (No title)", Depth: 1}, got[1])
	assert.Equal(t, FolderOption{ID: "5", Path: "Bookmarks bar / (No title) / Deep", Depth: 2}, got[2])
	assert.Equal(t, FolderOption{ID: "2", Path: "Other bookmarks", Depth: 0, TopLevel: true}, got[3])
}

func TestDefaultFolderIndex(t *testing.T) {
	tests := []struct {
		name    string
		options []FolderOption
		want    int
	}{
		{
			name: "other bookmarks wins",
			options: []FolderOption{
				{ID: "1", TopLevel: true},
				{ID: "2", TopLevel: true},
			},
			want: 1,
		},
		{
			name: "first top-level folder",
			options: []FolderOption{
				{ID: "7", Depth: 1},
				{ID: "8", TopLevel: true},
				{ID: "9", TopLevel: true},
			},
			want: 1,
		},
		{
			name: "empty",
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultFolderIndex(tt.options))
		})
	}
}

func TestFilterFolders(t *testing.T) {
	options := []FolderOption{
		{ID: "1", Path: "Bookmarks bar"},
		{ID: "4", Path: "Bookmarks bar / Recipes"},
		{ID: "2", Path: "Other bookmarks"},
	}

	assert.Equal(t, options, FilterFolders(options, "  "))

	got := FilterFolders(options, "recipes")
	require.Len(t, got, 1)
	assert.Equal(t, "4", got[0].ID)

	assert.Empty(t, FilterFolders(options, "qqq"))
}
