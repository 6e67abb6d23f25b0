package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/renato0307/tabstash/internal/domain"
)

// OtherBookmarksID is preselected when present
const OtherBookmarksID = "2"

const pathSeparator = " / "

// FolderOption is a selectable destination folder
type FolderOption struct {
	ID       string
	Path     string
	Depth    int
	TopLevel bool
}

// FlattenFolders walks the tree depth first and returns every folder with
// its display path. Bookmarks (nodes with a URL) are skipped.
func FlattenFolders(tree []domain.BookmarkNode) []FolderOption {
	var out []FolderOption
	var walk func(node domain.BookmarkNode, parents []string, depth int)
	walk = func(node domain.BookmarkNode, parents []string, depth int) {
		if !node.IsFolder() {
			return
		}
		path := append(parents[:len(parents):len(parents)], node.DisplayTitle())
		out = append(out, FolderOption{
			ID:       node.ID,
			Path:     strings.Join(path, pathSeparator),
			Depth:    depth,
			TopLevel: depth == 0,
		})
		for _, child := range node.Children {
			walk(child, path, depth+1)
		}
	}
	for _, root := range tree {
		walk(root, nil, 0)
	}
	return out
}

// DefaultFolderIndex returns the index of Other Bookmarks, else of the first
// top-level folder, else -1
func DefaultFolderIndex(options []FolderOption) int {
	first := -1
	for i, opt := range options {
		if opt.ID == OtherBookmarksID {
			return i
		}
		if first < 0 && opt.TopLevel {
			first = i
		}
	}
	return first
}

// folderPaths implements fuzzy.Source over folder paths
type folderPaths []FolderOption

func (f folderPaths) String(i int) string { return f[i].Path }

func (f folderPaths) Len() int { return len(f) }

// FilterFolders returns the options matching query, best match first.
// An empty query returns every option in tree order.
func FilterFolders(options []FolderOption, query string) []FolderOption {
	query = strings.TrimSpace(query)
	if query == "" {
		return options
	}

	matches := fuzzy.FindFrom(query, folderPaths(options))
	out := make([]FolderOption, len(matches))
	for i, m := range matches {
		out[i] = options[m.Index]
	}
	return out
}
