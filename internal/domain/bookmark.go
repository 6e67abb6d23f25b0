package domain

// UntitledFolder is shown for folders with an empty title
const UntitledFolder = "(No title)"

// BookmarkNode is a bookmark or folder in the host bookmark tree.
// Nodes with a non-empty URL are bookmarks; all others are folders.
type BookmarkNode struct {
	ID       string         `json:"id"`
	ParentID string         `json:"parentId,omitempty"`
	Title    string         `json:"title"`
	URL      string         `json:"url,omitempty"`
	Children []BookmarkNode `json:"children,omitempty"`
}

// IsFolder reports whether the node is a folder
func (n BookmarkNode) IsFolder() bool {
	return n.URL == ""
}

// DisplayTitle returns the title, or UntitledFolder when empty
func (n BookmarkNode) DisplayTitle() string {
	if n.Title == "" {
		return UntitledFolder
	}
	return n.Title
}

// FolderTree returns a copy of the nodes with every bookmark removed
func FolderTree(nodes []BookmarkNode) []BookmarkNode {
	var out []BookmarkNode
	for _, node := range nodes {
		if !node.IsFolder() {
			continue
		}
		folder := node
		folder.Children = FolderTree(node.Children)
		out = append(out, folder)
	}
	return out
}

// CreateBookmarkParams describes a bookmark or folder to create.
// An empty URL creates a folder.
type CreateBookmarkParams struct {
	ParentID string `json:"parentId"`
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
}
