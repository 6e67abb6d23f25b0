package domain

// SaveMode selects how saveBookmarks places the bookmarks
type SaveMode string

const (
	// SaveModeInferred creates a folder only when a folder name is given
	SaveModeInferred SaveMode = ""
	// SaveModeCreate always creates a new folder under the parent
	SaveModeCreate SaveMode = "create"
	// SaveModeDirect bookmarks directly into the parent
	SaveModeDirect SaveMode = "direct"
)

// Request is a message from the dialog to the coordinator
type Request struct {
	Action     ActionName   `json:"action"`
	FolderName *string      `json:"folderName,omitempty"`
	ParentID   string       `json:"parentId,omitempty"`
	SaveMode   SaveMode     `json:"saveMode,omitempty"`
	State      *WindowState `json:"state,omitempty"`
	Ticket     string       `json:"ticket,omitempty"`
}

// Response is the coordinator reply to a Request
type Response struct {
	Tree    []BookmarkNode `json:"tree,omitempty"`
	Error   string         `json:"error,omitempty"`
	Success *bool          `json:"success,omitempty"`
	Message string         `json:"message,omitempty"`
}

// TreeResponse wraps a bookmark tree
func TreeResponse(tree []BookmarkNode) *Response {
	if tree == nil {
		tree = []BookmarkNode{}
	}
	return &Response{Tree: tree}
}

// ErrorResponse wraps a tree retrieval failure
func ErrorResponse(msg string) *Response {
	return &Response{Error: msg}
}

// SaveResponse wraps a saveBookmarks outcome
func SaveResponse(success bool, msg string) *Response {
	return &Response{Success: &success, Message: msg}
}

// Succeeded reports whether the response carries success=true
func (r *Response) Succeeded() bool {
	return r != nil && r.Success != nil && *r.Success
}
