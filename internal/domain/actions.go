package domain

// ActionName identifies a message sent by the dialog to the coordinator
type ActionName string

const (
	ActionGetBookmarkTree ActionName = "getBookmarkTree"
	ActionSaveBookmarks   ActionName = "saveBookmarks"
	ActionSaveWindowState ActionName = "saveWindowState"
	ActionCancelSave      ActionName = "cancelSave"
)

// Action describes a message the coordinator understands.
type Action struct {
	Description string
	Name        ActionName
	// HasResponse is false for fire-and-forget messages
	HasResponse bool
}

// Actions is the canonical registry of all protocol actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: ActionCancelSave, Description: "Discard the pending transfer", HasResponse: false},
	{Name: ActionGetBookmarkTree, Description: "Return the bookmark tree below the root", HasResponse: true},
	{Name: ActionSaveBookmarks, Description: "Commit the pending transfer to a folder", HasResponse: true},
	{Name: ActionSaveWindowState, Description: "Persist the dialog geometry", HasResponse: false},
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name ActionName) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}
