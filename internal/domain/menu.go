package domain

// Context menu item ids
const (
	MenuAddToFavorites         = "addToFavorites"
	MenuAddToFavoritesAndClose = "addToFavoritesAndClose"
)

// Keyboard command names
const (
	CommandSaveSelectedTabs         = "save-selected-tabs"
	CommandSaveSelectedTabsAndClose = "save-selected-tabs-and-close"
)

// MenuItem is a context menu entry registered with the host
type MenuItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Contexts []string `json:"contexts"`
}

// MenuItems are registered when the coordinator is installed
var MenuItems = []MenuItem{
	{ID: MenuAddToFavorites, Title: "Add selected tabs to favourites", Contexts: []string{"page"}},
	{ID: MenuAddToFavoritesAndClose, Title: "Add selected tabs to favourites and close them", Contexts: []string{"page"}},
}

// Notification is a user-facing host notification
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	IconURL string `json:"iconUrl,omitempty"`
}
