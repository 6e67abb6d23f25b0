package domain

// HostMethod names a call the coordinator makes on the host
type HostMethod string

const (
	MethodTabsQueryHighlighted HostMethod = "tabs.queryHighlighted"
	MethodTabsRemove           HostMethod = "tabs.remove"
	MethodBookmarksCreate      HostMethod = "bookmarks.create"
	MethodBookmarksGet         HostMethod = "bookmarks.get"
	MethodBookmarksGetTree     HostMethod = "bookmarks.getTree"
	MethodWindowsCreate        HostMethod = "windows.create"
	MethodWindowsGet           HostMethod = "windows.get"
	MethodWindowsRemove        HostMethod = "windows.remove"
	MethodWindowsUpdate        HostMethod = "windows.update"
	MethodDisplayGetInfo       HostMethod = "system.display.getInfo"
	MethodNotificationsCreate  HostMethod = "notifications.create"
	MethodContextMenusCreate   HostMethod = "contextMenus.create"
)
