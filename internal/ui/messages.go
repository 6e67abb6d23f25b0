package ui

import "github.com/renato0307/tabstash/internal/domain"

// treeLoadedMsg carries the getBookmarkTree reply
type treeLoadedMsg struct {
	resp *domain.Response
	err  error
}

// savedMsg carries the saveBookmarks reply
type savedMsg struct {
	resp *domain.Response
	err  error
}

// cancelledMsg is sent once cancelSave has been delivered
type cancelledMsg struct {
	err error
}
