package domain

import "errors"

var (
	ErrDialogOpenFailed    = errors.New("error opening save dialog")
	ErrEmptyFolderName     = errors.New("new folder name cannot be empty")
	ErrHostUnavailable     = errors.New("host is not connected")
	ErrKeyNotFound         = errors.New("key not found")
	ErrMissingDestination  = errors.New("parent folder or name missing")
	ErrNoTabData           = errors.New("no tab data found to bookmark")
	ErrNotEnoughTabs       = errors.New("no recent multi-tab selection found")
	ErrTicketMismatch      = errors.New("pending transfer belongs to another dialog")
	ErrUnknownAction       = errors.New("unknown action")
	ErrWindowNotFound      = errors.New("window not found")
	ErrBookmarkNotFound    = errors.New("bookmark not found")
	ErrFolderCreateFailed  = errors.New("could not create folder")
	ErrHandlerPanicked     = errors.New("internal error while handling message")
	ErrDestinationNotFound = errors.New("could not read destination folder")
)
