package domain

import (
	"net/url"
	"strings"
)

// HistoryDepth is the number of selections remembered by SelectionHistory
const HistoryDepth = 2

// History slots
const (
	// SlotPrevious holds the selection observed before the most recent highlight event
	SlotPrevious = 0
	// SlotLatest holds the most recent selection
	SlotLatest = 1
)

// TabRecord is a snapshot of a tab at the moment it was observed
type TabRecord struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Selection is an ordered list of bookmarkable tabs, in host highlight order
type Selection struct {
	Items []TabRecord `json:"items" yaml:"items"`
}

// Len returns the number of tabs in the selection
func (s Selection) Len() int {
	return len(s.Items)
}

// TabIDs returns the ids of the selected tabs, preserving order
func (s Selection) TabIDs() []int {
	ids := make([]int, 0, len(s.Items))
	for _, item := range s.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// IsBookmarkableURL reports whether the URL uses the http or https scheme
func IsBookmarkableURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// NewSelection builds a Selection from raw tabs, keeping only bookmarkable ones
func NewSelection(tabs []TabRecord) Selection {
	items := make([]TabRecord, 0, len(tabs))
	for _, tab := range tabs {
		if tab.Title == "" || !IsBookmarkableURL(tab.URL) {
			continue
		}
		items = append(items, tab)
	}
	return Selection{Items: items}
}

// SelectionHistory is a fixed-depth FIFO of selections, oldest first
type SelectionHistory struct {
	slots [HistoryDepth]Selection
}

// Push appends a selection and evicts the oldest one
func (h *SelectionHistory) Push(s Selection) {
	copy(h.slots[:], h.slots[1:])
	h.slots[HistoryDepth-1] = s
}

// At returns the selection in the given slot. Out of range slots are empty.
func (h *SelectionHistory) At(slot int) Selection {
	if slot < 0 || slot >= HistoryDepth {
		return Selection{}
	}
	return h.slots[slot]
}

// Len always returns HistoryDepth
func (h *SelectionHistory) Len() int {
	return len(h.slots)
}

// Reset empties every slot
func (h *SelectionHistory) Reset() {
	h.slots = [HistoryDepth]Selection{}
}

// Snapshot returns a copy of all slots, oldest first
func (h *SelectionHistory) Snapshot() []Selection {
	out := make([]Selection, HistoryDepth)
	copy(out, h.slots[:])
	return out
}
