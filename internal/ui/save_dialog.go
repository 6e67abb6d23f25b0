package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/ports"
	"github.com/renato0307/tabstash/internal/theme"
)

const (
	msgSelectFolder   = "Please select a destination folder from the tree."
	msgEmptyName      = "New folder name cannot be empty."
	msgNoFolders      = "Could not find any bookmark folders to save into."
	msgLoading        = "Loading folders..."
	msgSaving         = "Saving..."
	requestTimeout    = 15 * time.Second
	maxVisibleFolders = 10
)

type focusArea int

const (
	focusFolders focusArea = iota
	focusName
)

// SaveDialogResult is how the dialog ended
type SaveDialogResult struct {
	Cancelled bool
	Saved     bool
}

// SaveDialog picks a destination folder for the pending transfer
type SaveDialog struct {
	Completed bool
	Result    SaveDialogResult

	canSave     bool
	cursor      int
	filterInput textinput.Model
	focus       focusArea
	folders     []FolderOption
	keys        KeyMap
	lastQuery   string
	loading     bool
	mode        domain.SaveMode
	nameInput   textinput.Model
	saving      bool
	selectedID  string
	sender      ports.MessageSender
	status      string
	ticket      string
	visible     []FolderOption
	width       int
}

// NewSaveDialog creates the dialog. ticket may be empty.
func NewSaveDialog(sender ports.MessageSender, ticket string, now time.Time) *SaveDialog {
	name := textinput.New()
	name.Prompt = "Folder name: "
	name.PromptStyle = theme.LabelStyle
	name.Cursor.Style = theme.FilterCursorStyle
	name.CharLimit = 200
	name.Width = 48
	name.SetValue("Saved Tabs " + now.Format("2006-01-02 15:04:05"))

	filter := textinput.New()
	filter.Prompt = "Filter: "
	filter.PromptStyle = theme.FilterPromptStyle
	filter.Cursor.Style = theme.FilterCursorStyle
	filter.Placeholder = "type to filter folders"
	filter.PlaceholderStyle = theme.DimmedStyle
	filter.CharLimit = 100
	filter.Width = 48
	filter.Focus()

	return &SaveDialog{
		filterInput: filter,
		focus:       focusFolders,
		keys:        NewKeyMap(),
		loading:     true,
		mode:        domain.SaveModeCreate,
		nameInput:   name,
		sender:      sender,
		status:      msgLoading,
		ticket:      ticket,
	}
}

// Init loads the bookmark tree
func (d *SaveDialog) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, d.send(domain.Request{Action: domain.ActionGetBookmarkTree}, func(resp *domain.Response, err error) tea.Msg {
		return treeLoadedMsg{resp: resp, err: err}
	}))
}

func (d *SaveDialog) send(req domain.Request, wrap func(*domain.Response, error) tea.Msg) tea.Cmd {
	sender := d.sender
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		resp, err := sender.Send(ctx, req)
		return wrap(resp, err)
	}
}

// Update handles messages for the dialog
func (d *SaveDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		return d, nil

	case treeLoadedMsg:
		d.onTreeLoaded(msg)
		return d, nil

	case savedMsg:
		return d.onSaved(msg)

	case cancelledMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to send cancel", "error", msg.err)
		}
		return d, tea.Quit

	case tea.KeyMsg:
		if cmd, handled := d.handleKey(msg); handled {
			return d, cmd
		}
	}

	var cmd tea.Cmd
	if d.focus == focusName {
		d.nameInput, cmd = d.nameInput.Update(msg)
		return d, cmd
	}
	d.filterInput, cmd = d.filterInput.Update(msg)
	d.applyFilter()
	return d, cmd
}

func (d *SaveDialog) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if d.Completed {
		return nil, true
	}

	switch {
	case key.Matches(msg, d.keys.Cancel):
		d.Completed = true
		d.Result.Cancelled = true
		return d.send(domain.Request{Action: domain.ActionCancelSave, Ticket: d.ticket}, func(_ *domain.Response, err error) tea.Msg {
			return cancelledMsg{err: err}
		}), true

	case d.saving:
		return nil, true

	case key.Matches(msg, d.keys.Save):
		return d.save(), true

	case key.Matches(msg, d.keys.ToggleMode):
		d.toggleMode()
		return nil, true

	case key.Matches(msg, d.keys.NextField):
		if d.mode == domain.SaveModeCreate {
			d.setFocus(1 - d.focus)
		}
		return nil, true

	case key.Matches(msg, d.keys.Up):
		d.moveCursor(-1)
		return nil, true

	case key.Matches(msg, d.keys.Down):
		d.moveCursor(1)
		return nil, true
	}
	return nil, false
}

func (d *SaveDialog) onTreeLoaded(msg treeLoadedMsg) {
	d.loading = false
	switch {
	case msg.err != nil:
		d.status = "Error loading folders: " + msg.err.Error()
		return
	case msg.resp == nil:
		d.status = "Error loading folders: no response from tabstash."
		return
	case msg.resp.Error != "":
		d.status = "Error loading folders: " + msg.resp.Error
		return
	}

	d.folders = FlattenFolders(msg.resp.Tree)
	d.visible = d.folders
	idx := DefaultFolderIndex(d.folders)
	if idx < 0 {
		d.status = msgNoFolders
		return
	}
	d.canSave = true
	d.status = ""
	d.cursor = idx
	d.selectedID = d.folders[idx].ID
}

func (d *SaveDialog) onSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	d.saving = false
	switch {
	case msg.err != nil:
		d.status = "Error communicating with tabstash: " + msg.err.Error()
		return d, nil
	case msg.resp.Succeeded():
		d.Completed = true
		d.Result.Saved = true
		return d, tea.Quit
	}

	reason := "Unknown error."
	if msg.resp != nil && msg.resp.Message != "" {
		reason = msg.resp.Message
	}
	d.status = "Save failed: " + reason
	return d, nil
}

func (d *SaveDialog) save() tea.Cmd {
	if !d.canSave {
		return nil
	}
	if d.selectedID == "" {
		d.status = msgSelectFolder
		d.setFocus(focusFolders)
		return nil
	}

	req := domain.Request{
		Action:   domain.ActionSaveBookmarks,
		ParentID: d.selectedID,
		SaveMode: d.mode,
		Ticket:   d.ticket,
	}
	if d.mode == domain.SaveModeCreate {
		name := strings.TrimSpace(d.nameInput.Value())
		if name == "" {
			d.status = msgEmptyName
			d.setFocus(focusName)
			return nil
		}
		req.FolderName = &name
	}

	d.saving = true
	d.status = msgSaving
	return d.send(req, func(resp *domain.Response, err error) tea.Msg {
		return savedMsg{resp: resp, err: err}
	})
}

func (d *SaveDialog) toggleMode() {
	if d.mode == domain.SaveModeCreate {
		d.mode = domain.SaveModeDirect
		d.setFocus(focusFolders)
	} else {
		d.mode = domain.SaveModeCreate
	}
	d.status = ""
}

func (d *SaveDialog) setFocus(f focusArea) {
	d.focus = f
	if f == focusName {
		d.filterInput.Blur()
		d.nameInput.Focus()
		return
	}
	d.nameInput.Blur()
	d.filterInput.Focus()
}

func (d *SaveDialog) moveCursor(delta int) {
	if len(d.visible) == 0 {
		return
	}
	d.cursor = min(max(d.cursor+delta, 0), len(d.visible)-1)
	d.selectedID = d.visible[d.cursor].ID
	d.status = ""
}

// applyFilter refilters the folder list when the query changed.
// The selection follows the best match.
func (d *SaveDialog) applyFilter() {
	query := d.filterInput.Value()
	if query == d.lastQuery {
		return
	}
	d.lastQuery = query

	d.visible = FilterFolders(d.folders, query)
	d.cursor = 0
	d.selectedID = ""
	if query == "" {
		if idx := DefaultFolderIndex(d.visible); idx >= 0 {
			d.cursor, d.selectedID = idx, d.visible[idx].ID
		}
		return
	}
	if len(d.visible) > 0 {
		d.selectedID = d.visible[0].ID
	}
}

// SelectedPath returns the display path of the selected folder
func (d *SaveDialog) SelectedPath() string {
	for _, opt := range d.folders {
		if opt.ID == d.selectedID {
			return opt.Path
		}
	}
	return "None"
}

// View renders the dialog
func (d *SaveDialog) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("Bookmark Selected Tabs"))
	b.WriteString("\n")
	b.WriteString(theme.SubtitleStyle.Render("Choose where to save the selected tabs"))
	b.WriteString("\n")

	b.WriteString(d.modeLine())
	b.WriteString("\n\n")
	if d.mode == domain.SaveModeCreate {
		b.WriteString(d.nameInput.View())
		b.WriteString("\n\n")
	}

	b.WriteString(theme.LabelStyle.Render("Destination: "))
	b.WriteString(theme.PathStyle.Render(d.SelectedPath()))
	b.WriteString("\n\n")

	list := d.filterInput.View() + "\n\n" + d.folderList()
	b.WriteString(theme.BorderStyle.Width(d.dialogWidth() - 2).Render(list))
	b.WriteString("\n")

	if d.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorStyle.Render(d.status))
		b.WriteString("\n")
	}

	b.WriteString(d.helpLine())
	return b.String()
}

func (d *SaveDialog) modeLine() string {
	create, direct := "( )", "( )"
	if d.mode == domain.SaveModeCreate {
		create = "(•)"
	} else {
		direct = "(•)"
	}
	return theme.NormalStyle.Render(create + " Create new folder   " + direct + " Save directly into selected folder")
}

func (d *SaveDialog) folderList() string {
	if d.loading {
		return theme.DimmedStyle.Render("  " + msgLoading)
	}
	if len(d.visible) == 0 {
		return theme.DimmedStyle.Render("  No matching folders")
	}

	start, end := d.visibleRange()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		opt := d.visible[i]
		prefix := "  "
		switch {
		case i == d.cursor:
			prefix = "> "
		case i == start && start > 0:
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		case i == end-1 && end < len(d.visible):
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		}

		style := theme.ItemStyle
		if opt.ID == d.selectedID {
			style = theme.ItemSelectedStyle
		}
		lines = append(lines, prefix+style.Render(opt.Path))
	}
	return strings.Join(lines, "\n")
}

// visibleRange keeps the cursor visible with some context
func (d *SaveDialog) visibleRange() (int, int) {
	total := len(d.visible)
	if total <= maxVisibleFolders {
		return 0, total
	}
	start := max(d.cursor-maxVisibleFolders/2, 0)
	end := start + maxVisibleFolders
	if end > total {
		end = total
		start = end - maxVisibleFolders
	}
	return start, end
}

func (d *SaveDialog) helpLine() string {
	parts := make([]string, 0, len(d.keys.ShortHelp()))
	for _, b := range d.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, theme.HelpKeyStyle.Render(h.Key)+" "+h.Desc)
	}
	return theme.HelpStyle.Render(strings.Join(parts, " • "))
}

func (d *SaveDialog) dialogWidth() int {
	if d.width > 0 {
		return d.width
	}
	return 80
}
