package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/renato0307/tabstash/internal/adapters/memhost"
	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/events"
)

// testEnv wires every service against an in-memory host
type testEnv struct {
	t   *testing.T
	ctx context.Context

	host  *memhost.Host
	kv    *memhost.Store
	queue *events.Queue
	bus   *events.Bus
	clock *events.ManualScheduler

	state       *State
	store       *StoreService
	selection   *SelectionService
	dialog      *DialogService
	bounds      *BoundsService
	commit      *CommitService
	router      *RouterService
	coordinator *CoordinatorService

	window  int
	tickets int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	e := &testEnv{
		t:     t,
		ctx:   context.Background(),
		host:  memhost.New(),
		kv:    memhost.NewStore(),
		queue: events.NewQueue(),
		clock: events.NewManualScheduler(),
		state: NewState(),
	}
	e.bus = events.NewBus(e.queue)
	e.host.SetPublisher(e.bus)

	notifications := NewNotificationService(e.host)
	e.store = NewStoreService(e.kv)
	e.selection = NewSelectionService(e.state, e.host)
	e.dialog = NewDialogService(DefaultDialogConfig(), e.state, e.store, e.host, e.host, notifications)
	e.dialog.newTicket = func() string {
		e.tickets++
		return fmt.Sprintf("ticket-%d", e.tickets)
	}
	e.bounds = NewBoundsService(e.state, e.store, e.host, events.NewDebouncer(e.clock, 0, e.queue.Post))
	e.commit = NewCommitService(e.host, e.host)
	e.router = NewRouterService(e.store, e.host, e.commit, e.selection, e.bounds, notifications)
	e.coordinator = NewCoordinatorService(DefaultSelectionPolicy(), e.host, e.selection, e.dialog, e.bounds, e.router)
	e.coordinator.Register(e.bus)

	e.window = e.host.OpenWindow()
	return e
}

func (e *testEnv) drain() {
	e.queue.Drain(e.ctx)
}

// openTabs opens n bookmarkable tabs in the main window
func (e *testEnv) openTabs(n int) []int {
	ids := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		ids = append(ids, e.host.OpenTab(e.window, fmt.Sprintf("Tab %d", i), fmt.Sprintf("https://example.com/%d", i)))
	}
	return ids
}

// highlight highlights tabs and lets the coordinator record the selection
func (e *testEnv) highlight(ids ...int) {
	e.t.Helper()
	require.NoError(e.t, e.host.Highlight(e.window, ids...))
	e.drain()
}

// send delivers a dialog message through the bus and returns the reply
func (e *testEnv) send(req domain.Request) (*domain.Response, error) {
	e.t.Helper()
	var (
		resp    *domain.Response
		respErr error
		replied bool
	)
	e.bus.Publish(domain.Event{
		Type: domain.EventMessageReceived,
		Payload: domain.MessageReceivedPayload{
			Request: req,
			Reply: func(r *domain.Response, err error) {
				resp, respErr, replied = r, err, true
			},
		},
	})
	e.drain()
	require.True(e.t, replied, "message was not answered")
	return resp, respErr
}

func (e *testEnv) popups() []domain.Window {
	var out []domain.Window
	for _, w := range e.host.Windows() {
		if w.Type == domain.WindowTypePopup {
			out = append(out, w)
		}
	}
	return out
}

func (e *testEnv) pendingTransfer() *domain.PendingTransfer {
	e.t.Helper()
	transfer, err := e.store.PendingTransfer(e.ctx)
	require.NoError(e.t, err)
	return transfer
}

func (e *testEnv) lastNotification() string {
	e.t.Helper()
	notes := e.host.Notifications()
	require.NotEmpty(e.t, notes, "no notification shown")
	return notes[len(notes)-1].Message
}

// startSave highlights n tabs and opens the dialog through the keyboard command
func (e *testEnv) startSave(n int, closeAfterSave bool) []int {
	e.t.Helper()
	ids := e.openTabs(n)
	e.highlight(ids...)
	command := domain.CommandSaveSelectedTabs
	if closeAfterSave {
		command = domain.CommandSaveSelectedTabsAndClose
	}
	require.NoError(e.t, e.host.InvokeCommand(command))
	e.drain()
	require.NotNil(e.t, e.pendingTransfer())
	return ids
}

func strPtr(s string) *string {
	return &s
}
