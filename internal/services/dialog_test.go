package services

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tabstash/internal/domain"
)

func TestInitiateSave_RequiresTwoTabs(t *testing.T) {
	tests := []struct {
		name string
		tabs int
	}{
		{"no tabs", 0},
		{"single tab", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			sel := domain.Selection{}
			for _, id := range env.openTabs(tt.tabs) {
				sel.Items = append(sel.Items, domain.TabRecord{ID: id, Title: "t", URL: "https://x.example"})
			}

			err := env.dialog.InitiateSave(env.ctx, false, &sel)

			assert.ErrorIs(t, err, domain.ErrNotEnoughTabs)
			assert.Nil(t, env.pendingTransfer())
			assert.Empty(t, env.popups())
			assert.Equal(t, msgNotEnoughTabs, env.lastNotification())
		})
	}
}

func TestInitiateSave_WritesTransferAndOpensDialog(t *testing.T) {
	env := newTestEnv(t)
	ids := env.openTabs(3)
	env.highlight(ids...)

	require.NoError(t, env.dialog.InitiateSave(env.ctx, true, nil))

	transfer := env.pendingTransfer()
	require.NotNil(t, transfer)
	assert.True(t, transfer.CloseAfterSave)
	assert.Equal(t, ids, transfer.TabIDs())
	assert.Equal(t, "ticket-1", transfer.Ticket)

	popups := env.popups()
	require.Len(t, popups, 1)
	assert.True(t, env.state.IsDialog(popups[0].ID))
}

func TestInitiateSave_KeepsSingleDialog(t *testing.T) {
	env := newTestEnv(t)
	env.highlight(env.openTabs(2)...)

	require.NoError(t, env.dialog.InitiateSave(env.ctx, false, nil))
	first, _ := env.state.DialogID()
	require.NoError(t, env.dialog.InitiateSave(env.ctx, false, nil))
	env.drain() // windowRemoved for the first dialog

	popups := env.popups()
	require.Len(t, popups, 1)
	second, open := env.state.DialogID()
	assert.True(t, open)
	assert.NotEqual(t, first, second)
	assert.Equal(t, popups[0].ID, second)
	assert.Equal(t, "ticket-2", env.pendingTransfer().Ticket)
}

func TestInitiateSave_RestoresSavedGeometryExactly(t *testing.T) {
	env := newTestEnv(t)
	saved := domain.WindowState{Width: 440, Height: 568, Top: 100, Left: 200}
	require.NoError(t, env.store.SaveWindowState(env.ctx, saved))
	env.highlight(env.openTabs(2)...)

	require.NoError(t, env.dialog.InitiateSave(env.ctx, false, nil))

	popups := env.popups()
	require.Len(t, popups, 1)
	assert.Equal(t, saved, popups[0].Geometry())
	assert.Equal(t, 0, env.host.Calls(domain.MethodWindowsUpdate))
	assert.Equal(t, 0, env.host.Calls(domain.MethodDisplayGetInfo))
}

func TestInitiateSave_CentersOnPrimaryDisplay(t *testing.T) {
	tests := []struct {
		name     string
		displays []domain.Display
		expected domain.WindowState
	}{
		{
			name: "single display",
			displays: []domain.Display{
				{ID: "a", IsPrimary: true, WorkArea: domain.Rect{Width: 1920, Height: 1080}},
			},
			expected: domain.WindowState{Width: 440, Height: 568, Left: 740, Top: 206},
		},
		{
			name: "primary is not first",
			displays: []domain.Display{
				{ID: "a", WorkArea: domain.Rect{Width: 1280, Height: 720}},
				{ID: "b", IsPrimary: true, WorkArea: domain.Rect{Left: 1280, Top: 20, Width: 2560, Height: 1440}},
			},
			expected: domain.WindowState{Width: 440, Height: 568, Left: 1280 + 1060, Top: 20 + 436 - 50},
		},
		{
			name: "no primary falls back to first",
			displays: []domain.Display{
				{ID: "a", WorkArea: domain.Rect{Width: 1000, Height: 800}},
				{ID: "b", WorkArea: domain.Rect{Left: 1000, Width: 1000, Height: 800}},
			},
			expected: domain.WindowState{Width: 440, Height: 568, Left: 280, Top: 66},
		},
		{
			name: "clamped to work area origin",
			displays: []domain.Display{
				{ID: "a", IsPrimary: true, WorkArea: domain.Rect{Left: 10, Top: 30, Width: 400, Height: 500}},
			},
			expected: domain.WindowState{Width: 440, Height: 568, Left: 10, Top: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.host.SetDisplays(tt.displays)
			env.highlight(env.openTabs(2)...)

			require.NoError(t, env.dialog.InitiateSave(env.ctx, false, nil))

			popups := env.popups()
			require.Len(t, popups, 1)
			assert.Equal(t, tt.expected, popups[0].Geometry())
		})
	}
}

func TestInitiateSave_FallsBackWhenDisplaysUnavailable(t *testing.T) {
	env := newTestEnv(t)
	env.host.Fail(domain.MethodDisplayGetInfo, errors.New("no display api"))
	env.highlight(env.openTabs(2)...)

	require.NoError(t, env.dialog.InitiateSave(env.ctx, false, nil))

	popups := env.popups()
	require.Len(t, popups, 1)
	assert.Equal(t, domain.WindowState{Width: 440, Height: 568, Top: 100, Left: 100}, popups[0].Geometry())
}

func TestInitiateSave_CorrectsIgnoredGeometry(t *testing.T) {
	env := newTestEnv(t)
	env.host.AdjustWindow = func(p domain.WindowCreateParams) domain.WindowState {
		return domain.WindowState{Width: p.Width, Height: p.Height, Top: 0, Left: 0}
	}
	saved := domain.WindowState{Width: 500, Height: 600, Top: 40, Left: 60}
	require.NoError(t, env.store.SaveWindowState(env.ctx, saved))
	env.highlight(env.openTabs(2)...)

	require.NoError(t, env.dialog.InitiateSave(env.ctx, false, nil))

	assert.Equal(t, 1, env.host.Calls(domain.MethodWindowsUpdate))
	popups := env.popups()
	require.Len(t, popups, 1)
	assert.Equal(t, saved, popups[0].Geometry())
}

func TestInitiateSave_CreationFailureCleansUp(t *testing.T) {
	env := newTestEnv(t)
	env.host.Fail(domain.MethodWindowsCreate, errors.New("popup blocked"))
	env.highlight(env.openTabs(2)...)

	err := env.dialog.InitiateSave(env.ctx, false, nil)

	assert.ErrorIs(t, err, domain.ErrDialogOpenFailed)
	assert.Nil(t, env.pendingTransfer())
	_, open := env.state.DialogID()
	assert.False(t, open)
	assert.Equal(t, msgDialogOpenFailed, env.lastNotification())
}

func TestInitiateSave_TransferWriteFailure(t *testing.T) {
	env := newTestEnv(t)
	env.kv.FailWrites(errors.New("disk full"))
	env.highlight(env.openTabs(2)...)

	err := env.dialog.InitiateSave(env.ctx, false, nil)

	assert.ErrorIs(t, err, domain.ErrDialogOpenFailed)
	assert.Empty(t, env.popups())
}

func TestInitiateSave_DialogURLCarriesTicket(t *testing.T) {
	env := newTestEnv(t)
	env.dialog.config.URL = "chrome-extension://abc/save_dialog.html?theme=dark"

	got := env.dialog.dialogURL("ticket-9")

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "ticket-9", u.Query().Get("ticket"))
	assert.Equal(t, "dark", u.Query().Get("theme"))
}

func TestHandleWindowRemoved(t *testing.T) {
	env := newTestEnv(t)
	env.state.SetDialog(42)

	assert.False(t, env.dialog.HandleWindowRemoved(7))
	assert.True(t, env.state.IsDialog(42))

	assert.True(t, env.dialog.HandleWindowRemoved(42))
	_, open := env.state.DialogID()
	assert.False(t, open)
}

func TestDialogConfig_ZeroValuesUseDefaults(t *testing.T) {
	cfg := DialogConfig{}.withDefaults()

	assert.Equal(t, DefaultDialogURL, cfg.URL)
	assert.Equal(t, DefaultDialogWidth, cfg.Width)
	assert.Equal(t, DefaultDialogHeight, cfg.Height)
}
