package cmd

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterbridge "github.com/renato0307/tabstash/internal/adapters/bridge"
	"github.com/renato0307/tabstash/internal/config"
	"github.com/renato0307/tabstash/internal/domain"
)

func newTestContainer(t *testing.T, settings *config.Settings) *Container {
	t.Helper()
	t.Setenv(config.HomeEnv, t.TempDir())
	container, err := NewContainer(settings)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })
	return container
}

func TestNewContainer_RejectsInvalidSettings(t *testing.T) {
	zero := 0

	_, err := NewContainer(&config.Settings{BoundsDebounceMS: &zero})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bounds_debounce_ms")
}

func TestStateView_ShowsPersistedRecords(t *testing.T) {
	container := newTestContainer(t, nil)
	store, err := container.StoreService()
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.SavePendingTransfer(ctx, domain.PendingTransfer{
		Items:          []domain.TabRecord{{ID: 1, Title: "Go", URL: "https://go.dev"}},
		CloseAfterSave: true,
		Ticket:         "t-1",
		CreatedAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}))
	require.NoError(t, store.SaveWindowState(ctx, domain.WindowState{Width: 500, Height: 600, Top: 10, Left: 20}))

	view, err := loadStateView(ctx, store)
	require.NoError(t, err)

	var yamlOut bytes.Buffer
	require.NoError(t, writeStateView(&yamlOut, view, "yaml"))
	assert.Contains(t, yamlOut.String(), "close_after_save: true")
	assert.Contains(t, yamlOut.String(), "url: https://go.dev")
	assert.Contains(t, yamlOut.String(), "width: 500")

	var jsonOut bytes.Buffer
	require.NoError(t, writeStateView(&jsonOut, view, "json"))
	assert.Contains(t, jsonOut.String(), `"closeAfterSave": true`)
	assert.Contains(t, jsonOut.String(), `"ticket": "t-1"`)
}

func TestStateView_EmptyStore(t *testing.T) {
	container := newTestContainer(t, nil)
	store, err := container.StoreService()
	require.NoError(t, err)

	view, err := loadStateView(context.Background(), store)
	require.NoError(t, err)

	assert.Nil(t, view.PendingTransfer)
	assert.Nil(t, view.WindowState)
	var out bytes.Buffer
	require.NoError(t, writeStateView(&out, view, "yaml"))
	assert.Contains(t, out.String(), "pending_transfer: null")
}

func TestStateClear_OnlySelectedRecords(t *testing.T) {
	container := newTestContainer(t, nil)
	store, err := container.StoreService()
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.SavePendingTransfer(ctx, domain.PendingTransfer{Ticket: "t-1"}))
	require.NoError(t, store.SaveWindowState(ctx, domain.WindowState{Width: 1, Height: 1}))
	cli := &CLI{Container: container}

	require.NoError(t, (&StateClearCmd{Transfer: true, Yes: true}).Run(cli))

	transfer, err := store.PendingTransfer(ctx)
	require.NoError(t, err)
	assert.Nil(t, transfer)
	state, err := store.WindowState(ctx)
	require.NoError(t, err)
	assert.NotNil(t, state)

	require.NoError(t, (&StateClearCmd{Yes: true}).Run(cli))
	state, err = store.WindowState(ctx)
	require.NoError(t, err)
	assert.Nil(t, state)
}

func stubConfirm(t *testing.T, answer bool) *[]string {
	t.Helper()
	var asked []string
	orig := confirmClear
	confirmClear = func(targets string) (bool, error) {
		asked = append(asked, targets)
		return answer, nil
	}
	t.Cleanup(func() { confirmClear = orig })
	return &asked
}

func TestStateClear_Confirmation(t *testing.T) {
	tests := []struct {
		name        string
		cmd         StateClearCmd
		answer      bool
		wantAsked   []string
		wantCleared bool
	}{
		{
			name:      "declined keeps records",
			cmd:       StateClearCmd{},
			answer:    false,
			wantAsked: []string{"the pending transfer and dialog geometry"},
		},
		{
			name:        "accepted clears",
			cmd:         StateClearCmd{Transfer: true},
			answer:      true,
			wantAsked:   []string{"the pending transfer"},
			wantCleared: true,
		},
		{
			name:        "yes skips the prompt",
			cmd:         StateClearCmd{Yes: true},
			wantCleared: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asked := stubConfirm(t, tt.answer)
			container := newTestContainer(t, nil)
			store, err := container.StoreService()
			require.NoError(t, err)
			ctx := context.Background()
			require.NoError(t, store.SavePendingTransfer(ctx, domain.PendingTransfer{Ticket: "t-1"}))

			require.NoError(t, tt.cmd.Run(&CLI{Container: container}))

			assert.Equal(t, tt.wantAsked, *asked)
			transfer, err := store.PendingTransfer(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCleared, transfer == nil)
		})
	}
}

func TestStateTheme_IsShown(t *testing.T) {
	container := newTestContainer(t, nil)
	cli := &CLI{Container: container}

	require.NoError(t, (&StateThemeCmd{Theme: "dark"}).Run(cli))

	store, err := container.StoreService()
	require.NoError(t, err)
	view, err := loadStateView(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, "dark", view.Theme)
}

func TestNewClearConfirmForm(t *testing.T) {
	confirmed := false

	form := newClearConfirmForm("the pending transfer", &confirmed)

	require.NotNil(t, form)
	assert.False(t, confirmed)
}

func TestWriteSettingsMeta_TableIsSorted(t *testing.T) {
	var out bytes.Buffer

	err := writeSettingsMeta(&out, "/tmp/settings.json", config.GetSettingsExample(), "table")

	require.NoError(t, err)
	text := out.String()
	assert.Contains(t, text, "Settings file: /tmp/settings.json")
	assert.Less(t, strings.Index(text, "allowed_origins"), strings.Index(text, "listen_addr"))
	assert.Less(t, strings.Index(text, "dialog_height"), strings.Index(text, "dialog_width"))
}

func TestWriteSettingsMeta_JSON(t *testing.T) {
	var out bytes.Buffer

	err := writeSettingsMeta(&out, "/tmp/settings.json", map[string]any{"debug": true}, "json")

	require.NoError(t, err)
	assert.JSONEq(t, `{"settings_file":"/tmp/settings.json","format":{"debug":true}}`, out.String())
}

func TestEngine_AnswersDialogMessages(t *testing.T) {
	timeout := 100
	container := newTestContainer(t, &config.Settings{HostCallTimeoutMS: &timeout})
	engine, err := container.NewEngine("127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = engine.Queue.Run(ctx) }()

	ts := httptest.NewServer(engine.Server.Handler())
	defer ts.Close()
	client := adapterbridge.NewClient(strings.TrimPrefix(ts.URL, "http://"), time.Second)

	// No browser shim is attached, so the tree lookup fails but is answered
	resp, err := client.Send(ctx, domain.Request{Action: domain.ActionGetBookmarkTree})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Contains(t, resp.Error, "host is not connected")

	resp, err = client.Send(ctx, domain.Request{Action: domain.ActionCancelSave})
	require.NoError(t, err)
	assert.Nil(t, resp)

	resp, err = client.Send(ctx, domain.Request{Action: domain.ActionSaveBookmarks, ParentID: "1", SaveMode: domain.SaveModeDirect})
	require.NoError(t, err)
	assert.False(t, resp.Succeeded())
	assert.NotEmpty(t, resp.Message)
}
