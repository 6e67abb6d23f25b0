package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSettingsFrom_MissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "nope.json"))

	require.NoError(t, err)
	assert.Equal(t, DefaultListenAddr, s.GetListenAddr())
	assert.Equal(t, 750*time.Millisecond, s.GetBoundsDebounce())
	assert.Equal(t, 10*time.Second, s.GetHostCallTimeout())
	assert.Equal(t, 440, s.GetDialogWidth())
	assert.Equal(t, 568, s.GetDialogHeight())
	assert.Equal(t, 50, s.GetDialogOffsetTop())
	assert.Equal(t, DefaultAllowedOrigins, s.GetAllowedOrigins())
}

func TestLoadSettingsFrom_Overrides(t *testing.T) {
	path := writeSettings(t, `{
		"listen_addr": "127.0.0.1:9000",
		"bounds_debounce_ms": 200,
		"dialog_offset_top": 0,
		"allowed_origins": "chrome-extension://abc, moz-extension://def"
	}`)

	s, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", s.GetListenAddr())
	assert.Equal(t, 200*time.Millisecond, s.GetBoundsDebounce())
	assert.Equal(t, 0, s.GetDialogOffsetTop())
	assert.Equal(t, []string{"chrome-extension://abc", "moz-extension://def"}, s.GetAllowedOrigins())
}

func TestLoadSettingsFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{`},
		{"zero debounce", `{"bounds_debounce_ms": 0}`},
		{"negative width", `{"dialog_width": -1}`},
		{"negative log files", `{"max_log_files": -5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettingsFrom(writeSettings(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestGetHome_RespectsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	assert.Equal(t, dir, GetHome())
	assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{"listen_addr", "allowed_origins", "bounds_debounce_ms", "debug", "dialog_url"} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, DefaultListenAddr, example["listen_addr"])
}
