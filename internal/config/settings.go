package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	DefaultListenAddr        = "127.0.0.1:7412"
	DefaultBoundsDebounceMS  = 750
	DefaultHostCallTimeoutMS = 10000
	DefaultDialogWidth       = 440
	DefaultDialogHeight      = 568
	DefaultDialogOffsetTop   = 50
)

// DefaultAllowedOrigins lets browser extensions reach the server
var DefaultAllowedOrigins = []string{"chrome-extension://*", "moz-extension://*"}

// Settings represents the structure of $TABSTASH_HOME/settings.json.
// Unset fields fall back to defaults through the accessor methods.
type Settings struct {
	AllowedOrigins    StringArray `json:"allowed_origins,omitempty"`
	BoundsDebounceMS  *int        `json:"bounds_debounce_ms,omitempty"`
	Debug             *bool       `json:"debug,omitempty"`
	DialogHeight      *int        `json:"dialog_height,omitempty"`
	DialogOffsetTop   *int        `json:"dialog_offset_top,omitempty"`
	DialogURL         string      `json:"dialog_url,omitempty"`
	DialogWidth       *int        `json:"dialog_width,omitempty"`
	HostCallTimeoutMS *int        `json:"host_call_timeout_ms,omitempty"`
	ListenAddr        string      `json:"listen_addr,omitempty"`
	MaxLogFiles       *int        `json:"max_log_files,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $TABSTASH_HOME/settings.json.
// Returns empty Settings if the file doesn't exist.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $TABSTASH_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Validate rejects values that cannot be used
func (s *Settings) Validate() error {
	positive := map[string]*int{
		"bounds_debounce_ms":   s.BoundsDebounceMS,
		"dialog_height":        s.DialogHeight,
		"dialog_width":         s.DialogWidth,
		"host_call_timeout_ms": s.HostCallTimeoutMS,
	}
	for name, v := range positive {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, *v)
		}
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files cannot be negative, got %d", *s.MaxLogFiles)
	}
	return nil
}

// GetListenAddr returns the server address
func (s *Settings) GetListenAddr() string {
	if s.ListenAddr == "" {
		return DefaultListenAddr
	}
	return s.ListenAddr
}

// GetAllowedOrigins returns the CORS origins allowed to call the server
func (s *Settings) GetAllowedOrigins() []string {
	if len(s.AllowedOrigins) == 0 {
		return DefaultAllowedOrigins
	}
	return s.AllowedOrigins
}

// GetBoundsDebounce returns the bounds persistence quiet period
func (s *Settings) GetBoundsDebounce() time.Duration {
	return millis(s.BoundsDebounceMS, DefaultBoundsDebounceMS)
}

// GetHostCallTimeout returns how long a host call may take
func (s *Settings) GetHostCallTimeout() time.Duration {
	return millis(s.HostCallTimeoutMS, DefaultHostCallTimeoutMS)
}

// GetDialogWidth returns the dialog width used when no geometry is saved
func (s *Settings) GetDialogWidth() int { return orDefault(s.DialogWidth, DefaultDialogWidth) }

// GetDialogHeight returns the dialog height used when no geometry is saved
func (s *Settings) GetDialogHeight() int { return orDefault(s.DialogHeight, DefaultDialogHeight) }

// GetDialogOffsetTop returns how far above center a new dialog is placed
func (s *Settings) GetDialogOffsetTop() int {
	return orDefault(s.DialogOffsetTop, DefaultDialogOffsetTop)
}

func millis(v *int, def int) time.Duration {
	if v == nil {
		return time.Duration(def) * time.Millisecond
	}
	return time.Duration(*v) * time.Millisecond
}

func orDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
