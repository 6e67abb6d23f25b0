package config

import (
	"reflect"
	"strings"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings.
// This stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "bounds_debounce_ms":
				return DefaultBoundsDebounceMS
			case "dialog_height":
				return DefaultDialogHeight
			case "dialog_offset_top":
				return DefaultDialogOffsetTop
			case "dialog_width":
				return DefaultDialogWidth
			case "host_call_timeout_ms":
				return DefaultHostCallTimeoutMS
			case "max_log_files":
				return 1000
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "dialog_url":
			return "chrome-extension://<extension-id>/save_dialog.html"
		case "listen_addr":
			return DefaultListenAddr
		default:
			return "example"
		}
	case reflect.Slice:
		if fieldName == "allowed_origins" {
			return DefaultAllowedOrigins
		}
		return []string{"example1", "example2"}
	}

	return nil
}
