package config

import (
	"os"
	"path/filepath"
)

// HomeEnv overrides the tabstash home directory
const HomeEnv = "TABSTASH_HOME"

// GetHome returns $TABSTASH_HOME or ~/.tabstash
func GetHome() string {
	home := os.Getenv(HomeEnv)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".tabstash"
		}
		return filepath.Join(homeDir, ".tabstash")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $TABSTASH_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
