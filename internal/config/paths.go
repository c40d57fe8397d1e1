package config

import (
	"os"
	"path/filepath"
)

// GetChordHome returns CHORD_HOME or ~/.chord default
func GetChordHome() string {
	chordHome := os.Getenv("CHORD_HOME")
	if chordHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".chord"
		}
		return filepath.Join(homeDir, ".chord")
	}
	return ExpandPath(chordHome)
}

// GetDBPath returns $CHORD_HOME/chord.db
func GetDBPath() string {
	return filepath.Join(GetChordHome(), "chord.db")
}

// GetKeymapsDir returns $CHORD_HOME/keymaps
func GetKeymapsDir() string {
	return filepath.Join(GetChordHome(), "keymaps")
}

// GetSettingsPath returns $CHORD_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetChordHome(), "settings.json")
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
