// Package paths resolves the default locations of the todo data
// directory and configuration file.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// TasksFileName is the tasks document inside the data directory.
const TasksFileName = "tasks.json"

// UndoFileName is the undo history inside the data directory.
const UndoFileName = "undo.json"

// DefaultDataDir returns the default todo data directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".todo"), nil
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "todo", "config.toml"), nil
}

// ResolveWithDefault returns the override when set, otherwise the
// result of defaultFn.
func ResolveWithDefault(override string, defaultFn func() (string, error)) (string, error) {
	if override != "" {
		return override, nil
	}
	return defaultFn()
}

// TasksFile returns the tasks document path inside dataDir.
func TasksFile(dataDir string) string {
	return filepath.Join(dataDir, TasksFileName)
}

// UndoFile returns the undo history path inside dataDir.
func UndoFile(dataDir string) string {
	return filepath.Join(dataDir, UndoFileName)
}
