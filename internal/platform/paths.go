package platform

import (
	"os"
	"path/filepath"
)

// AppDirName is the folder used under the per-user config and data roots.
const AppDirName = "desktop-notes"

// File and directory permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// DataDir returns the application's data directory, honoring XDG_DATA_HOME
// and falling back to ~/.local/share.
func DataDir() (string, error) {
	if root := os.Getenv("XDG_DATA_HOME"); root != "" {
		return filepath.Join(root, AppDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", AppDirName), nil
}

// DatabaseFile returns the path of the notes database, creating the data
// directory on first run.
func DatabaseFile() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", err
	}
	return filepath.Join(dir, "notes.db"), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
