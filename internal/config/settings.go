package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyEditorCommand = "editor_command"
	KeyConfirmDelete = "confirm_delete"
	KeyNewFileDir    = "new_file_directory"
)

// Default values
const (
	DefaultEditorCommand = "xdg-open {filepath}"
	DefaultConfirmDelete = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetEditorCommand returns the external editor command template. The
// {filepath} placeholder is replaced with the note's file at launch time.
func (s *Settings) GetEditorCommand() string {
	command := s.app.Preferences().String(KeyEditorCommand)
	if strings.TrimSpace(command) == "" {
		s.SetEditorCommand(DefaultEditorCommand)
		return DefaultEditorCommand
	}
	return command
}

// SetEditorCommand sets the external editor command template
func (s *Settings) SetEditorCommand(command string) {
	if strings.TrimSpace(command) == "" {
		command = DefaultEditorCommand
	}
	s.app.Preferences().SetString(KeyEditorCommand, command)
}

// GetConfirmDelete returns whether note deletion asks for confirmation
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets whether note deletion asks for confirmation
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}

// GetNewFileDirectory returns the directory where the "New file" action
// creates note files; empty means the application data directory.
func (s *Settings) GetNewFileDirectory() string {
	return s.app.Preferences().String(KeyNewFileDir)
}

// SetNewFileDirectory sets the directory for freshly created note files
func (s *Settings) SetNewFileDirectory(dir string) {
	s.app.Preferences().SetString(KeyNewFileDir, dir)
}
