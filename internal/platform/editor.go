package platform

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/desknotes/desknotes/internal/apperror"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// System opener commands
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	WindowsCmdFlag = "/c"
	StartCommand   = "start"
)

// FilePathPlaceholder is substituted with the note's file path inside the
// configured editor command template.
const FilePathPlaceholder = "{filepath}"

// BuildEditorArgs expands the editor command template for filePath. The
// template is split on whitespace and every {filepath} occurrence replaced;
// a template without the placeholder gets the path appended as the last
// argument.
func BuildEditorArgs(template, filePath string) ([]string, error) {
	fields := strings.Fields(template)
	if len(fields) == 0 {
		return nil, apperror.InvalidInput("editor command", "command is empty")
	}

	replaced := false
	args := make([]string, 0, len(fields)+1)
	for _, field := range fields {
		if strings.Contains(field, FilePathPlaceholder) {
			field = strings.ReplaceAll(field, FilePathPlaceholder, filePath)
			replaced = true
		}
		args = append(args, field)
	}
	if !replaced {
		args = append(args, filePath)
	}
	return args, nil
}

// OpenInEditor launches the configured editor for filePath and returns
// without waiting for it to exit. An empty template falls back to the OS
// default opener. Failures wrap ErrExternalProcess; the caller logs them and
// keeps running.
func OpenInEditor(template, filePath string) error {
	if strings.TrimSpace(template) == "" {
		return OpenFileWithDefaultApp(filePath)
	}

	args, err := BuildEditorArgs(template, filePath)
	if err != nil {
		return err
	}

	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return apperror.ExternalProcess(args[0], err)
	}

	// Reap the child when it exits so it never lingers as a zombie.
	go cmd.Wait()
	return nil
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case OSDarwin:
		cmd = exec.Command(OpenCommand, filePath)
	case OSWindows:
		cmd = exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", filePath)
	default:
		cmd = exec.Command(XDGOpenCommand, filePath)
	}

	if err := cmd.Start(); err != nil {
		return apperror.ExternalProcess(cmd.Path, err)
	}
	go cmd.Wait()
	return nil
}
