// Package apperror defines the application's error taxonomy. Every failure
// surfaced to the UI is one of the sentinel kinds below, wrapped with a
// human-readable message; callers branch with errors.Is.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrStorage means the note store is unreachable or unwritable.
	ErrStorage = errors.New("storage error")

	// ErrNotFound means an id has no matching row.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput means a malformed path or out-of-range style value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExternalProcess means launching the external editor failed.
	ErrExternalProcess = errors.New("external process error")
)

// AppError carries a sentinel kind plus a user-facing message.
type AppError struct {
	Err     error  // sentinel kind
	Message string // human-readable error message
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Storage wraps a low-level database failure.
func Storage(op string, err error) *AppError {
	return &AppError{
		Err:     ErrStorage,
		Message: fmt.Sprintf("store: %s: %v", op, err),
	}
}

// NotFound reports a missing note row.
func NotFound(id int64) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("note %d not found", id),
	}
}

// InvalidInput reports a rejected value for the named field.
func InvalidInput(field, message string) *AppError {
	return &AppError{
		Err:     ErrInvalidInput,
		Message: fmt.Sprintf("%s: %s", field, message),
	}
}

// ExternalProcess reports a failed editor/opener launch.
func ExternalProcess(command string, err error) *AppError {
	return &AppError{
		Err:     ErrExternalProcess,
		Message: fmt.Sprintf("launching %q: %v", command, err),
	}
}
