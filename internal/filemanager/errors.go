package filemanager

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned when the path extension is not one of
	// SupportedExtensions.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoFigure is returned when Save is called without a figure, which
	// happens when the user saves after a failed load.
	ErrNoFigure = errors.New("no figure loaded")
)

// FileError describes a failed load or save.
type FileError struct {
	// Op is "load" or "save".
	Op string

	// Path is the file the operation targeted.
	Path string

	// Format is the format resolved from Path.
	Format Format

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Path, e.Format, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FileError) Unwrap() error {
	return e.Err
}

// Message returns the cause of err without the operation prefix, which is
// what the console shows after "Error loading file:".
func Message(err error) string {
	var fileErr *FileError
	if errors.As(err, &fileErr) && fileErr.Err != nil {
		return fileErr.Err.Error()
	}
	return err.Error()
}
