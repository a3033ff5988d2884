package console

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal switches an input device into raw mode for single-key reads.
type Terminal interface {
	// MakeRaw enters raw mode and returns a function restoring the previous
	// state.
	MakeRaw() (restore func() error, err error)
}

// fileTerminal is a Terminal backed by a tty file descriptor.
type fileTerminal struct {
	fd int
}

// NewTerminal returns a Terminal for f, or nil when f is not a terminal
// (a pipe, a file or /dev/null).
func NewTerminal(f *os.File) Terminal {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	return &fileTerminal{fd: fd}
}

func (t *fileTerminal) MakeRaw() (func() error, error) {
	old, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	return func() error {
		return term.Restore(t.fd, old)
	}, nil
}

// crlfWriter translates "\n" to "\r\n". Raw mode disables output
// post-processing, so bare newlines would not return the cursor.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
