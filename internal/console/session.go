// =============================================================================
// Textovik - Interactive Session
// =============================================================================
//
// This module runs the interactive console flow:
//   1. Prompt for a file path (one line of input)
//   2. Load the figure and print it, or print why it could not be loaded
//   3. Loop over key presses: the save key re-saves the figure to the same
//      path, the exit key (or Ctrl+C, or end of input) ends the session
//
// INPUT MODES:
//   - Terminal: stdin is switched to raw mode for the key loop so single key
//     presses arrive without Enter. The previous mode is restored on return.
//   - Stream: stdin is a pipe or file. The same key decoder reads the bytes,
//     so scripted input such as "shape.json\n\x1bOP\x1b" works.
//
// Nothing in the session is fatal: load and save failures are reported and
// the loop continues.
//
// =============================================================================

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ginjaninja78/textovik/internal/filemanager"
	"github.com/ginjaninja78/textovik/internal/types"
)

// User-facing messages.
const (
	PromptPath         = "Enter the file path:"
	MessageUnsupported = "Unsupported file format"
	MessageSaved       = "File saved successfully"
	prefixLoadError    = "Error loading file: "
	prefixSaveError    = "Error saving file: "
)

// readBufferSize is the size of a single key read.
const readBufferSize = 256

// Session is one run of the interactive flow.
type Session struct {
	// In supplies the path line and the key presses.
	In io.Reader

	// Out receives prompts and notices.
	Out io.Writer

	// Terminal, when set, is put into raw mode for the key loop.
	Terminal Terminal

	// Keymap binds the save and exit commands.
	Keymap Keymap

	// Options configures the file manager.
	Options filemanager.Options

	// Logger receives diagnostics. Nil uses slog.Default().
	Logger *slog.Logger

	reader *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewSession creates a session with the default keymap and file options.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		In:      in,
		Out:     out,
		Keymap:  DefaultKeymap(),
		Options: filemanager.DefaultOptions(),
	}
}

// Run executes the session until an exit command or end of input.
//
// RETURNS:
//   - An error only if reading input fails for a reason other than end of
//     input, or raw mode cannot be entered. Load and save failures are
//     reported on Out and never returned.
func (s *Session) Run() error {
	s.reader = bufio.NewReader(s.In)
	s.out = s.Out
	s.logger = s.Logger
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.Options.Logger == nil {
		s.Options.Logger = s.logger
	}

	s.println(PromptPath)
	path, err := s.readPath()
	if err != nil {
		return err
	}

	fm := filemanager.NewWithOptions(path, s.Options)
	figure := s.load(fm)
	if figure != nil {
		s.println(figure.String())
	}

	s.println(s.Keymap.Hint())

	if s.Terminal != nil {
		restore, err := s.Terminal.MakeRaw()
		if err != nil {
			return err
		}
		defer restore()
		s.out = crlfWriter{w: s.Out}
	}

	return s.commandLoop(fm, figure)
}

// readPath reads the path line without its line terminator.
func (s *Session) readPath() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read file path: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// commandLoop reads key presses and dispatches commands.
func (s *Session) commandLoop(fm *filemanager.FileManager, figure *types.Figure) error {
	buf := make([]byte, readBufferSize)
	var pending []byte

	for {
		n, err := s.reader.Read(buf)
		data := append(pending, buf[:n]...)

		// A terminal read is one key press, so a trailing ESC there is the
		// Escape key. Elsewhere the rest of a cut sequence is still to come.
		hold := err == nil && (s.Terminal == nil || s.reader.Buffered() > 0)

		events, consumed := decodeKeys(data, hold)
		pending = append([]byte(nil), data[consumed:]...)

		for _, ev := range events {
			command := s.Keymap.Command(ev)
			s.logger.Debug("key", "key", ev.String(), "command", command.String())

			switch command {
			case CommandSave:
				s.save(fm, figure)
			case CommandExit:
				return nil
			}
		}

		if errors.Is(err, io.EOF) {
			s.logger.Debug("input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
	}
}

// load loads the figure and reports any failure.
func (s *Session) load(fm *filemanager.FileManager) *types.Figure {
	figure, err := fm.Load()
	switch {
	case err == nil:
		return figure
	case errors.Is(err, filemanager.ErrUnsupportedFormat):
		s.println(MessageUnsupported)
	default:
		s.println(prefixLoadError + filemanager.Message(err))
	}
	return nil
}

// save saves the figure and reports the outcome.
func (s *Session) save(fm *filemanager.FileManager, figure *types.Figure) {
	err := fm.Save(figure)
	switch {
	case err == nil:
		s.println(MessageSaved)
	case errors.Is(err, filemanager.ErrUnsupportedFormat):
		s.println(MessageUnsupported)
	default:
		s.println(prefixSaveError + filemanager.Message(err))
	}
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}
