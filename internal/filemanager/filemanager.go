// =============================================================================
// Textovik - File Manager
// =============================================================================
//
// This module resolves a file path to a Format and loads or saves a single
// Figure in that format.
//
// FORMAT DISPATCH:
//   The format is resolved once, when the FileManager is created, from the
//   lowercase extension of the path:
//   - ".txt"  : FormatText
//   - ".json" : FormatJSON
//   - ".xml"  : FormatXML
//   - other   : FormatUnsupported (Load and Save return ErrUnsupportedFormat)
//
// ERROR HANDLING:
//   - Every failure is returned as a *FileError wrapping the cause
//   - Nothing here prints to the console; the caller decides how to report
//   - File handles are closed on every path
//
// =============================================================================

package filemanager

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/ginjaninja78/textovik/internal/types"
	"github.com/ginjaninja78/textovik/pkg/utils"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options contains options for loading and saving.
type Options struct {
	// AtomicSave writes through a temporary file and rename.
	// Default: true
	AtomicSave bool

	// JSONIndent is the JSON indentation string. Empty writes compact JSON.
	// Default: ""
	JSONIndent string

	// XMLIndent is the XML indentation string.
	// Default: "  " (two spaces)
	XMLIndent string

	// IncludeXMLDeclaration writes <?xml ...?> before the document.
	// Default: true
	IncludeXMLDeclaration bool

	// Logger receives diagnostic output. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the default file manager options.
func DefaultOptions() Options {
	return Options{
		AtomicSave:            true,
		JSONIndent:            "",
		XMLIndent:             "  ",
		IncludeXMLDeclaration: true,
	}
}

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager loads and saves a Figure at a fixed path.
type FileManager struct {
	path    string
	format  Format
	codec   Codec
	options Options
	logger  *slog.Logger
}

// New creates a FileManager for path with DefaultOptions.
func New(path string) *FileManager {
	return NewWithOptions(path, DefaultOptions())
}

// NewWithOptions creates a FileManager for path with custom options.
func NewWithOptions(path string, options Options) *FileManager {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	format := FormatFromPath(path)

	return &FileManager{
		path:    path,
		format:  format,
		codec:   CodecFor(format, options),
		options: options,
		logger:  logger.With("path", path, "format", format.String()),
	}
}

// Path returns the managed file path.
func (fm *FileManager) Path() string {
	return fm.path
}

// Format returns the format resolved from the path.
func (fm *FileManager) Format() Format {
	return fm.format
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads the figure from the managed path.
//
// RETURNS:
//   - The decoded figure.
//   - A *FileError wrapping ErrUnsupportedFormat, an I/O error or a parse
//     error. The figure is nil whenever the error is non-nil.
func (fm *FileManager) Load() (*types.Figure, error) {
	if !fm.format.IsSupported() {
		fm.logger.Debug("load rejected")
		return nil, fm.fail("load", ErrUnsupportedFormat)
	}

	file, err := os.Open(fm.path)
	if err != nil {
		return nil, fm.fail("load", err)
	}
	defer file.Close()

	figure, err := fm.codec.Decode(bufio.NewReader(file))
	if err != nil {
		fm.logger.Debug("decode failed", "error", err)
		return nil, fm.fail("load", err)
	}

	fm.logger.Debug("figure loaded", "name", figure.Name)
	return figure, nil
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes figure to the managed path.
//
// PARAMETERS:
//   - figure: The figure to write. Nil returns ErrNoFigure.
//
// RETURNS:
//   - A *FileError on failure. An unsupported format is reported before a
//     missing figure, and nothing is written.
//
// NOTE: With AtomicSave a failed save leaves any previous file untouched.
func (fm *FileManager) Save(figure *types.Figure) error {
	if !fm.format.IsSupported() {
		fm.logger.Debug("save rejected")
		return fm.fail("save", ErrUnsupportedFormat)
	}
	if figure == nil {
		return fm.fail("save", ErrNoFigure)
	}

	var buffer bytes.Buffer
	if err := fm.codec.Encode(&buffer, figure); err != nil {
		return fm.fail("save", err)
	}

	if fm.options.AtomicSave {
		if err := utils.WriteFileAtomic(fm.path, buffer.Bytes()); err != nil {
			return fm.fail("save", err)
		}
	} else {
		if err := os.WriteFile(fm.path, buffer.Bytes(), utils.DefaultFileMode); err != nil {
			return fm.fail("save", err)
		}
	}

	fm.logger.Debug("figure saved", "bytes", buffer.Len(), "atomic", fm.options.AtomicSave)
	return nil
}

// fail wraps err in a FileError for this manager.
func (fm *FileManager) fail(op string, err error) error {
	return &FileError{
		Op:     op,
		Path:   fm.path,
		Format: fm.format,
		Err:    err,
	}
}

// =============================================================================
// CONVENIENCE FUNCTIONS
// =============================================================================

// Load reads a figure from path with DefaultOptions.
func Load(path string) (*types.Figure, error) {
	return New(path).Load()
}

// Save writes figure to path with DefaultOptions.
func Save(figure *types.Figure, path string) error {
	return New(path).Save(figure)
}

// Convert loads a figure from src and saves it to dst, each in the format of
// its own extension.
func Convert(src, dst string, options Options) (*types.Figure, error) {
	figure, err := NewWithOptions(src, options).Load()
	if err != nil {
		return nil, err
	}
	if err := NewWithOptions(dst, options).Save(figure); err != nil {
		return nil, fmt.Errorf("converting %s to %s: %w", src, dst, err)
	}
	return figure, nil
}
