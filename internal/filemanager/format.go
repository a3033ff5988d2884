package filemanager

import (
	"path/filepath"
	"strings"
)

// Format identifies the on-disk encoding of a Figure.
type Format int

const (
	// FormatUnsupported is any extension the file manager cannot handle.
	FormatUnsupported Format = iota

	// FormatText is three newline-separated lines: name, width, height.
	FormatText

	// FormatJSON is a single JSON object with name, width and height.
	FormatJSON

	// FormatXML is a <Figure> document with one element per field.
	FormatXML
)

// extensions maps lowercase file extensions to formats.
var extensions = map[string]Format{
	".txt":  FormatText,
	".json": FormatJSON,
	".xml":  FormatXML,
}

// FormatFromPath resolves the format from the file extension of path.
// Matching is case-insensitive, so ".TXT", ".Txt" and ".txt" are equal.
func FormatFromPath(path string) Format {
	if format, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return format
	}
	return FormatUnsupported
}

// String returns the short format name used in logs.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	default:
		return "unsupported"
	}
}

// Extension returns the canonical file extension, or "" for FormatUnsupported.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatJSON:
		return ".json"
	case FormatXML:
		return ".xml"
	default:
		return ""
	}
}

// IsSupported reports whether f can be loaded and saved.
func (f Format) IsSupported() bool {
	return f != FormatUnsupported
}

// SupportedExtensions lists the extensions in a stable order for help text.
func SupportedExtensions() []string {
	return []string{".txt", ".json", ".xml"}
}
