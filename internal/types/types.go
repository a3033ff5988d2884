// =============================================================================
// Textovik - Shared Types
// =============================================================================
//
// This package contains the data record shared across modules to avoid
// import cycles. Types defined here are used by:
//   - filemanager
//   - console
//   - workbook
//
// =============================================================================

package types

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// =============================================================================
// FIGURE
// =============================================================================

// Figure is the single record the application manipulates.
// No invariants are enforced: Width and Height may be negative and Name may
// be empty.
//
// The struct tags define the on-disk mapping:
//   - JSON: {"name": ..., "width": ..., "height": ...}
//   - XML:  <Figure><Name/><Width/><Height/></Figure>
type Figure struct {
	XMLName xml.Name `json:"-" xml:"Figure"`

	// Name is the display name of the figure.
	Name string `json:"name" xml:"Name"`

	// Width is the horizontal extent of the figure.
	Width float64 `json:"width" xml:"Width"`

	// Height is the vertical extent of the figure.
	Height float64 `json:"height" xml:"Height"`
}

// NewFigure creates a Figure from its three fields.
func NewFigure(name string, width, height float64) *Figure {
	return &Figure{
		Name:   name,
		Width:  width,
		Height: height,
	}
}

// Equal reports whether two figures carry the same field values.
// The XMLName bookkeeping field is ignored.
func (f *Figure) Equal(other *Figure) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Name == other.Name && f.Width == other.Width && f.Height == other.Height
}

// String renders the figure as the console display line.
//
// EXAMPLE:
//   Name: Square, Width: 4, Height: 4
func (f *Figure) String() string {
	if f == nil {
		return "<no figure>"
	}
	return fmt.Sprintf("Name: %s, Width: %s, Height: %s",
		f.Name, FormatNumber(f.Width), FormatNumber(f.Height))
}

// FormatNumber returns the shortest decimal representation of v that parses
// back to the same float64. Integral values carry no fractional part.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseNumber parses a decimal number as written by FormatNumber.
func ParseNumber(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
