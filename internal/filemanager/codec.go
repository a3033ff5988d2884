// =============================================================================
// Textovik - Figure Codecs
// =============================================================================
//
// Each supported format has a codec that converts between a Figure and a
// byte stream. Codecs never touch the filesystem; the FileManager opens and
// closes files and hands the codec a reader or writer.
//
// FORMATS:
//   Text:
//     Circle
//     5
//     5
//
//   JSON:
//     {"name":"Circle","width":5,"height":5}
//
//   XML:
//     <?xml version="1.0" encoding="UTF-8"?>
//     <Figure>
//       <Name>Circle</Name>
//       <Width>5</Width>
//       <Height>5</Height>
//     </Figure>
//
// =============================================================================

package filemanager

import (
	"bufio"
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/textovik/internal/types"
)

// Codec reads and writes a Figure in a single format.
type Codec interface {
	// Decode reads one figure from r.
	Decode(r io.Reader) (*types.Figure, error)

	// Encode writes figure to w.
	Encode(w io.Writer, figure *types.Figure) error
}

// =============================================================================
// CODEC SELECTION
// =============================================================================

// CodecFor returns the codec for format configured with options, or nil for
// FormatUnsupported.
func CodecFor(format Format, options Options) Codec {
	switch format {
	case FormatText:
		return TextCodec{}
	case FormatJSON:
		return JSONCodec{Indent: options.JSONIndent}
	case FormatXML:
		return XMLCodec{
			Indent:                options.XMLIndent,
			IncludeXMLDeclaration: options.IncludeXMLDeclaration,
		}
	default:
		return nil
	}
}

// =============================================================================
// TEXT
// =============================================================================

// textLineCount is the number of lines a text figure occupies.
const textLineCount = 3

// utf8BOM may prefix files written by some editors.
const utf8BOM = "\ufeff"

// TextCodec handles the three-line text format.
type TextCodec struct{}

// Decode reads name, width and height from the first three lines.
// Both "\n" and "\r\n" line endings are accepted. Lines after the third are
// ignored.
func (TextCodec) Decode(r io.Reader) (*types.Figure, error) {
	scanner := bufio.NewScanner(r)

	lines := make([]string, 0, textLineCount)
	for len(lines) < textLineCount && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read text: %w", err)
	}

	if len(lines) < textLineCount {
		return nil, fmt.Errorf("expected %d lines, got %d", textLineCount, len(lines))
	}

	name := strings.TrimPrefix(lines[0], utf8BOM)

	width, err := types.ParseNumber(strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid width on line 2: %w", err)
	}

	height, err := types.ParseNumber(strings.TrimSpace(lines[2]))
	if err != nil {
		return nil, fmt.Errorf("invalid height on line 3: %w", err)
	}

	return types.NewFigure(name, width, height), nil
}

// Encode writes the three lines, each terminated by "\n".
func (TextCodec) Encode(w io.Writer, figure *types.Figure) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
		figure.Name,
		types.FormatNumber(figure.Width),
		types.FormatNumber(figure.Height))
	return err
}

// =============================================================================
// JSON
// =============================================================================

// JSONCodec handles the JSON object format.
type JSONCodec struct {
	// Indent is the per-level indentation. Empty means compact output.
	Indent string
}

// Decode reads exactly one JSON object. A literal null or trailing data after
// the object is an error.
func (JSONCodec) Decode(r io.Reader) (*types.Figure, error) {
	decoder := json.NewDecoder(r)

	var figure *types.Figure
	if err := decoder.Decode(&figure); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty JSON document")
		}
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if figure == nil {
		return nil, fmt.Errorf("JSON document is null")
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}

	return figure, nil
}

// Encode writes the figure as a single JSON object without a trailing newline.
func (c JSONCodec) Encode(w io.Writer, figure *types.Figure) error {
	var (
		data []byte
		err  error
	)
	if c.Indent == "" {
		data, err = json.Marshal(figure)
	} else {
		data, err = json.MarshalIndent(figure, "", c.Indent)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = w.Write(data)
	return err
}

// =============================================================================
// XML
// =============================================================================

// XMLCodec handles the <Figure> XML document format.
type XMLCodec struct {
	// Indent is the string used for indentation.
	// Empty writes the document on a single line.
	Indent string

	// IncludeXMLDeclaration determines whether to write the XML declaration.
	IncludeXMLDeclaration bool
}

// Decode reads a <Figure> document. Any other root element is an error.
func (XMLCodec) Decode(r io.Reader) (*types.Figure, error) {
	var figure types.Figure
	if err := xml.NewDecoder(r).Decode(&figure); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty XML document")
		}
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	return &figure, nil
}

// Encode writes the document followed by a newline.
func (c XMLCodec) Encode(w io.Writer, figure *types.Figure) error {
	var buffer bytes.Buffer

	if c.IncludeXMLDeclaration {
		buffer.WriteString(xml.Header)
	}

	encoder := xml.NewEncoder(&buffer)
	encoder.Indent("", c.Indent)
	if err := encoder.Encode(figure); err != nil {
		return fmt.Errorf("failed to marshal XML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to marshal XML: %w", err)
	}
	buffer.WriteString("\n")

	_, err := w.Write(buffer.Bytes())
	return err
}
