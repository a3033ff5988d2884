// =============================================================================
// Textovik - Workbook Export
// =============================================================================
//
// This module writes a Figure to an XLSX workbook for spreadsheet users and
// reads it back.
//
// WORKBOOK STRUCTURE:
//   | Column A | Column B | Column C |
//   |----------|----------|----------|
//   | Name     | Width    | Height   |   <- header row (bold)
//   | Square   | 4        | 4        |   <- data row
//
//   The sheet is named "Figure". When reading, a workbook without a "Figure"
//   sheet falls back to its first sheet.
//
// =============================================================================

package workbook

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/textovik/internal/types"
	"github.com/ginjaninja78/textovik/pkg/utils"
)

// SheetName is the worksheet holding the figure.
const SheetName = "Figure"

// Extension is the only file extension accepted for workbooks.
const Extension = ".xlsx"

// headers are the column titles of row 1.
var headers = []string{"Name", "Width", "Height"}

// =============================================================================
// EXPORT
// =============================================================================

// Export writes figure to a new workbook at path, replacing any existing file.
//
// PARAMETERS:
//   - figure: The figure to write.
//   - path: The destination; must end in ".xlsx".
//
// RETURNS:
//   - An error if the path is not an XLSX path or the workbook cannot be
//     written.
func Export(figure *types.Figure, path string) error {
	if figure == nil {
		return fmt.Errorf("no figure to export")
	}
	if err := checkExtension(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}

	values := []interface{}{figure.Name, figure.Width, figure.Height}
	for i, value := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "C1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "A", 24); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to render workbook: %w", err)
	}

	return utils.WriteFileAtomic(path, buffer.Bytes())
}

// =============================================================================
// IMPORT
// =============================================================================

// Import reads the figure from row 2 of a workbook written by Export.
func Import(path string) (*types.Figure, error) {
	if err := checkExtension(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := SheetName
	if index, err := f.GetSheetIndex(SheetName); err != nil || index < 0 {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 || len(rows[1]) < len(headers) {
		return nil, fmt.Errorf("sheet %q has no figure row", sheet)
	}

	row := rows[1]

	width, err := types.ParseNumber(strings.TrimSpace(row[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid width in B2: %w", err)
	}
	height, err := types.ParseNumber(strings.TrimSpace(row[2]))
	if err != nil {
		return nil, fmt.Errorf("invalid height in C2: %w", err)
	}

	return types.NewFigure(row[0], width, height), nil
}

// checkExtension rejects paths that are not XLSX files.
func checkExtension(path string) error {
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		return fmt.Errorf("workbook path %s must end in %s", path, Extension)
	}
	return nil
}
