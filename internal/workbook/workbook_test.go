package workbook

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/textovik/internal/types"
)

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.xlsx")
	original := types.NewFigure("Trapezoid", 12.75, -3)

	if err := Export(original, path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	figure, err := Import(path)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !figure.Equal(original) {
		t.Errorf("Expected %v, got %v", original, figure)
	}
}

func TestExportLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.XLSX")

	if err := Export(types.NewFigure("Square", 4, 4), path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	if f.GetSheetName(0) != SheetName {
		t.Errorf("Expected first sheet %q, got %q", SheetName, f.GetSheetName(0))
	}

	expected := map[string]string{
		"A1": "Name", "B1": "Width", "C1": "Height",
		"A2": "Square", "B2": "4", "C2": "4",
	}
	for cell, value := range expected {
		got, err := f.GetCellValue(SheetName, cell)
		if err != nil {
			t.Fatalf("GetCellValue %s failed: %v", cell, err)
		}
		if got != value {
			t.Errorf("Cell %s: expected %q, got %q", cell, value, got)
		}
	}
}

func TestImportFallsBackToFirstSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.xlsx")

	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "A2", "Star")
	f.SetCellValue("Sheet1", "B2", 1.5)
	f.SetCellValue("Sheet1", "C2", 2)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	f.Close()

	figure, err := Import(path)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !figure.Equal(types.NewFigure("Star", 1.5, 2)) {
		t.Errorf("Unexpected figure %v", figure)
	}
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()

	headerOnly := filepath.Join(dir, "header.xlsx")
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "Name")
	f.SaveAs(headerOnly)
	f.Close()

	badNumber := filepath.Join(dir, "bad.xlsx")
	f = excelize.NewFile()
	f.SetCellValue("Sheet1", "A2", "Star")
	f.SetCellValue("Sheet1", "B2", "wide")
	f.SetCellValue("Sheet1", "C2", 2)
	f.SaveAs(badNumber)
	f.Close()

	for _, path := range []string{
		headerOnly,
		badNumber,
		filepath.Join(dir, "missing.xlsx"),
		filepath.Join(dir, "shape.csv"),
	} {
		if _, err := Import(path); err == nil {
			t.Errorf("Expected error importing %s", filepath.Base(path))
		}
	}
}

func TestExportRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	if err := Export(types.NewFigure("Square", 4, 4), filepath.Join(dir, "shape.json")); err == nil {
		t.Error("Expected error for non-xlsx path")
	}
	if err := Export(nil, filepath.Join(dir, "shape.xlsx")); err == nil {
		t.Error("Expected error for nil figure")
	}
}
