// =============================================================================
// Textovik - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Textovik CLI application. It
// delegates command execution to the cmd package.
//
// USAGE:
//   textovik                       - Interactive session (F1 saves, Escape exits)
//   textovik convert <src> <dst>   - Convert between .txt, .json, and .xml
//   textovik show <path>           - Print a figure
//   textovik export <src> <x.xlsx> - Write a figure to a workbook
//   textovik version               - Display the application version
//
// ARCHITECTURE:
//   - cmd/      : CLI command definitions (Cobra)
//   - internal/ : Figure model, file manager, console session, config, workbook
//   - pkg/      : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/textovik/cmd"
)

func main() {
	cmd.Execute()
}
