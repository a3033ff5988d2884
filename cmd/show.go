// =============================================================================
// Textovik - Show Command
// =============================================================================
//
// This file defines the 'show' command, which prints the figure stored in a
// file without starting the interactive session.
//
// COMMAND USAGE:
//   textovik show <path>
//
// OUTPUT:
//   Name: Square, Width: 4, Height: 4
//
// Workbooks written by 'export' (.xlsx) can be shown as well.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/textovik/internal/filemanager"
	"github.com/ginjaninja78/textovik/internal/types"
	"github.com/ginjaninja78/textovik/internal/workbook"
)

// showCmd represents the 'show' command.
var showCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Print the figure stored in a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}

		figure, err := loadFigure(args[0], env.options)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), figure.String())
		return nil
	},
}

// init registers the show command with the root command.
func init() {
	rootCmd.AddCommand(showCmd)
}

// loadFigure reads a figure from any file textovik understands: the three
// file manager formats plus exported workbooks.
func loadFigure(path string, options filemanager.Options) (*types.Figure, error) {
	if isWorkbook(path) {
		return workbook.Import(path)
	}
	return filemanager.NewWithOptions(path, options).Load()
}

// isWorkbook reports whether path names an XLSX workbook.
func isWorkbook(path string) bool {
	return strings.EqualFold(filepath.Ext(path), workbook.Extension)
}
