// =============================================================================
// Textovik - Export Command
// =============================================================================
//
// This file defines the 'export' command, which writes a figure to an XLSX
// workbook so that it can be opened in a spreadsheet.
//
// COMMAND USAGE:
//   textovik export <src> <dst.xlsx> [flags]
//
// FLAGS:
//   --force, -f : Overwrite dst if it already exists
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/textovik/internal/workbook"
)

// exportCmd represents the 'export' command.
var exportCmd = &cobra.Command{
	Use:   "export <src> <dst.xlsx>",
	Short: "Export a figure to an XLSX workbook",
	Long: `The export command loads the figure from src (.txt, .json, or .xml) and
writes it to a workbook with a single "Figure" sheet:

  | Name   | Width | Height |
  | Square | 4     | 4      |`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, args[0], args[1])
	},
}

// init registers the export command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVarP(
		&force,
		"force",
		"f",
		false,
		"Overwrite the destination file if it exists",
	)
}

// runExport loads src and writes it to the workbook at dst.
func runExport(cmd *cobra.Command, src, dst string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}

	if !isWorkbook(dst) {
		return fmt.Errorf("export destination %s must end in %s", dst, workbook.Extension)
	}
	if err := checkDestination(dst); err != nil {
		return err
	}

	figure, err := loadFigure(src, env.options)
	if err != nil {
		return err
	}

	if err := workbook.Export(figure, dst); err != nil {
		return fmt.Errorf("failed to export %s: %w", dst, err)
	}

	env.logger.Info("Exported figure", "src", src, "dst", dst, "sheet", workbook.SheetName)
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %s\n", src, dst, figure)
	return nil
}
