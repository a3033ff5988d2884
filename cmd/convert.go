// =============================================================================
// Textovik - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which loads a figure in the
// format of one file and saves it in the format of another.
//
// COMMAND USAGE:
//   textovik convert <src> <dst> [flags]
//
// FLAGS:
//   --force, -f : Overwrite dst if it already exists
//
// EXAMPLES:
//   textovik convert shape.txt shape.xml
//   textovik convert shape.json shape.txt --force
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/textovik/internal/filemanager"
	"github.com/ginjaninja78/textovik/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// force allows convert and export to replace an existing destination.
var force bool

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert <src> <dst>",
	Short: "Convert a figure file to another format",
	Long: `The convert command loads the figure from src using the format of its
extension and saves it to dst using the format of dst's extension.

Supported extensions: .txt, .json, .xml

The destination is not replaced unless --force is given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], args[1])
	},
}

// init registers the convert command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVarP(
		&force,
		"force",
		"f",
		false,
		"Overwrite the destination file if it exists",
	)
}

// runConvert performs one conversion and prints the converted figure.
func runConvert(cmd *cobra.Command, src, dst string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}

	if err := checkDestination(dst); err != nil {
		return err
	}

	figure, err := filemanager.Convert(src, dst, env.options)
	if err != nil {
		return err
	}

	env.logger.Info("Converted figure",
		"src", src,
		"dst", dst,
		"format", filemanager.FormatFromPath(dst).String())
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %s\n", src, dst, figure)
	return nil
}

// checkDestination refuses to replace an existing file unless --force is set.
func checkDestination(dst string) error {
	if !force && utils.FileExists(dst) {
		return fmt.Errorf("destination %s already exists (use --force to overwrite)", dst)
	}
	return nil
}
