// =============================================================================
// Textovik - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Run without a
// subcommand, textovik starts the interactive session: it asks for a file
// path, prints the figure, and waits for the save or exit key.
//
// COBRA CLI STRUCTURE:
//   rootCmd (textovik)
//   ├── convertCmd (textovik convert)
//   ├── showCmd    (textovik show)
//   ├── exportCmd  (textovik export)
//   └── versionCmd (textovik version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the optional YAML configuration
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/textovik/internal/config"
	"github.com/ginjaninja78/textovik/internal/console"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "textovik",
	Short: "Textovik - View and re-save figure files in text, JSON, or XML",
	Long: `Textovik loads a figure (a name, a width, and a height) from a .txt,
.json, or .xml file, prints it, and can write it back in the same format.

Interactive Session:
  textovik                 # Prompt for a path, then F1 saves and Escape exits

Other Commands:
  textovik convert a.txt b.xml    # Load one format and save another
  textovik show shape.json        # Print the figure line and exit
  textovik export shape.xml s.xlsx # Write the figure to a workbook`,

	// SilenceUsage keeps load and save failures from printing the usage text.
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	// A missing file means the built-in defaults.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	// --verbose flag: Enables debug logging on stderr.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// INTERACTIVE SESSION
// =============================================================================

// runSession wires the configuration into a console session over the
// command's standard streams and runs it.
func runSession(cmd *cobra.Command) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}

	keymap, err := console.NewKeymap(env.config.Keys.Save, env.config.Keys.Exit)
	if err != nil {
		return fmt.Errorf("invalid key bindings in %s: %w", cfgFile, err)
	}

	session := console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout())
	session.Keymap = keymap
	session.Options = env.options
	session.Logger = env.logger

	// Raw mode applies only when the session reads the process's own stdin.
	if in, ok := cmd.InOrStdin().(*os.File); ok {
		if terminal := console.NewTerminal(in); terminal != nil {
			session.Terminal = terminal
		}
	}

	return session.Run()
}
