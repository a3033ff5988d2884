package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/textovik/internal/config"
	"github.com/ginjaninja78/textovik/internal/filemanager"
)

// environment holds what every command needs after the flags are parsed.
type environment struct {
	config  *config.Config
	logger  *slog.Logger
	options filemanager.Options
}

// setup loads the configuration named by --config and builds the logger and
// file manager options from it. Logs go to the command's stderr.
func setup(cmd *cobra.Command) (*environment, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.Level(verbose),
	}))

	if cfg.Source != "" {
		logger.Debug("Loaded configuration", "path", cfg.Source)
	} else {
		logger.Debug("Using default configuration", "path", cfgFile)
	}

	return &environment{
		config:  cfg,
		logger:  logger,
		options: fileOptions(cfg, logger),
	}, nil
}

// fileOptions maps the output settings onto file manager options.
func fileOptions(cfg *config.Config, logger *slog.Logger) filemanager.Options {
	options := filemanager.DefaultOptions()
	options.AtomicSave = cfg.Output.AtomicSave
	options.JSONIndent = cfg.Output.JSONIndent
	options.XMLIndent = cfg.Output.XMLIndent
	options.IncludeXMLDeclaration = cfg.Output.XMLDeclaration
	options.Logger = logger
	return options
}
