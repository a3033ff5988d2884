// =============================================================================
// Textovik - Configuration Module
// =============================================================================
//
// This module loads the optional application configuration file. Every
// setting has a default, so a missing file simply means "use defaults".
//
// EXAMPLE (textovik.yaml):
//   log_level: info
//   keys:
//     save: f1
//     exit: esc
//   output:
//     atomic_save: true
//     json_indent: ""
//     xml_indent: "  "
//     xml_declaration: true
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file used when --config is not given.
const DefaultPath = "textovik.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// LogLevel controls the verbosity of diagnostic logging on stderr.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Keys binds the interactive session commands to keys.
	Keys KeySettings `yaml:"keys"`

	// Output contains settings for writing figure files.
	Output OutputSettings `yaml:"output"`

	// Source is the file the configuration was read from.
	// Empty when defaults were used.
	Source string `yaml:"-"`
}

// KeySettings binds session commands to key names.
//
// Key names are case-insensitive: "f1" to "f12", "esc", "enter", "tab",
// "space", "backspace", or a single printable character such as "s".
type KeySettings struct {
	// Save writes the loaded figure back to its file.
	// Default: "f1"
	Save string `yaml:"save"`

	// Exit ends the session.
	// Default: "esc"
	Exit string `yaml:"exit"`
}

// OutputSettings contains settings for saving figures.
type OutputSettings struct {
	// AtomicSave writes through a temporary file and rename.
	// Default: true
	AtomicSave bool `yaml:"atomic_save"`

	// JSONIndent is the JSON indentation. Empty writes compact JSON.
	// Default: ""
	JSONIndent string `yaml:"json_indent"`

	// XMLIndent is the XML indentation. Empty writes a single line.
	// Default: "  "
	XMLIndent string `yaml:"xml_indent"`

	// XMLDeclaration writes <?xml ...?> before the document.
	// Default: true
	XMLDeclaration bool `yaml:"xml_declaration"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Keys: KeySettings{
			Save: "f1",
			Exit: "esc",
		},
		Output: OutputSettings{
			AtomicSave:     true,
			JSONIndent:     "",
			XMLIndent:      "  ",
			XMLDeclaration: true,
		},
	}
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the Config struct. Keys absent from the file keep their
//     default values. A missing file yields Default().
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal onto the defaults so that only keys present in the file
	// override them.
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.Source = configPath

	applyDefaults(config)

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyDefaults fills settings that were explicitly set to empty values.
func applyDefaults(config *Config) {
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.Keys.Save == "" {
		config.Keys.Save = "f1"
	}
	if config.Keys.Exit == "" {
		config.Keys.Exit = "esc"
	}
}

// validate checks values that cannot be defaulted.
func validate(config *Config) error {
	if _, err := ParseLevel(config.LogLevel); err != nil {
		return err
	}

	if strings.EqualFold(config.Keys.Save, config.Keys.Exit) {
		return fmt.Errorf("save and exit keys must differ (both %q)", config.Keys.Save)
	}

	return nil
}

// =============================================================================
// LOGGING
// =============================================================================

// ParseLevel converts a log level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Level returns the configured log level, or slog.LevelDebug when verbose is
// set.
func (c *Config) Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	level, _ := ParseLevel(c.LogLevel)
	return level
}
