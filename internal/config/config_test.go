package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textovik.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	config := Default()

	if config.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got '%s'", config.LogLevel)
	}
	if config.Keys.Save != "f1" {
		t.Errorf("Expected default save key 'f1', got '%s'", config.Keys.Save)
	}
	if config.Keys.Exit != "esc" {
		t.Errorf("Expected default exit key 'esc', got '%s'", config.Keys.Exit)
	}
	if !config.Output.AtomicSave {
		t.Error("Expected atomic save to be enabled by default")
	}
	if config.Output.JSONIndent != "" {
		t.Errorf("Expected compact JSON by default, got indent %q", config.Output.JSONIndent)
	}
	if config.Output.XMLIndent != "  " {
		t.Errorf("Expected two-space XML indent, got %q", config.Output.XMLIndent)
	}
	if !config.Output.XMLDeclaration {
		t.Error("Expected XML declaration by default")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if config.Source != "" {
		t.Errorf("Expected empty source, got %s", config.Source)
	}
	if config.Keys.Save != "f1" {
		t.Errorf("Expected default save key, got %s", config.Keys.Save)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
keys:
  save: s
output:
  atomic_save: false
  xml_indent: "    "
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Source != path {
		t.Errorf("Expected source %s, got %s", path, config.Source)
	}
	if config.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", config.LogLevel)
	}
	if config.Keys.Save != "s" {
		t.Errorf("Expected save key 's', got '%s'", config.Keys.Save)
	}
	// Untouched keys keep their defaults.
	if config.Keys.Exit != "esc" {
		t.Errorf("Expected exit key to stay 'esc', got '%s'", config.Keys.Exit)
	}
	if config.Output.AtomicSave {
		t.Error("Expected atomic save to be disabled")
	}
	if config.Output.XMLIndent != "    " {
		t.Errorf("Expected four-space indent, got %q", config.Output.XMLIndent)
	}
	if !config.Output.XMLDeclaration {
		t.Error("Expected XML declaration to keep its default")
	}
}

func TestLoadEmptyValuesFallBack(t *testing.T) {
	path := writeConfig(t, "log_level: \"\"\nkeys:\n  save: \"\"\n")

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.LogLevel != "info" || config.Keys.Save != "f1" {
		t.Errorf("Expected defaults for empty values, got %+v", config)
	}
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errPart string
	}{
		{"bad yaml", "keys: [", "parse"},
		{"bad level", "log_level: loud", "log level"},
		{"same keys", "keys:\n  save: ESC\n  exit: esc\n", "must differ"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("Expected error containing %q, got %v", tc.errPart, err)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	testCases := []struct {
		logLevel string
		verbose  bool
		expected slog.Level
	}{
		{"info", false, slog.LevelInfo},
		{"info", true, slog.LevelDebug},
		{"WARN", false, slog.LevelWarn},
		{"error", false, slog.LevelError},
		{"debug", false, slog.LevelDebug},
	}

	for _, tc := range testCases {
		config := &Config{LogLevel: tc.logLevel}
		if result := config.Level(tc.verbose); result != tc.expected {
			t.Errorf("For %s (verbose=%v), expected %v, got %v", tc.logLevel, tc.verbose, tc.expected, result)
		}
	}
}
