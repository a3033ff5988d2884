// =============================================================================
// Textovik - File Utilities
// =============================================================================
//
// This module provides small file helpers shared by the file manager and the
// CLI commands:
//   - Atomic writes (temporary file + rename)
//   - Temporary file naming
//   - Existence checks
//
// ATOMIC WRITE STRATEGY:
//   - Content is written to a uniquely named temporary file in the same
//     directory as the target, so the final rename never crosses devices
//   - The temporary file is synced and closed before the rename
//   - On any failure the temporary file is removed and the target is left
//     exactly as it was
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultFileMode is used for newly created files.
const DefaultFileMode os.FileMode = 0644

// =============================================================================
// ATOMIC WRITES
// =============================================================================

// WriteFileAtomic writes data to path by way of a temporary sibling file.
//
// PARAMETERS:
//   - path: The destination file.
//   - data: The full file content.
//
// RETURNS:
//   - An error if the temporary file cannot be written or renamed.
//
// NOTE: An existing target keeps its permission bits. New files are created
// with DefaultFileMode.
func WriteFileAtomic(path string, data []byte) error {
	mode := DefaultFileMode
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		mode = info.Mode().Perm()
	}

	tmpPath := filepath.Join(filepath.Dir(path), TempFileName(path))

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	// Remove the temporary file on every failure path below.
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	committed = true
	return nil
}

// TempFileName returns a hidden, unique file name derived from path.
//
// EXAMPLE:
//   path:   "shapes/square.json"
//   output: ".square.json.3f0c9a1e-5b7d-4c41-9d0e-2a6f8e1b7c55.tmp"
func TempFileName(path string) string {
	return fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String())
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
