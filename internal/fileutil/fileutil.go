// Package fileutil holds the file modes and directory helpers used when
// writing generated documentation.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// OwnerReadWrite is the file permission mode for files that only the
// invoking user should read, such as captured validation reports.
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for generated pages and source
// files intended to be read by the site build and other users.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the mode for directories created for generated files.
const DirReadableByAll os.FileMode = 0o755

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, DirReadableByAll); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// EnsureParent creates the parent directory of path.
func EnsureParent(path string) error {
	return EnsureDir(filepath.Dir(path))
}

// WriteFile creates the parent directory of path and writes data with mode.
func WriteFile(path string, data []byte, mode os.FileMode) error {
	if err := EnsureParent(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, mode)
}
