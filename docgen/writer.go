package docgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/partnerdocs/oasdocs/internal/fileutil"
	"github.com/partnerdocs/oasdocs/internal/pathutil"
	"github.com/partnerdocs/oasdocs/oaserrors"
)

// WriteFiles writes the site below outputDir and the lookup table to
// mappingsPath. An empty mappingsPath skips the lookup table. Directories
// are created as needed; with Clean set, outputDir is removed first and
// must lie strictly below CleanRoot. The first failure stops the write.
func (r *GenerateResult) WriteFiles(outputDir, mappingsPath string) error {
	if r.Clean {
		if err := cleanDir(outputDir, r.CleanRoot); err != nil {
			return err
		}
	}
	if err := fileutil.EnsureDir(outputDir); err != nil {
		return &oaserrors.WriteError{Path: outputDir, Op: "mkdir", Cause: err}
	}

	for _, file := range r.Files {
		name := filepath.FromSlash(file.Name)
		if !filepath.IsLocal(name) {
			return &oaserrors.WriteError{Path: file.Name, Op: "write", Cause: fmt.Errorf("file name must stay inside the output directory")}
		}
		if err := file.WriteFile(filepath.Join(outputDir, name)); err != nil {
			return err
		}
	}

	if mappingsPath != "" {
		if err := r.Mappings.WriteFile(mappingsPath); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes a single generated file to the specified path.
func (f *GeneratedFile) WriteFile(path string) error {
	if err := fileutil.WriteFile(path, f.Content, fileutil.ReadableByAll); err != nil {
		return &oaserrors.WriteError{Path: path, Op: "write", Cause: err}
	}
	return nil
}

// cleanDir removes dir, which must lie strictly below root. An empty root
// means the working directory. A dir that does not exist is left alone.
func cleanDir(dir, root string) error {
	if dir == "" {
		return &oaserrors.ConfigError{Option: "clean", Message: "output directory is empty"}
	}
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return &oaserrors.WriteError{Path: dir, Op: "clean", Cause: err}
		}
		root = wd
	}
	if _, err := os.Lstat(dir); os.IsNotExist(err) {
		return nil
	}
	below, err := pathutil.StrictlyBelow(root, dir)
	if err != nil {
		return &oaserrors.WriteError{Path: dir, Op: "clean", Cause: err}
	}
	if !below {
		return &oaserrors.ConfigError{Option: "clean", Value: dir, Message: "refusing to remove a directory that is not inside " + root}
	}
	if err := os.RemoveAll(dir); err != nil {
		return &oaserrors.WriteError{Path: dir, Op: "clean", Cause: err}
	}
	return nil
}
