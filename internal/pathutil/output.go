package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// JoinBelow places the relative path p under root and returns the absolute
// result. p must be local in the filepath.IsLocal sense. When the joined
// path already exists, its final element must not be a symlink.
func JoinBelow(root, p string) (string, error) {
	local := filepath.FromSlash(p)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("pathutil: %q must be relative and stay inside %s", p, root)
	}
	abs, err := filepath.Abs(filepath.Join(root, local))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
		}
	case os.IsNotExist(err):
	default:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}
	return abs, nil
}

// StrictlyBelow reports whether the existing path dir lies inside root and
// is not root itself. Both are made absolute and have their symlinks
// resolved first, so a link cannot smuggle dir out of root.
func StrictlyBelow(root, dir string) (bool, error) {
	base, err := resolve(root)
	if err != nil {
		return false, err
	}
	target, err := resolve(dir)
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false, nil
	}
	return rel != "." && filepath.IsLocal(rel), nil
}

func resolve(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
