// Package workspace locates the labkit data directory.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

const DirName = ".labkit"

// Find walks up from startDir looking for a .labkit directory.
// Returns "" if not found.
func Find(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, DirName)
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			return candidate, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Init creates dir/.labkit and returns its path.
func Init(dir string) (string, error) {
	path := filepath.Join(dir, DirName)
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	return path, nil
}

// Resolve picks the data directory: explicit wins, then the nearest
// .labkit above cwd, then ~/.labkit.
func Resolve(explicit, cwd, home string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	found, err := Find(cwd)
	if err != nil {
		return "", err
	}
	if found != "" {
		return found, nil
	}
	if home == "" {
		return "", fmt.Errorf("cannot determine home directory; pass --data-dir")
	}
	return filepath.Join(home, DirName), nil
}
