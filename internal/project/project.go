// Package project locates the directory that holds a .schedtrack.yaml file.
package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/senna-lang/schedtrack/pkg/config"
)

// ErrNoConfig is returned when no .schedtrack.yaml can be found by walking
// up the directory tree.
var ErrNoConfig = errors.New("no " + config.FileName + " found")

// FindRoot walks up the directory tree from the current working directory
// until it finds a directory containing .schedtrack.yaml, then returns that
// directory. Returns ErrNoConfig if not found.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom is like FindRoot but starts the walk at dir instead of the
// working directory. dir itself is checked first.
func FindRootFrom(dir string) (string, error) {
	current := filepath.Clean(dir)
	for {
		candidate := config.ConfigPath(current)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNoConfig
		}
		current = parent
	}
}
