package config

import (
	"os"
	"path/filepath"
)

// FindEnv searches the working directory and its parents for filename.
// If filename is empty, it searches for .env
//
// The walk stops at the first directory holding a go.mod, so a file outside
// the module is never picked up. Without a go.mod it goes up to the
// filesystem root.
func FindEnv(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	curr, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(curr, filename)
		if _, err = os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if isModuleRoot(curr) {
			break
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			break
		}
		curr = parent
	}
	return "", os.ErrNotExist
}

func isModuleRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "go.mod"))
	return err == nil && !info.IsDir()
}
