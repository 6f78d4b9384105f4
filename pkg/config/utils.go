package config

import (
	"os"
	"path/filepath"
)

// FindEnvTest returns the path of the nearest file named filename in the
// working directory or any parent. An empty filename means ".env".
func FindEnvTest(filename string) (string, error) {
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
		parent := filepath.Dir(curr)
		if parent == curr {
			return "", os.ErrNotExist
		}
		curr = parent
	}
}
