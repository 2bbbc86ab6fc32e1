package cli

import (
	"fmt"
	"os"
	"path/filepath"
)

// cacheDir returns the honeylat cache directory under the user cache root.
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("user cache dir: %w", err)
	}
	return filepath.Join(base, "honeylat"), nil
}
