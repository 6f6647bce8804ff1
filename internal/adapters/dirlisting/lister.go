package dirlisting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dalia-sh/dalia/internal/core/ports"
)

// OSDirectoryLister implements the DirectoryLister interface using the
// local file system.
type OSDirectoryLister struct{}

// NewOSDirectoryLister creates a new OSDirectoryLister.
func NewOSDirectoryLister() ports.DirectoryLister {
	return &OSDirectoryLister{}
}

// ListSubdirectories returns the names of the immediate child directories
// of path. A leading tilde is resolved against the current user's home
// directory for the listing only; generated alias paths keep the tilde.
func (l *OSDirectoryLister) ListSubdirectories(path string) ([]string, error) {
	resolved, err := resolveTilde(path)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// resolveTilde substitutes a leading "~" with the user's home directory.
func resolveTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory for %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
