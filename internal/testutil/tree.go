package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MakeTree creates the given relative paths under a fresh temporary
// directory and returns its root. Paths ending in "/" become directories,
// everything else becomes a file whose content is its own name. Parent
// directories are created as needed.
func MakeTree(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("failed to create directory %s: %v", p, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create parent of %s: %v", p, err)
		}
		if err := os.WriteFile(full, []byte(filepath.Base(p)), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", p, err)
		}
	}
	return root
}

// Symlink creates a symbolic link at root/name pointing to target, skipping
// the test when the platform refuses to create links.
func Symlink(t *testing.T, root, target, name string) string {
	t.Helper()
	link := filepath.Join(root, name)
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("skipping: symlinks unavailable: %v", err)
	}
	return link
}
