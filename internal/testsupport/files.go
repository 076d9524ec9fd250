// Package testsupport provides helpers for building .editorconfig
// directory trees in tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates path with the given content, making parent
// directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteConfig places a .editorconfig with the given content into dir.
func WriteConfig(t testing.TB, dir, content string) {
	t.Helper()
	WriteFile(t, filepath.Join(dir, ".editorconfig"), content)
}

// Tree materializes a directory tree under a fresh temp root. Keys are
// slash-separated relative paths, values are file contents. The root
// directory is returned.
func Tree(t testing.TB, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		WriteFile(t, filepath.Join(root, filepath.FromSlash(rel)), content)
	}
	return root
}
