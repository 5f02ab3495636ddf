// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// PNGHeader is the PNG signature followed by the start of an IHDR chunk.
var PNGHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

// IsolateEnv points every platform config and state directory into a fresh
// temp dir and returns it.
func IsolateEnv(t testing.TB) string {
	t.Helper()
	baseDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(baseDir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(baseDir, "state"))
	t.Setenv("HOME", baseDir)
	t.Setenv("APPDATA", filepath.Join(baseDir, "appdata"))
	return baseDir
}

// WriteFile writes data to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
