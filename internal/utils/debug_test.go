package utils

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/splitfare/splitfare/internal/testutil"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	ConfigureDebug(dir)
	t.Cleanup(func() { ConfigureDebug("") })

	names := []string{
		"debug-20240101-100000.log",
		"debug-20240102-100000.log",
		"debug-20240103-100000.log",
		"debug-20240104-100000.log",
		"notes.txt",
	}
	for _, n := range names {
		testutil.WriteFile(t, dir, n, []byte("x"))
	}

	CleanupLogs(2)

	tests := []struct {
		name string
		keep bool
	}{
		{"debug-20240101-100000.log", false},
		{"debug-20240102-100000.log", false},
		{"debug-20240103-100000.log", true},
		{"debug-20240104-100000.log", true},
		{"notes.txt", true},
	}
	for _, tt := range tests {
		if exists := testutil.FileExists(filepath.Join(dir, tt.name)); exists != tt.keep {
			t.Errorf("%s exists = %v, want %v", tt.name, exists, tt.keep)
		}
	}
}

func TestCleanupLogs_NoDirConfigured(t *testing.T) {
	ConfigureDebug("")
	// Must not panic or touch the working directory
	CleanupLogs(1)
}

func TestLogger_NopWithoutDir(t *testing.T) {
	ConfigureDebug("")
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
	Debug("discarded %d", 1)
}

func TestSetDebug(t *testing.T) {
	SetDebug(true)
	if !logLevel.Enabled(zap.DebugLevel) {
		t.Error("debug level should be enabled")
	}
	SetDebug(false)
	if logLevel.Enabled(zap.DebugLevel) {
		t.Error("debug level should be disabled")
	}
}
