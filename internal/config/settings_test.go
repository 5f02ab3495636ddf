package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitfare/splitfare/internal/booking"
	"github.com/splitfare/splitfare/internal/testutil"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.General.ClipboardMonitor)
	assert.Equal(t, ThemeAdaptive, s.General.Theme)
	assert.Equal(t, 5, s.General.LogRetentionCount)
	assert.Equal(t, "bahn.de", s.Booking.Host)
	assert.Equal(t, "/buchung/start", s.Booking.PathPrefix)
	assert.Equal(t, "discount", s.Booking.Route)
	assert.Empty(t, s.Booking.BaseURL)
	assert.NoError(t, s.Validate())
	assert.Equal(t, booking.DefaultPattern, s.Booking.Pattern())
}

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	testutil.IsolateEnv(t)

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveAndLoadSettings(t *testing.T) {
	testutil.IsolateEnv(t)

	s := DefaultSettings()
	s.General.Theme = ThemeDark
	s.Booking.Host = "example.org"
	s.Booking.BaseURL = "https://splitfare.example"
	require.NoError(t, SaveSettings(s))

	_, err := os.Stat(GetSettingsPath())
	require.NoError(t, err)
	_, err = os.Stat(GetSettingsPath() + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"booking":{"route":"split"}}`), 0o644))

	s, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "split", s.Booking.Route)
	assert.Equal(t, "bahn.de", s.Booking.Host)
	assert.Equal(t, 5, s.General.LogRetentionCount)
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"booking":{"host":"example.org"},"general":{"clipboard_monitor":true}}`), 0o644))

	t.Setenv("SPLITFARE_BOOKING_HOST", "example.net")
	t.Setenv("SPLITFARE_GENERAL_CLIPBOARD_MONITOR", "false")

	s, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "example.net", s.Booking.Host)
	assert.False(t, s.General.ClipboardMonitor)
}

func TestLoadSettingsFile_IgnoresEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"booking":{"host":"example.org"}}`), 0o644))

	t.Setenv("SPLITFARE_BOOKING_HOST", "example.net")
	t.Setenv("SPLITFARE_GENERAL_DEBUG", "true")

	s, err := LoadSettingsFileFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "example.org", s.Booking.Host)
	assert.False(t, s.General.Debug)
	assert.Equal(t, "/buchung/start", s.Booking.PathPrefix)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := LoadSettingsFrom(path)
	assert.Error(t, err)
}

func TestSettings_SetAndGet(t *testing.T) {
	s := DefaultSettings()

	require.NoError(t, s.Set("booking.host", "example.org"))
	assert.Equal(t, "example.org", s.Booking.Host)

	require.NoError(t, s.Set("theme", "2"))
	assert.Equal(t, ThemeDark, s.General.Theme)

	require.NoError(t, s.Set("General.Clipboard_Monitor", "false"))
	assert.False(t, s.General.ClipboardMonitor)

	got, err := s.Get("path_prefix")
	require.NoError(t, err)
	assert.Equal(t, "/buchung/start", got)

	got, err = s.Get("general.theme")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestSettings_SetErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "nope", "1"},
		{"wrong category", "general.host", "x"},
		{"bad bool", "debug", "maybe"},
		{"bad int", "theme", "dark"},
		{"theme out of range", "theme", "7"},
		{"retention zero", "log_retention_count", "0"},
		{"empty host", "host", " "},
		{"relative base", "base_url", "splitfare.example"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			if err := s.Set(tt.key, tt.value); err == nil {
				t.Errorf("Set(%q, %q) succeeded, want error", tt.key, tt.value)
			}
			assert.Equal(t, DefaultSettings(), s, "settings changed after a rejected value")
		})
	}
}

func TestGetSettingsMetadata_CoversCategories(t *testing.T) {
	meta := GetSettingsMetadata()
	for _, cat := range CategoryOrder() {
		entries, ok := meta[cat]
		require.True(t, ok, "missing category %s", cat)
		for _, m := range entries {
			assert.NotEmpty(t, m.Label)
			assert.Contains(t, []string{"string", "int", "bool"}, m.Type)

			_, err := DefaultSettings().Get(m.Key)
			assert.NoError(t, err, "key %s should resolve", m.Key)
		}
	}
}
