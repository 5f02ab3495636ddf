package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/viper"

	"github.com/splitfare/splitfare/internal/booking"
	"github.com/splitfare/splitfare/internal/query"
)

// EnvPrefix prefixes environment overrides, e.g. SPLITFARE_BOOKING_HOST.
const EnvPrefix = "SPLITFARE"

// Settings holds all user-configurable application settings organized by category.
type Settings struct {
	General GeneralSettings `json:"general" mapstructure:"general"`
	Booking BookingSettings `json:"booking" mapstructure:"booking"`
}

// GeneralSettings contains application behavior settings.
type GeneralSettings struct {
	ClipboardMonitor  bool `json:"clipboard_monitor" mapstructure:"clipboard_monitor"`
	Theme             int  `json:"theme" mapstructure:"theme"`
	LogRetentionCount int  `json:"log_retention_count" mapstructure:"log_retention_count"`
	Debug             bool `json:"debug" mapstructure:"debug"`
}

const (
	ThemeAdaptive = 0
	ThemeLight    = 1
	ThemeDark     = 2
)

// BookingSettings describes which links are accepted and where the composed
// query is sent.
type BookingSettings struct {
	Host       string `json:"host" mapstructure:"host"`
	PathPrefix string `json:"path_prefix" mapstructure:"path_prefix"`
	Route      string `json:"route" mapstructure:"route"`
	BaseURL    string `json:"base_url" mapstructure:"base_url"`
}

// Pattern returns the extractor filter configured by b.
func (b BookingSettings) Pattern() booking.Pattern {
	return booking.Pattern{Host: b.Host, PathPrefix: b.PathPrefix}.Normalized()
}

// SettingMeta provides metadata for a single setting (for UI rendering).
type SettingMeta struct {
	Key         string // JSON key name
	Label       string // Human-readable label
	Description string // Help text
	Type        string // "string", "int", "bool"
}

// GetSettingsMetadata returns metadata for all settings organized by category.
func GetSettingsMetadata() map[string][]SettingMeta {
	return map[string][]SettingMeta{
		"General": {
			{Key: "clipboard_monitor", Label: "Clipboard Monitor", Description: "Prefill the form with a booking link found on the clipboard at startup.", Type: "bool"},
			{Key: "theme", Label: "App Theme", Description: "UI Theme (System, Light, Dark).", Type: "int"},
			{Key: "log_retention_count", Label: "Log Retention Count", Description: "Number of recent log files to keep.", Type: "int"},
			{Key: "debug", Label: "Debug Logging", Description: "Write debug entries to the log file.", Type: "bool"},
		},
		"Booking": {
			{Key: "host", Label: "Booking Host", Description: "Domain a booking link must belong to. Subdomains match too.", Type: "string"},
			{Key: "path_prefix", Label: "Booking Path", Description: "Path a booking link must start with.", Type: "string"},
			{Key: "route", Label: "Target Route", Description: "Route that receives the composed query.", Type: "string"},
			{Key: "base_url", Label: "Base URL", Description: "Site prefixed to the target (e.g. https://example.org). Leave empty for a relative target.", Type: "string"},
		},
	}
}

// CategoryOrder returns the order of categories for display.
func CategoryOrder() []string {
	return []string{"General", "Booking"}
}

// DefaultSettings returns a new Settings instance with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		General: GeneralSettings{
			ClipboardMonitor:  true,
			Theme:             ThemeAdaptive,
			LogRetentionCount: 5,
		},
		Booking: BookingSettings{
			Host:       booking.DefaultPattern.Host,
			PathPrefix: booking.DefaultPattern.PathPrefix,
			Route:      query.DefaultRoute,
		},
	}
}

// GetSettingsPath returns the path to the settings JSON file.
func GetSettingsPath() string {
	return filepath.Join(GetConfigDir(), "settings.json")
}

// LoadSettings loads settings from disk. Returns defaults if file doesn't exist.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom reads path over the defaults and applies environment
// overrides. Precedence: env > file > defaults.
func LoadSettingsFrom(path string) (*Settings, error) {
	return loadSettings(path, true)
}

// LoadSettingsFile reads the settings file over the defaults without
// environment overrides. Use it for settings that are saved back to disk.
func LoadSettingsFile() (*Settings, error) {
	return LoadSettingsFileFrom(GetSettingsPath())
}

// LoadSettingsFileFrom is LoadSettingsFile for an explicit path.
func LoadSettingsFileFrom(path string) (*Settings, error) {
	return loadSettings(path, false)
}

func loadSettings(path string, withEnv bool) (*Settings, error) {
	v := viper.New()
	if withEnv {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	d := DefaultSettings()
	v.SetDefault("general.clipboard_monitor", d.General.ClipboardMonitor)
	v.SetDefault("general.theme", d.General.Theme)
	v.SetDefault("general.log_retention_count", d.General.LogRetentionCount)
	v.SetDefault("general.debug", d.General.Debug)
	v.SetDefault("booking.host", d.Booking.Host)
	v.SetDefault("booking.path_prefix", d.Booking.PathPrefix)
	v.SetDefault("booking.route", d.Booking.Route)
	v.SetDefault("booking.base_url", d.Booking.BaseURL)

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}

// SaveSettings saves settings to disk atomically.
func SaveSettings(s *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), s)
}

// SaveSettingsTo writes s to path through a temp file and rename. An
// advisory lock next to the file serializes concurrent writers.
func SaveSettingsTo(path string, s *Settings) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock settings: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	// Atomic write: write to temp file, then rename
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}

// Validate checks ranges that the settings file cannot express.
func (s *Settings) Validate() error {
	if s.General.Theme < ThemeAdaptive || s.General.Theme > ThemeDark {
		return fmt.Errorf("theme must be 0, 1 or 2, got %d", s.General.Theme)
	}
	if s.General.LogRetentionCount < 1 {
		return fmt.Errorf("log_retention_count must be at least 1, got %d", s.General.LogRetentionCount)
	}
	if strings.TrimSpace(s.Booking.Host) == "" {
		return fmt.Errorf("booking host must not be empty")
	}
	if s.Booking.BaseURL != "" {
		if _, err := query.Absolute(s.Booking.BaseURL, "/"); err != nil {
			return err
		}
	}
	return nil
}

// Set assigns a single setting from its string form. key is either
// "category.key" (e.g. "booking.host") or a bare key that is unique across
// categories. s is left unchanged when the value is rejected.
func (s *Settings) Set(key, value string) error {
	full, meta, err := resolveKey(key)
	if err != nil {
		return err
	}

	var (
		b bool
		n int
	)
	switch meta.Type {
	case "bool":
		if b, err = strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%s: expected true or false, got %q", full, value)
		}
	case "int":
		if n, err = strconv.Atoi(value); err != nil {
			return fmt.Errorf("%s: expected a number, got %q", full, value)
		}
	}

	next := *s
	switch full {
	case "general.clipboard_monitor":
		next.General.ClipboardMonitor = b
	case "general.theme":
		next.General.Theme = n
	case "general.log_retention_count":
		next.General.LogRetentionCount = n
	case "general.debug":
		next.General.Debug = b
	case "booking.host":
		next.Booking.Host = value
	case "booking.path_prefix":
		next.Booking.PathPrefix = value
	case "booking.route":
		next.Booking.Route = value
	case "booking.base_url":
		next.Booking.BaseURL = value
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

// Get returns the string form of a single setting.
func (s *Settings) Get(key string) (string, error) {
	full, _, err := resolveKey(key)
	if err != nil {
		return "", err
	}
	switch full {
	case "general.clipboard_monitor":
		return strconv.FormatBool(s.General.ClipboardMonitor), nil
	case "general.theme":
		return strconv.Itoa(s.General.Theme), nil
	case "general.log_retention_count":
		return strconv.Itoa(s.General.LogRetentionCount), nil
	case "general.debug":
		return strconv.FormatBool(s.General.Debug), nil
	case "booking.host":
		return s.Booking.Host, nil
	case "booking.path_prefix":
		return s.Booking.PathPrefix, nil
	case "booking.route":
		return s.Booking.Route, nil
	default:
		return s.Booking.BaseURL, nil
	}
}

func resolveKey(key string) (string, SettingMeta, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	category, name, qualified := strings.Cut(key, ".")
	if !qualified {
		name = category
		category = ""
	}

	var (
		found     []string
		foundMeta SettingMeta
	)
	metadata := GetSettingsMetadata()
	for _, cat := range CategoryOrder() {
		if category != "" && strings.ToLower(cat) != category {
			continue
		}
		for _, m := range metadata[cat] {
			if m.Key == name {
				found = append(found, strings.ToLower(cat)+"."+m.Key)
				foundMeta = m
			}
		}
	}

	switch len(found) {
	case 0:
		return "", SettingMeta{}, fmt.Errorf("unknown setting %q", key)
	case 1:
		return found[0], foundMeta, nil
	default:
		return "", SettingMeta{}, fmt.Errorf("ambiguous setting %q: use one of %s", key, strings.Join(found, ", "))
	}
}
