package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google-admin/hover/internal/errors"
	"github.com/google-admin/hover/internal/hover"
)

// Config is the persisted application state: the widget's dock placement
// and section selection (the hover.Store surface) plus the demo app's own
// settings. All accessors are safe for concurrent use. Setters write
// through to disk so a toggle survives even an unclean exit; write failures
// come back as errors for the caller to log.
type Config struct {
	// Widget state. Pointer fields distinguish "never persisted" from a
	// legitimate zero value (dock_side 0 is the left edge).
	DockSide        *int     `json:"dock_side,omitempty"`
	DockPosition    *float64 `json:"dock_position,omitempty"`
	SelectedSection string   `json:"selected_section,omitempty"`

	// App settings.
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "dark", "light")
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification when the widget is dismissed
	IdleCloseEnabled     bool   `json:"idle_close_enabled,omitempty"`    // Close the widget after a long idle spell
	DebugRegions         bool   `json:"debug_regions,omitempty"`         // Tint touch regions on startup

	// Sections the user added at runtime, kept so they survive restarts.
	CustomSections []CustomSection `json:"custom_sections,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".hover"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from its default location, or creates a new one if
// it doesn't exist yet.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at an explicit path. A missing file is not an
// error: it yields a fresh config bound to that path. Unknown JSON fields
// are tolerated so older binaries can read files written by newer ones.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// Ensure slices are initialized (not nil) after unmarshaling. This
	// must happen before Validate() since Validate() only reads.
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized ensures all slices are initialized (not nil). Only
// called during single-threaded initialization, before the Config is
// shared.
func (c *Config) ensureInitialized() {
	if c.CustomSections == nil {
		c.CustomSections = []CustomSection{}
	}
}

// Validate checks that the config is internally consistent.
// This is a read-only operation - call ensureInitialized() first if needed.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.DockSide != nil && (*c.DockSide < 0 || *c.DockSide > 1) {
		return errors.ConfigInvalid(fmt.Sprintf("dock_side %d out of range", *c.DockSide))
	}
	if c.DockPosition != nil && (*c.DockPosition < 0 || *c.DockPosition > 1) {
		return errors.ConfigInvalid(fmt.Sprintf("dock_position %v out of range", *c.DockPosition))
	}

	// Check for duplicate custom section IDs
	seenIDs := make(map[string]bool)
	for _, sec := range c.CustomSections {
		if sec.ID == "" {
			return errors.ConfigInvalid("custom section with empty ID found")
		}
		if seenIDs[sec.ID] {
			return errors.ConfigInvalid(fmt.Sprintf("duplicate custom section ID: %s", sec.ID))
		}
		seenIDs[sec.ID] = true

		if sec.Title == "" {
			return errors.ConfigInvalid(fmt.Sprintf("custom section %s has empty title", sec.ID))
		}
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked()
}

// saveLocked writes the config to disk. Callers must hold the write lock:
// the temp file is shared, so writers cannot overlap. The write goes
// through that temp file and a rename so a crash mid-write never leaves a
// truncated config behind.
func (c *Config) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0700); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	tmp := c.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.Rename(tmp, c.filePath); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file this config reads from and writes to.
func (c *Config) Path() string {
	return c.filePath
}

// GetInt returns the integer setting for key. ok is false when the key has
// never been written.
func (c *Config) GetInt(key string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if key == hover.KeyDockSide && c.DockSide != nil {
		return *c.DockSide, true
	}
	return 0, false
}

// GetFloat returns the float setting for key. ok is false when the key has
// never been written.
func (c *Config) GetFloat(key string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if key == hover.KeyDockPosition && c.DockPosition != nil {
		return *c.DockPosition, true
	}
	return 0, false
}

// GetString returns the string setting for key. ok is false when the key
// has never been written.
func (c *Config) GetString(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if key == hover.KeySelectedSection && c.SelectedSection != "" {
		return c.SelectedSection, true
	}
	return "", false
}

// SetInt stores an integer setting and writes the config to disk.
func (c *Config) SetInt(key string, value int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch key {
	case hover.KeyDockSide:
		v := value
		c.DockSide = &v
	default:
		return errors.E(errors.Op("config.SetInt"), errors.KindConfig, fmt.Sprintf("no integer setting %q", key))
	}
	return c.saveLocked()
}

// SetFloat stores a float setting and writes the config to disk.
func (c *Config) SetFloat(key string, value float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch key {
	case hover.KeyDockPosition:
		v := value
		c.DockPosition = &v
	default:
		return errors.E(errors.Op("config.SetFloat"), errors.KindConfig, fmt.Sprintf("no float setting %q", key))
	}
	return c.saveLocked()
}

// SetString stores a string setting and writes the config to disk.
func (c *Config) SetString(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch key {
	case hover.KeySelectedSection:
		c.SelectedSection = value
	default:
		return errors.E(errors.Op("config.SetString"), errors.KindConfig, fmt.Sprintf("no string setting %q", key))
	}
	return c.saveLocked()
}

// GetTheme returns the current theme name, defaulting to "dark"
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Theme == "" {
		return "dark"
	}
	return c.Theme
}

// SetTheme sets the current theme name and writes the config to disk.
func (c *Config) SetTheme(theme string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
	return c.saveLocked()
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
// and writes the config to disk.
func (c *Config) SetNotificationsEnabled(enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
	return c.saveLocked()
}

// GetIdleCloseEnabled returns whether the widget closes itself after a long
// idle spell.
func (c *Config) GetIdleCloseEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.IdleCloseEnabled
}

// SetIdleCloseEnabled sets the idle-close behavior and writes the config to
// disk.
func (c *Config) SetIdleCloseEnabled(enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.IdleCloseEnabled = enabled
	return c.saveLocked()
}

// GetDebugRegions returns whether touch regions are tinted on startup
func (c *Config) GetDebugRegions() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DebugRegions
}

// SetDebugRegions sets whether touch regions are tinted on startup and
// writes the config to disk.
func (c *Config) SetDebugRegions(enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DebugRegions = enabled
	return c.saveLocked()
}
