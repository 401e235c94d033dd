package config

import (
	"fmt"

	"github.com/google-admin/hover/internal/errors"
)

// CustomSection is a menu section the user added at runtime. The demo app
// turns these back into live sections on startup so additions survive
// restarts.
type CustomSection struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Glyph string `json:"glyph,omitempty"` // Single-character tab label; the UI picks one when empty
	Body  string `json:"body,omitempty"`  // Free-form section content
}

// AddCustomSection appends a section and writes the config to disk. A
// duplicate ID is rejected without touching the file.
func (c *Config) AddCustomSection(sec CustomSection) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sec.ID == "" {
		return errors.ConfigInvalid("custom section with empty ID")
	}
	for _, existing := range c.CustomSections {
		if existing.ID == sec.ID {
			return errors.ConfigInvalid(fmt.Sprintf("duplicate custom section ID: %s", sec.ID))
		}
	}

	c.CustomSections = append(c.CustomSections, sec)
	return c.saveLocked()
}

// RemoveCustomSection removes a section by ID and writes the config to
// disk. Returns false without touching the file when the ID is unknown.
func (c *Config) RemoveCustomSection(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, sec := range c.CustomSections {
		if sec.ID == id {
			c.CustomSections = append(c.CustomSections[:i], c.CustomSections[i+1:]...)
			return true, c.saveLocked()
		}
	}
	return false, nil
}

// GetCustomSections returns a copy of the custom sections slice
func (c *Config) GetCustomSections() []CustomSection {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sections := make([]CustomSection, len(c.CustomSections))
	copy(sections, c.CustomSections)
	return sections
}
