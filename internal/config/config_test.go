package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google-admin/hover/internal/errors"
	"github.com/google-admin/hover/internal/hover"
)

var _ hover.Store = (*Config)(nil)

func TestLoadFrom_NewConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadFrom() returned nil config")
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
	if cfg.CustomSections == nil {
		t.Error("CustomSections should be initialized")
	}

	// A fresh config has no persisted widget state
	if _, ok := cfg.GetInt(hover.KeyDockSide); ok {
		t.Error("GetInt should report absence on a fresh config")
	}
	if _, ok := cfg.GetFloat(hover.KeyDockPosition); ok {
		t.Error("GetFloat should report absence on a fresh config")
	}
	if _, ok := cfg.GetString(hover.KeySelectedSection); ok {
		t.Error("GetString should report absence on a fresh config")
	}
	if got := cfg.GetTheme(); got != "dark" {
		t.Errorf("GetTheme() = %q, want default %q", got, "dark")
	}
}

func TestLoadFrom_ExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"dock_side": 1,
		"dock_position": 0.25,
		"selected_section": "inbox",
		"theme": "light",
		"notifications_enabled": true,
		"idle_close_enabled": true,
		"debug_regions": true,
		"custom_sections": [{"id": "notes", "title": "Notes", "glyph": "N"}]
	}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if side, ok := cfg.GetInt(hover.KeyDockSide); !ok || side != 1 {
		t.Errorf("GetInt(dock_side) = %d, %v; want 1, true", side, ok)
	}
	if pos, ok := cfg.GetFloat(hover.KeyDockPosition); !ok || pos != 0.25 {
		t.Errorf("GetFloat(dock_position) = %v, %v; want 0.25, true", pos, ok)
	}
	if sel, ok := cfg.GetString(hover.KeySelectedSection); !ok || sel != "inbox" {
		t.Errorf("GetString(selected_section) = %q, %v; want inbox, true", sel, ok)
	}
	if got := cfg.GetTheme(); got != "light" {
		t.Errorf("GetTheme() = %q, want light", got)
	}
	if !cfg.GetNotificationsEnabled() {
		t.Error("notifications should be enabled")
	}
	if !cfg.GetIdleCloseEnabled() {
		t.Error("idle close should be enabled")
	}
	if !cfg.GetDebugRegions() {
		t.Error("debug regions should be enabled")
	}
	sections := cfg.GetCustomSections()
	if len(sections) != 1 || sections[0].ID != "notes" {
		t.Errorf("GetCustomSections() = %v, want the notes section", sections)
	}
}

func TestLoadFrom_UnknownFieldsTolerated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"dock_side": 0, "future_setting": {"nested": true}, "other": [1, 2]}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() should tolerate unknown fields: %v", err)
	}
	if side, ok := cfg.GetInt(hover.KeyDockSide); !ok || side != 0 {
		t.Errorf("GetInt(dock_side) = %d, %v; want 0, true", side, ok)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("LoadFrom() should fail on malformed JSON")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("error kind = %v, want KindConfig", errors.GetKind(err))
	}
}

func TestLoadFrom_ValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"dock side out of range", `{"dock_side": 7}`},
		{"dock position out of range", `{"dock_position": 3.5}`},
		{"custom section empty id", `{"custom_sections": [{"id": "", "title": "X"}]}`},
		{"custom section empty title", `{"custom_sections": [{"id": "x", "title": ""}]}`},
		{"duplicate custom section id", `{"custom_sections": [{"id": "x", "title": "A"}, {"id": "x", "title": "B"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.data), 0600); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}

			_, err := LoadFrom(path)
			if err == nil {
				t.Fatal("LoadFrom() should reject invalid config")
			}
			if !errors.Is(err, errors.KindInvalid) {
				t.Errorf("error kind = %v, want KindInvalid", errors.GetKind(err))
			}
		})
	}
}

func TestConfig_StoreWriteThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{filePath: path}

	if err := cfg.SetInt(hover.KeyDockSide, 1); err != nil {
		t.Fatalf("SetInt failed: %v", err)
	}
	if err := cfg.SetFloat(hover.KeyDockPosition, 0.75); err != nil {
		t.Fatalf("SetFloat failed: %v", err)
	}
	if err := cfg.SetString(hover.KeySelectedSection, "scratch"); err != nil {
		t.Fatalf("SetString failed: %v", err)
	}

	// Every setter flushes to disk, so a reload sees the values
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if side, ok := loaded.GetInt(hover.KeyDockSide); !ok || side != 1 {
		t.Errorf("reloaded dock_side = %d, %v; want 1, true", side, ok)
	}
	if pos, ok := loaded.GetFloat(hover.KeyDockPosition); !ok || pos != 0.75 {
		t.Errorf("reloaded dock_position = %v, %v; want 0.75, true", pos, ok)
	}
	if sel, ok := loaded.GetString(hover.KeySelectedSection); !ok || sel != "scratch" {
		t.Errorf("reloaded selected_section = %q, %v; want scratch, true", sel, ok)
	}

	// The file carries the stable key names and stays private to the user
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat config file: %v", err)
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		t.Errorf("config file mode = %v, want no group/other access", perm)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatalf("Config file is not valid JSON: %v", err)
	}
	for _, want := range []string{"dock_side", "dock_position", "selected_section"} {
		if _, ok := keys[want]; !ok {
			t.Errorf("config file missing key %q", want)
		}
	}
}

func TestConfig_DockSideZeroPersists(t *testing.T) {
	// Left is side 0; it must round-trip as an explicit value, not vanish
	// into a JSON omitempty hole.
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{filePath: path}

	if err := cfg.SetInt(hover.KeyDockSide, 0); err != nil {
		t.Fatalf("SetInt failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if side, ok := loaded.GetInt(hover.KeyDockSide); !ok || side != 0 {
		t.Errorf("reloaded dock_side = %d, %v; want 0, true", side, ok)
	}
}

func TestConfig_SetUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{filePath: path}

	if err := cfg.SetInt("bogus", 1); err == nil {
		t.Error("SetInt should reject an unknown key")
	} else if !errors.Is(err, errors.KindConfig) {
		t.Errorf("error kind = %v, want KindConfig", errors.GetKind(err))
	}
	if err := cfg.SetFloat(hover.KeyDockSide, 0.5); err == nil {
		t.Error("SetFloat should reject a key of the wrong type")
	}
	if err := cfg.SetString("bogus", "x"); err == nil {
		t.Error("SetString should reject an unknown key")
	}

	// A rejected set never touches the file
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("config file should not exist after rejected sets")
	}
}

func TestConfig_EmptySelectionReadsAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{filePath: path}

	if err := cfg.SetString(hover.KeySelectedSection, "inbox"); err != nil {
		t.Fatalf("SetString failed: %v", err)
	}
	if err := cfg.SetString(hover.KeySelectedSection, ""); err != nil {
		t.Fatalf("SetString failed: %v", err)
	}
	if sel, ok := cfg.GetString(hover.KeySelectedSection); ok {
		t.Errorf("GetString after clearing = %q, %v; want absent", sel, ok)
	}
}

func TestConfig_AppSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{filePath: path}

	if err := cfg.SetTheme("light"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if err := cfg.SetNotificationsEnabled(true); err != nil {
		t.Fatalf("SetNotificationsEnabled failed: %v", err)
	}
	if err := cfg.SetIdleCloseEnabled(true); err != nil {
		t.Fatalf("SetIdleCloseEnabled failed: %v", err)
	}
	if err := cfg.SetDebugRegions(true); err != nil {
		t.Fatalf("SetDebugRegions failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if got := loaded.GetTheme(); got != "light" {
		t.Errorf("reloaded theme = %q, want light", got)
	}
	if !loaded.GetNotificationsEnabled() {
		t.Error("reloaded notifications should be enabled")
	}
	if !loaded.GetIdleCloseEnabled() {
		t.Error("reloaded idle close should be enabled")
	}
	if !loaded.GetDebugRegions() {
		t.Error("reloaded debug regions should be enabled")
	}
}

func TestConfig_AddCustomSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{filePath: path}

	if err := cfg.AddCustomSection(CustomSection{ID: "notes", Title: "Notes", Glyph: "N"}); err != nil {
		t.Fatalf("AddCustomSection failed: %v", err)
	}
	if len(cfg.GetCustomSections()) != 1 {
		t.Errorf("Expected 1 custom section, got %d", len(cfg.GetCustomSections()))
	}

	// Duplicate IDs are rejected
	err := cfg.AddCustomSection(CustomSection{ID: "notes", Title: "Other"})
	if err == nil {
		t.Error("AddCustomSection should reject a duplicate ID")
	} else if !errors.Is(err, errors.KindInvalid) {
		t.Errorf("error kind = %v, want KindInvalid", errors.GetKind(err))
	}
	if len(cfg.GetCustomSections()) != 1 {
		t.Errorf("Expected 1 custom section after duplicate add, got %d", len(cfg.GetCustomSections()))
	}

	if err := cfg.AddCustomSection(CustomSection{ID: "", Title: "X"}); err == nil {
		t.Error("AddCustomSection should reject an empty ID")
	}

	// Additions survive a reload
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	sections := loaded.GetCustomSections()
	if len(sections) != 1 || sections[0].Title != "Notes" {
		t.Errorf("reloaded sections = %v, want the notes section", sections)
	}
}

func TestConfig_RemoveCustomSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{filePath: path}

	for _, sec := range []CustomSection{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
		{ID: "c", Title: "C"},
	} {
		if err := cfg.AddCustomSection(sec); err != nil {
			t.Fatalf("AddCustomSection failed: %v", err)
		}
	}

	removed, err := cfg.RemoveCustomSection("b")
	if err != nil {
		t.Fatalf("RemoveCustomSection failed: %v", err)
	}
	if !removed {
		t.Error("RemoveCustomSection should return true for an existing section")
	}
	for _, sec := range cfg.GetCustomSections() {
		if sec.ID == "b" {
			t.Error("section b should have been removed")
		}
	}

	removed, err = cfg.RemoveCustomSection("nonexistent")
	if err != nil {
		t.Fatalf("RemoveCustomSection failed: %v", err)
	}
	if removed {
		t.Error("RemoveCustomSection should return false for an unknown section")
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if len(loaded.GetCustomSections()) != 2 {
		t.Errorf("Expected 2 custom sections after reload, got %d", len(loaded.GetCustomSections()))
	}
}

func TestConfig_GetCustomSectionsReturnsCopy(t *testing.T) {
	cfg := &Config{filePath: filepath.Join(t.TempDir(), "config.json")}
	if err := cfg.AddCustomSection(CustomSection{ID: "a", Title: "A"}); err != nil {
		t.Fatalf("AddCustomSection failed: %v", err)
	}

	sections := cfg.GetCustomSections()
	sections[0].Title = "mutated"

	if cfg.GetCustomSections()[0].Title != "A" {
		t.Error("mutating the returned slice should not affect the config")
	}
}

func TestConfig_ConcurrentSetAndSave(t *testing.T) {
	t.Parallel()

	// This test primarily detects data races when run with -race flag.
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{filePath: path}

	const numGoroutines = 10
	errChan := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		i := i
		go func() {
			if i%2 == 0 {
				errChan <- cfg.SetFloat(hover.KeyDockPosition, float64(i)/10)
			} else {
				_, _ = cfg.GetFloat(hover.KeyDockPosition)
				errChan <- cfg.Save()
			}
		}()
	}

	for i := 0; i < numGoroutines; i++ {
		if err := <-errChan; err != nil {
			t.Errorf("concurrent write failed: %v", err)
		}
	}

	// Whatever interleaving happened, the file must hold valid JSON
	if _, err := LoadFrom(path); err != nil {
		t.Fatalf("LoadFrom() after concurrent writes failed: %v", err)
	}
}
