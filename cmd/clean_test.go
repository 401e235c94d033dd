package cmd

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google-admin/hover/internal/config"
)

func TestConfirm(t *testing.T) {
	accepts := []string{"y\n", "Y\n", "yes\n", "YES\n", "Yes\n", "  y  \n", "y\r\n"}
	for _, in := range accepts {
		if !confirm(strings.NewReader(in), "Continue?") {
			t.Errorf("confirm(%q) = false, want true", in)
		}
	}

	declines := []string{"n\n", "N\n", "no\n", "\n", "maybe\n", "yess\n", "sure\n"}
	for _, in := range declines {
		if confirm(strings.NewReader(in), "Continue?") {
			t.Errorf("confirm(%q) = true, want false", in)
		}
	}
}

func TestConfirm_ReaderFailures(t *testing.T) {
	if confirm(strings.NewReader(""), "Continue?") {
		t.Error("EOF should read as a decline")
	}
	if confirm(failingReader{}, "Continue?") {
		t.Error("a read error should read as a decline")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

// seedConfig points HOME at a temp dir and persists a config file there, so
// clean has something real to remove.
func seedConfig(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.SetTheme("dark"); err != nil {
		t.Fatalf("seeding config: %v", err)
	}
	if _, err := os.Stat(cfg.Path()); err != nil {
		t.Fatalf("seed did not write %s: %v", cfg.Path(), err)
	}
	return cfg.Path()
}

func TestRunClean_RemovesConfig(t *testing.T) {
	path := seedConfig(t)

	orig := skipConfirm
	skipConfirm = true
	defer func() { skipConfirm = orig }()

	if err := runCleanWithReader(strings.NewReader("")); err != nil {
		t.Fatalf("runCleanWithReader: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("config file should be removed, stat err = %v", err)
	}
}

func TestRunClean_DeclineKeepsConfig(t *testing.T) {
	path := seedConfig(t)

	orig := skipConfirm
	skipConfirm = false
	defer func() { skipConfirm = orig }()

	if err := runCleanWithReader(strings.NewReader("n\n")); err != nil {
		t.Fatalf("runCleanWithReader: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("declining should keep the config file, stat err = %v", err)
	}
}
