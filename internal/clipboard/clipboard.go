//go:build !darwin

// Package clipboard copies section content out of the expanded menu. On
// macOS it shells out to pbcopy and pbpaste; everywhere else it goes
// through golang.design/x/clipboard.
package clipboard

import (
	"fmt"

	"golang.design/x/clipboard"

	"github.com/google-admin/hover/internal/logger"
)

var ready bool

// Init readies the clipboard driver. Repeat calls are free.
func Init() error {
	if ready {
		return nil
	}
	if err := clipboard.Init(); err != nil {
		logger.Log("Clipboard: Failed to initialize: %v", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	ready = true
	logger.Log("Clipboard: Initialized successfully")
	return nil
}

// WriteText puts text on the clipboard, initializing the driver on first
// use.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Log("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}

// ReadText returns the clipboard's text contents, empty when it holds
// none.
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	if b := clipboard.Read(clipboard.FmtText); b != nil {
		return string(b), nil
	}
	return "", nil
}
