//go:build darwin

package clipboard

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/google-admin/hover/internal/logger"
)

// Init is a no-op on macOS; pbcopy and pbpaste ship with the OS. Going
// through them avoids the cgo requirement golang.design/x/clipboard
// carries on darwin.
func Init() error {
	return nil
}

// WriteText writes text to the clipboard through pbcopy.
func WriteText(text string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		logger.Log("Clipboard: pbcopy failed: %v", err)
		return fmt.Errorf("failed to write clipboard: %w", err)
	}

	logger.Log("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}

// ReadText reads text from the clipboard through pbpaste.
func ReadText() (string, error) {
	var out bytes.Buffer
	cmd := exec.Command("pbpaste")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		logger.Log("Clipboard: pbpaste failed: %v", err)
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}

	return out.String(), nil
}
