// Package notification delivers desktop notifications through beeep, which
// picks the platform backend (notify-send or D-Bus on Linux, osascript on
// macOS, toasts on Windows).
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/google-admin/hover/internal/logger"
)

// notifyFunc matches beeep.Notify so tests can substitute a recorder.
type notifyFunc func(title, message string, icon any) error

var notifier notifyFunc = beeep.Notify

// SetNotifier replaces the notification backend. Tests use it to avoid
// sending real desktop notifications.
func SetNotifier(fn notifyFunc) {
	notifier = fn
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send delivers a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Log("Notification: Sending notification - title=%q, message=%q", title, message)
	// Empty icon lets beeep pick the platform default.
	err := notifier(title, message, "")
	if err != nil {
		logger.Log("Notification: Failed to send notification: %v", err)
	}
	return err
}

// WidgetDismissed sends a notification that the hover menu was dropped on
// the exit zone.
func WidgetDismissed() error {
	return Send("Hover", "Menu dismissed")
}
