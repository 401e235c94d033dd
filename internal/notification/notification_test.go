package notification

import (
	"errors"
	"testing"
)

// recorder captures what reaches the notification backend.
type recorder struct {
	title   string
	message string
	calls   int
	err     error
}

func (r *recorder) install(t *testing.T) {
	t.Helper()
	SetNotifier(func(title, message string, icon any) error {
		r.calls++
		r.title, r.message = title, message
		return r.err
	})
	t.Cleanup(ResetNotifier)
}

func TestSendPassesThrough(t *testing.T) {
	cases := []struct {
		name    string
		title   string
		message string
	}{
		{"plain", "Hover", "Menu dismissed"},
		{"empty title", "", "body only"},
		{"empty message", "title only", ""},
		{"unicode", "通知", "🎉 with emoji"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			rec.install(t)

			if err := Send(tc.title, tc.message); err != nil {
				t.Fatalf("Send: %v", err)
			}
			if rec.calls != 1 {
				t.Fatalf("backend called %d times, want 1", rec.calls)
			}
			if rec.title != tc.title || rec.message != tc.message {
				t.Errorf("backend got (%q, %q), want (%q, %q)",
					rec.title, rec.message, tc.title, tc.message)
			}
		})
	}
}

func TestSendReportsBackendError(t *testing.T) {
	backendErr := errors.New("notification system unavailable")
	rec := &recorder{err: backendErr}
	rec.install(t)

	if err := Send("Hover", "anything"); !errors.Is(err, backendErr) {
		t.Errorf("Send error = %v, want the backend error", err)
	}
	if rec.calls != 1 {
		t.Errorf("backend called %d times, want 1", rec.calls)
	}
}

func TestWidgetDismissed(t *testing.T) {
	rec := &recorder{}
	rec.install(t)

	if err := WidgetDismissed(); err != nil {
		t.Fatalf("WidgetDismissed: %v", err)
	}
	if rec.title != "Hover" || rec.message != "Menu dismissed" {
		t.Errorf("notification = (%q, %q), want (Hover, Menu dismissed)",
			rec.title, rec.message)
	}
}
