// Package logger writes the application's debug log. Everything goes to a
// file, never the terminal: the TUI owns the screen, so stray writes would
// tear the display.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// LogLevel is the severity threshold used by SetLevel.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultLogPath is where the interactive app logs.
const DefaultLogPath = "/tmp/hover-debug.log"

// demoLogGlob matches the per-scenario demo logs next to DefaultLogPath.
const demoLogGlob = "/tmp/hover-demo-*.log"

// DemoLogPath returns the log file for one demo scenario run.
func DemoLogPath(scenario string) string {
	return fmt.Sprintf("/tmp/hover-demo-%s.log", scenario)
}

// LogFiles lists the hover log files currently on disk.
func LogFiles() ([]string, error) {
	var files []string
	if _, err := os.Stat(DefaultLogPath); err == nil {
		files = append(files, DefaultLogPath)
	}
	demoLogs, err := filepath.Glob(demoLogGlob)
	if err != nil {
		return files, err
	}
	return append(files, demoLogs...), nil
}

var (
	mu         sync.Mutex
	root       *slog.Logger
	out        *os.File
	opened     bool
	lazyFailed bool
	levelVar   = new(slog.LevelVar) // zero value is Info
)

// Init opens the log file at path. The first open wins; changing the path
// afterwards requires Reset. Returns an error when the file cannot be
// opened.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if opened {
		return nil
	}
	return openLocked(path)
}

func openLocked(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	out = f
	root = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	opened = true
	root.Info("Log opened", "path", path)
	return nil
}

// ensureOpenLocked falls back to DefaultLogPath when nothing called Init.
// A failed fallback warns on stderr once and disables logging rather than
// warning on every message.
func ensureOpenLocked() {
	if opened || lazyFailed {
		return
	}
	if err := openLocked(DefaultLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		lazyFailed = true
	}
}

// SetLevel sets the minimum severity that reaches the file. Takes effect
// whether called before or after Init.
func SetLevel(level LogLevel) {
	levelVar.Set(level.slogLevel())
}

// SetDebug toggles between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelInfo)
	}
}

// emit formats printf-style and hands the line to slog. The Sprintf is
// skipped when the level is filtered out.
func emit(level slog.Level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	ensureOpenLocked()
	if root == nil || !root.Enabled(context.Background(), level) {
		return
	}
	root.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a debug message to the log file.
func Debug(format string, args ...interface{}) {
	emit(slog.LevelDebug, format, args...)
}

// Info writes an info message to the log file.
func Info(format string, args ...interface{}) {
	emit(slog.LevelInfo, format, args...)
}

// Warn writes a warning to the log file.
func Warn(format string, args ...interface{}) {
	emit(slog.LevelWarn, format, args...)
}

// Error writes an error to the log file.
func Error(format string, args ...interface{}) {
	emit(slog.LevelError, format, args...)
}

// Log writes a debug message. It predates the leveled functions and is kept
// for the call sites that only ever log diagnostics.
func Log(format string, args ...interface{}) {
	emit(slog.LevelDebug, format, args...)
}

// Close closes the log file. Messages logged after Close are dropped; use
// Reset to open a new file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if out != nil {
		out.Close()
		out = nil
	}
	root = nil
}

// Reset returns the package to its unopened state so a test can point the
// next Init somewhere else.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if out != nil {
		out.Close()
		out = nil
	}
	root = nil
	opened = false
	lazyFailed = false
	levelVar.Set(slog.LevelInfo)
}

// ClearLogs removes every hover log file from /tmp and reports how many it
// deleted.
func ClearLogs() (int, error) {
	count := 0

	if err := os.Remove(DefaultLogPath); err == nil {
		count++
	} else if !os.IsNotExist(err) {
		return count, err
	}

	demoLogs, err := filepath.Glob(demoLogGlob)
	if err != nil {
		return count, err
	}
	for _, path := range demoLogs {
		if err := os.Remove(path); err == nil {
			count++
		} else if !os.IsNotExist(err) {
			return count, err
		}
	}

	return count, nil
}

// ComponentLogger returns a slog.Logger with the component attribute
// pre-attached, for subsystems that log structured key-value pairs:
//
//	log := logger.ComponentLogger("HoverView")
//	log.Info("state change", "from", from, "to", to)
//
// Falls back to slog.Default when no file could be opened.
func ComponentLogger(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureOpenLocked()
	if root == nil {
		return slog.Default()
	}
	return root.With(slog.String("component", component))
}
