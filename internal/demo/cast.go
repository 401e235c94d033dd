package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// castHeader is the first line of an asciinema v2 file.
type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp"`
	Env       map[string]string `json:"env"`
}

// GenerateASCIICast writes frames as an asciinema v2 recording: a JSON
// header line followed by one output event per frame. Every event clears
// the screen and redraws the whole frame, so playback never depends on the
// previous frame's state and seeking works.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	header := castHeader{
		Version:   2,
		Width:     width,
		Height:    height,
		Timestamp: time.Now().Unix(),
		Env:       map[string]string{"TERM": "xterm-256color"},
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("writing cast header: %w", err)
	}

	var elapsed time.Duration
	for _, f := range frames {
		elapsed += f.Delay
		data := "\x1b[H\x1b[2J" + toCRLF(f.Content)
		if f.Annotation != "" {
			// Reverse-video caption over the bottom row.
			data += fmt.Sprintf("\x1b[%d;1H\x1b[7m %s \x1b[0m", height, f.Annotation)
		}
		if err := enc.Encode([]any{castSeconds(elapsed), "o", data}); err != nil {
			return fmt.Errorf("writing cast event: %w", err)
		}
	}
	return nil
}

// toCRLF rewrites bare newlines as CRLF; raw terminal playback needs the
// explicit carriage return.
func toCRLF(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}

// castSeconds renders an event time at millisecond precision so the float
// stays tidy in the file.
func castSeconds(d time.Duration) float64 {
	return float64(d.Milliseconds()) / 1000.0
}
