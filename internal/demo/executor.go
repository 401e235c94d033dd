package demo

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google-admin/hover/internal/app"
	"github.com/google-admin/hover/internal/config"
	"github.com/google-admin/hover/internal/hover"
)

// Frame is one captured view of the app.
type Frame struct {
	Content    string        // rendered ANSI screen
	Delay      time.Duration // pause before showing this frame
	Annotation string        // caption set by the last Annotate step
	StepIndex  int           // scenario step that produced the frame
}

// ExecutorConfig tunes playback pacing and what gets captured.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every key and mouse step
	// (default: false)
	CaptureEveryStep bool

	// KeyDelay is the playback delay after key presses (default: 150ms)
	KeyDelay time.Duration

	// MoveDelay is the playback delay between drag motions (default: 40ms)
	MoveDelay time.Duration

	// FrameInterval is how far the synthetic clock advances per animation
	// frame (default: 33ms, the app's own tick rate)
	FrameInterval time.Duration
}

// DefaultExecutorConfig returns the pacing the shipped scenarios are tuned
// for. Frames come from Ticks and Capture steps unless CaptureEveryStep is
// turned on.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		KeyDelay:      150 * time.Millisecond,
		MoveDelay:     40 * time.Millisecond,
		FrameInterval: 33 * time.Millisecond,
	}
}

// Executor runs demo scenarios against a headless app model and captures
// the rendered frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	frames []Frame

	currentAnnotation string

	// now is the synthetic clock behind every animation tick. Wall time
	// never reaches the model, so two runs of the same scenario produce
	// the same frames.
	now time.Time

	// mouseX, mouseY track the pointer between steps so DragTo can walk
	// from wherever the last press or motion left it.
	mouseX int
	mouseY int

	// tmpDir holds the throwaway config the scenario runs against.
	tmpDir string
}

// NewExecutor builds an executor with the given pacing.
func NewExecutor(cfg ExecutorConfig) *Executor {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = 33 * time.Millisecond
	}
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Cleanup removes the throwaway config directory the run wrote.
func (e *Executor) Cleanup() {
	if e.tmpDir != "" {
		os.RemoveAll(e.tmpDir)
		e.tmpDir = ""
	}
}

// Run plays the scenario from a fresh model and returns the captured
// frames. The first frame is always the app as it looks before any step.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	defer e.Cleanup()

	e.captureFrame(0, 500*time.Millisecond)
	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}
	return e.frames, nil
}

// setup boots a fresh model against a throwaway config seeded from the
// scenario's Setup.
func (e *Executor) setup(scenario *Scenario) error {
	dir, err := os.MkdirTemp("", "hover-demo-")
	if err != nil {
		return err
	}
	e.tmpDir = dir

	cfg, err := config.LoadFrom(filepath.Join(dir, "config.json"))
	if err != nil {
		return err
	}

	// Persist the scenario's starting state where the widget will look
	// for it. Zero fields stay unwritten, leaving first-run defaults.
	st := scenario.Setup
	if st.DockSide != 0 || st.DockPercent != 0 {
		if err := cfg.SetInt(hover.KeyDockSide, st.DockSide); err != nil {
			return err
		}
		if err := cfg.SetFloat(hover.KeyDockPosition, st.DockPercent); err != nil {
			return err
		}
	}
	if st.SelectedSection != "" {
		if err := cfg.SetString(hover.KeySelectedSection, st.SelectedSection); err != nil {
			return err
		}
	}
	if st.Theme != "" {
		if err := cfg.SetTheme(st.Theme); err != nil {
			return err
		}
	}
	if st.DebugRegions {
		if err := cfg.SetDebugRegions(true); err != nil {
			return err
		}
	}
	for _, cs := range st.CustomSections {
		if err := cfg.AddCustomSection(cs); err != nil {
			return err
		}
	}

	e.model = app.New(cfg, "demo")

	// Any fixed epoch works: the scheduler only ever looks at deltas.
	e.now = time.Unix(0, 0)
	e.mouseX, e.mouseY = 0, 0

	// Set size. This flushes the widget's deferred open and starts the
	// appear animation; scenarios record it with their opening Ticks.
	e.update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})

	return nil
}

// executeStep runs one step, capturing frames as the step type dictates.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		// A wait over an idle widget is a single still frame. While
		// animations run, record through the wait instead so the motion
		// survives into the recording.
		if e.model.Hover().Animating() && step.Duration >= 100*time.Millisecond {
			e.captureAnimatedFrames(index, step.Duration)
		} else {
			e.captureFrame(index, step.Duration)
		}

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepPress:
		e.mouseX, e.mouseY = step.X, step.Y
		e.update(tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.MoveDelay)
		}

	case StepDragTo:
		e.dragTo(index, step.X, step.Y)

	case StepRelease:
		e.update(tea.MouseReleaseMsg{X: e.mouseX, Y: e.mouseY, Button: tea.MouseLeft})
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTap:
		e.mouseX, e.mouseY = step.X, step.Y
		e.update(tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		e.update(tea.MouseReleaseMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTicks:
		count := step.Count
		if count < 1 {
			count = 1
		}
		for i := 0; i < count; i++ {
			e.tickFrames(1)
			e.captureFrame(index, e.config.FrameInterval)
		}

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// No capture here; the caption rides every following frame until
		// the next Annotate replaces it.

	case StepCapture:
		e.captureFrame(index, 0)
	}

	return nil
}

// dragTo walks the pointer from its last position to (x, y) in small
// motions so the drag reads as movement rather than a teleport. Each motion
// is followed by one animation frame and a capture.
func (e *Executor) dragTo(index, x, y int) {
	fromX, fromY := e.mouseX, e.mouseY
	steps := maxInt(absInt(x-fromX), absInt(y-fromY)) / 4
	if steps < 1 {
		steps = 1
	}
	if steps > 12 {
		steps = 12
	}
	for i := 1; i <= steps; i++ {
		mx := fromX + (x-fromX)*i/steps
		my := fromY + (y-fromY)*i/steps
		e.update(tea.MouseMotionMsg{X: mx, Y: my, Button: tea.MouseLeft})
		e.tickFrames(1)
		e.captureFrame(index, e.config.MoveDelay)
	}
	e.mouseX, e.mouseY = x, y
}

func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	e.frames = append(e.frames, Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	})
}

// captureAnimatedFrames records through a wait: the clock advances frame by
// frame for the whole duration, capturing each one.
func (e *Executor) captureAnimatedFrames(stepIndex int, totalDuration time.Duration) {
	numFrames := int(totalDuration / e.config.FrameInterval)
	if numFrames < 1 {
		numFrames = 1
	}
	delayPerFrame := totalDuration / time.Duration(numFrames)

	for i := 0; i < numFrames; i++ {
		e.tickFrames(1)
		e.captureFrame(stepIndex, delayPerFrame)
	}
}

// tickFrames advances the synthetic clock by whole animation frames and
// feeds each one to the model.
func (e *Executor) tickFrames(n int) {
	for i := 0; i < n; i++ {
		e.now = e.now.Add(e.config.FrameInterval)
		e.update(app.FrameTickMsg(e.now))
	}
}

func (e *Executor) sendKey(key string) {
	e.update(keyPress(key))
}

func (e *Executor) update(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
}

// Key names scenarios may use that carry a key code instead of text.
var namedKeys = map[string]tea.KeyPressMsg{
	"enter":     {Code: tea.KeyEnter},
	"tab":       {Code: tea.KeyTab},
	"esc":       {Code: tea.KeyEscape},
	"escape":    {Code: tea.KeyEscape},
	"backspace": {Code: tea.KeyBackspace},
	"up":        {Code: tea.KeyUp},
	"down":      {Code: tea.KeyDown},
	"left":      {Code: tea.KeyLeft},
	"right":     {Code: tea.KeyRight},
	"space":     {Code: tea.KeySpace},
	"ctrl+c":    {Code: 'c', Mod: tea.ModCtrl},
}

// keyPress builds the KeyPressMsg for a scenario key string. Plain
// characters carry Text so form inputs receive them as typed runes.
func keyPress(key string) tea.KeyPressMsg {
	if msg, ok := namedKeys[key]; ok {
		return msg
	}
	if r := []rune(key); len(r) == 1 {
		return tea.KeyPressMsg{Code: r[0], Text: key}
	}
	return tea.KeyPressMsg{Text: key}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
