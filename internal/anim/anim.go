// Package anim provides an explicitly stepped animation scheduler.
//
// Animations own no goroutines and no timers. The host drives the scheduler
// by calling Step with the current time (the demo app does this from a
// bubbletea tick loop), so every animation is deterministic under test:
// tests pass synthetic timestamps and observe the callbacks.
package anim

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring defaults tuned for cell-grid motion: a fast settle with a small
// visible overshoot.
const (
	DefaultFrequency = 7.0
	DefaultDamping   = 0.7

	springFPS  = 60
	restDelta  = 0.05
	springIdle = time.Second // max catch-up per step before the clock resets
)

// stepper is one active animation. advance returns true when the animation
// finished at this step.
type stepper interface {
	advance(now time.Time) bool
}

type item struct {
	done bool
	s    stepper
}

// Handle cancels a scheduled animation. Cancelling never invokes the
// animation's completion callback, and cancelling twice is a no-op.
type Handle struct {
	it *item
}

// Cancel stops the animation without completing it.
func (h *Handle) Cancel() {
	if h == nil || h.it == nil {
		return
	}
	h.it.done = true
}

// Active reports whether the animation is still running.
func (h *Handle) Active() bool {
	return h != nil && h.it != nil && !h.it.done
}

// Scheduler owns active animations and timers. It is not safe for concurrent
// use; the host drives it from a single goroutine (the bubbletea update loop
// in the demo app).
type Scheduler struct {
	items []*item
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Step advances every active animation to now, in start order, and reports
// whether any animations or timers remain. The host uses the result to
// decide whether to keep ticking.
//
// Callbacks may start new animations; those are appended and first advanced
// on the next Step.
func (s *Scheduler) Step(now time.Time) bool {
	n := len(s.items)
	for i := 0; i < n; i++ {
		it := s.items[i]
		if it.done {
			continue
		}
		if it.s.advance(now) {
			it.done = true
		}
	}
	s.compact()
	return len(s.items) > 0
}

// Active reports whether any animations or timers remain.
func (s *Scheduler) Active() bool {
	for _, it := range s.items {
		if !it.done {
			return true
		}
	}
	return false
}

// Reset drops all animations without completing them.
func (s *Scheduler) Reset() {
	for _, it := range s.items {
		it.done = true
	}
	s.compact()
}

func (s *Scheduler) compact() {
	live := s.items[:0]
	for _, it := range s.items {
		if !it.done {
			live = append(live, it)
		}
	}
	clear(s.items[len(live):])
	s.items = live
}

func (s *Scheduler) add(st stepper) *Handle {
	it := &item{s: st}
	s.items = append(s.items, it)
	return &Handle{it: it}
}

// TweenConfig describes a duration-based animation of a single value.
type TweenConfig struct {
	From     float64
	To       float64
	Duration time.Duration

	// Ease maps normalized time [0,1] to progress [0,1]. Nil means linear.
	Ease func(float64) float64

	// OnUpdate receives the interpolated value on every step, starting with
	// From and ending with To.
	OnUpdate func(float64)

	// OnComplete fires exactly once, after the final OnUpdate. Cancelled
	// tweens never complete.
	OnComplete func()
}

// Tween schedules cfg and returns its cancel handle. A non-positive duration
// completes on the first step.
func (s *Scheduler) Tween(cfg TweenConfig) *Handle {
	t := &tween{cfg: cfg}
	h := s.add(t)
	t.it = h.it
	return h
}

type tween struct {
	cfg     TweenConfig
	it      *item
	started bool
	start   time.Time
}

func (t *tween) advance(now time.Time) bool {
	if !t.started {
		t.started = true
		t.start = now
	}
	progress := 1.0
	if t.cfg.Duration > 0 {
		progress = float64(now.Sub(t.start)) / float64(t.cfg.Duration)
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	eased := progress
	if t.cfg.Ease != nil {
		eased = t.cfg.Ease(progress)
	}
	v := t.cfg.From + (t.cfg.To-t.cfg.From)*eased
	if progress >= 1 {
		v = t.cfg.To
	}
	if t.cfg.OnUpdate != nil {
		t.cfg.OnUpdate(v)
	}
	if t.it.done {
		// Cancelled from inside OnUpdate.
		return true
	}
	if progress >= 1 {
		if t.cfg.OnComplete != nil {
			t.cfg.OnComplete()
		}
		return true
	}
	return false
}

// SpringConfig describes a physics-based animation of a single value toward
// a target. Zero Frequency/Damping pick the package defaults.
type SpringConfig struct {
	From     float64
	Velocity float64
	Target   float64

	Frequency float64
	Damping   float64

	OnUpdate   func(float64)
	OnComplete func()
}

// Spring schedules cfg and returns its cancel handle. The spring integrates
// at a fixed internal timestep regardless of how often Step is called, and
// completes when position and velocity come to rest at the target.
func (s *Scheduler) Spring(cfg SpringConfig) *Handle {
	if cfg.Frequency == 0 {
		cfg.Frequency = DefaultFrequency
	}
	if cfg.Damping == 0 {
		cfg.Damping = DefaultDamping
	}
	sp := &spring{
		cfg:    cfg,
		spring: harmonica.NewSpring(harmonica.FPS(springFPS), cfg.Frequency, cfg.Damping),
		pos:    cfg.From,
		vel:    cfg.Velocity,
	}
	h := s.add(sp)
	sp.it = h.it
	return h
}

type spring struct {
	cfg     SpringConfig
	it      *item
	spring  harmonica.Spring
	pos     float64
	vel     float64
	accum   time.Duration
	started bool
	last    time.Time
}

func (sp *spring) advance(now time.Time) bool {
	if !sp.started {
		sp.started = true
		sp.last = now
		if sp.cfg.OnUpdate != nil {
			sp.cfg.OnUpdate(sp.pos)
		}
		return sp.it.done
	}
	elapsed := now.Sub(sp.last)
	sp.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > springIdle {
		elapsed = springIdle
	}
	sp.accum += elapsed
	const stepDur = time.Second / springFPS
	for sp.accum >= stepDur {
		sp.accum -= stepDur
		sp.pos, sp.vel = sp.spring.Update(sp.pos, sp.vel, sp.cfg.Target)
	}
	atRest := abs(sp.pos-sp.cfg.Target) < restDelta && abs(sp.vel) < restDelta
	if atRest {
		sp.pos = sp.cfg.Target
	}
	if sp.cfg.OnUpdate != nil {
		sp.cfg.OnUpdate(sp.pos)
	}
	if sp.it.done {
		return true
	}
	if atRest {
		if sp.cfg.OnComplete != nil {
			sp.cfg.OnComplete()
		}
		return true
	}
	return false
}

// After schedules fn to run once d after the timer's first step. A
// non-positive d fires on the first step.
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	t := &timer{d: d, fn: fn}
	h := s.add(t)
	t.it = h.it
	return h
}

type timer struct {
	d        time.Duration
	fn       func()
	it       *item
	armed    bool
	deadline time.Time
}

func (t *timer) advance(now time.Time) bool {
	if !t.armed {
		t.armed = true
		t.deadline = now.Add(t.d)
	}
	if now.Before(t.deadline) {
		return false
	}
	if t.fn != nil {
		t.fn()
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
