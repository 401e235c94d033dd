package anim

import (
	"math"
	"testing"
	"time"
)

var t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestTweenInterpolatesAndCompletesOnce(t *testing.T) {
	s := NewScheduler()

	var values []float64
	completions := 0
	s.Tween(TweenConfig{
		From:       0,
		To:         10,
		Duration:   100 * time.Millisecond,
		OnUpdate:   func(v float64) { values = append(values, v) },
		OnComplete: func() { completions++ },
	})

	if !s.Step(t0) {
		t.Fatal("Step should report activity while the tween runs")
	}
	s.Step(t0.Add(50 * time.Millisecond))
	if s.Step(t0.Add(100 * time.Millisecond)) {
		t.Error("Step should report no activity after the tween completes")
	}
	s.Step(t0.Add(200 * time.Millisecond))

	want := []float64{0, 5, 10}
	if len(values) != len(want) {
		t.Fatalf("got %d updates %v, want %d", len(values), values, len(want))
	}
	for i, v := range values {
		if math.Abs(v-want[i]) > 1e-9 {
			t.Errorf("update %d = %v, want %v", i, v, want[i])
		}
	}
	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
}

func TestTweenZeroDurationCompletesImmediately(t *testing.T) {
	s := NewScheduler()

	var last float64 = -1
	completions := 0
	s.Tween(TweenConfig{
		From:       2,
		To:         8,
		OnUpdate:   func(v float64) { last = v },
		OnComplete: func() { completions++ },
	})

	if s.Step(t0) {
		t.Error("zero-duration tween should finish on the first step")
	}
	if last != 8 {
		t.Errorf("final value = %v, want 8", last)
	}
	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
}

func TestTweenEaseApplied(t *testing.T) {
	s := NewScheduler()

	var mid float64
	s.Tween(TweenConfig{
		From:     0,
		To:       100,
		Duration: 100 * time.Millisecond,
		Ease:     func(p float64) float64 { return p * p },
		OnUpdate: func(v float64) { mid = v },
	})

	s.Step(t0)
	s.Step(t0.Add(50 * time.Millisecond))
	if math.Abs(mid-25) > 1e-9 {
		t.Errorf("eased midpoint = %v, want 25", mid)
	}

	// The final update snaps to To even when the ease overshoots.
	s.Step(t0.Add(100 * time.Millisecond))
	if mid != 100 {
		t.Errorf("final value = %v, want 100", mid)
	}
}

func TestCancelPreventsCompletion(t *testing.T) {
	s := NewScheduler()

	completions := 0
	h := s.Tween(TweenConfig{
		From:       0,
		To:         1,
		Duration:   100 * time.Millisecond,
		OnComplete: func() { completions++ },
	})

	s.Step(t0)
	h.Cancel()
	h.Cancel() // idempotent

	if h.Active() {
		t.Error("handle should be inactive after Cancel")
	}
	if s.Step(t0.Add(200 * time.Millisecond)) {
		t.Error("Step should report no activity after cancel")
	}
	if completions != 0 {
		t.Errorf("completions = %d, want 0", completions)
	}
}

func TestCancelFromInsideUpdate(t *testing.T) {
	s := NewScheduler()

	updates := 0
	completions := 0
	var h *Handle
	h = s.Tween(TweenConfig{
		From:     0,
		To:       1,
		Duration: 100 * time.Millisecond,
		OnUpdate: func(float64) {
			updates++
			h.Cancel()
		},
		OnComplete: func() { completions++ },
	})

	s.Step(t0)
	s.Step(t0.Add(200 * time.Millisecond))

	if updates != 1 {
		t.Errorf("updates = %d, want 1", updates)
	}
	if completions != 0 {
		t.Errorf("completions = %d, want 0", completions)
	}
}

func TestStepAdvancesInStartOrder(t *testing.T) {
	s := NewScheduler()

	var order []string
	s.Tween(TweenConfig{From: 0, To: 1, Duration: time.Second,
		OnUpdate: func(float64) { order = append(order, "a") }})
	s.Tween(TweenConfig{From: 0, To: 1, Duration: time.Second,
		OnUpdate: func(float64) { order = append(order, "b") }})

	s.Step(t0)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("order = %v, want [a b]", order)
	}
}

func TestCompletionCanStartFollowUp(t *testing.T) {
	s := NewScheduler()

	followDone := false
	s.Tween(TweenConfig{
		From: 0, To: 1, Duration: 50 * time.Millisecond,
		OnComplete: func() {
			s.Tween(TweenConfig{
				From: 1, To: 0, Duration: 50 * time.Millisecond,
				OnComplete: func() { followDone = true },
			})
		},
	})

	s.Step(t0)
	if !s.Step(t0.Add(50 * time.Millisecond)) {
		t.Fatal("follow-up tween should keep the scheduler active")
	}
	s.Step(t0.Add(60 * time.Millisecond))  // follow-up first step
	s.Step(t0.Add(120 * time.Millisecond)) // follow-up completes
	if !followDone {
		t.Error("follow-up tween never completed")
	}
}

func TestAfterFiresOnceAtDeadline(t *testing.T) {
	s := NewScheduler()

	fired := 0
	s.After(50*time.Millisecond, func() { fired++ })

	s.Step(t0)
	if fired != 0 {
		t.Fatal("timer fired before its deadline")
	}
	s.Step(t0.Add(49 * time.Millisecond))
	if fired != 0 {
		t.Fatal("timer fired before its deadline")
	}
	if s.Step(t0.Add(50 * time.Millisecond)) {
		t.Error("Step should report no activity once the timer fired")
	}
	s.Step(t0.Add(100 * time.Millisecond))
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestAfterCancel(t *testing.T) {
	s := NewScheduler()

	fired := 0
	h := s.After(50*time.Millisecond, func() { fired++ })
	s.Step(t0)
	h.Cancel()
	s.Step(t0.Add(time.Second))

	if fired != 0 {
		t.Errorf("fired = %d, want 0", fired)
	}
}

func TestSpringSettlesAtTarget(t *testing.T) {
	s := NewScheduler()

	var last float64
	completions := 0
	s.Spring(SpringConfig{
		From:       0,
		Target:     100,
		OnUpdate:   func(v float64) { last = v },
		OnComplete: func() { completions++ },
	})

	now := t0
	for i := 0; i < 600 && s.Active(); i++ {
		now = now.Add(16 * time.Millisecond)
		s.Step(now)
	}

	if s.Active() {
		t.Fatal("spring never settled")
	}
	if last != 100 {
		t.Errorf("final position = %v, want exactly 100", last)
	}
	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
}

func TestReset(t *testing.T) {
	s := NewScheduler()

	completions := 0
	s.Tween(TweenConfig{From: 0, To: 1, Duration: time.Second,
		OnComplete: func() { completions++ }})
	s.After(time.Second, func() { completions++ })

	s.Step(t0)
	s.Reset()

	if s.Active() {
		t.Error("scheduler should be idle after Reset")
	}
	s.Step(t0.Add(2 * time.Second))
	if completions != 0 {
		t.Errorf("completions = %d, want 0", completions)
	}
}
