package demo

import (
	"errors"
	"testing"
	"time"
)

func TestValidateRequiresName(t *testing.T) {
	s := &Scenario{Description: "unnamed"}
	err := s.Validate()
	if err == nil {
		t.Fatal("Validate() accepted a scenario without a name")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Validate() error type = %T, want *ValidationError", err)
	}
	if ve.Field != "Name" {
		t.Errorf("error field = %q, want %q", ve.Field, "Name")
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	s := &Scenario{Name: "bare"}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if s.Width != 120 || s.Height != 40 {
		t.Errorf("geometry = %dx%d, want 120x40", s.Width, s.Height)
	}
	if s.Setup == nil {
		t.Error("nil Setup was not replaced with the default")
	}
}

func TestValidateKeepsExplicitValues(t *testing.T) {
	setup := &ScenarioSetup{DockSide: 1, DockPercent: 0.8}
	s := &Scenario{Name: "sized", Width: 100, Height: 30, Setup: setup}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if s.Width != 100 || s.Height != 30 {
		t.Errorf("geometry = %dx%d, want the explicit 100x30", s.Width, s.Height)
	}
	if s.Setup != setup {
		t.Error("explicit Setup was replaced")
	}
}

// Step is comparable, so each builder can be checked against the exact
// value it should produce.
func TestStepBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  Step
		want Step
	}{
		{"Wait", Wait(500 * time.Millisecond), Step{Type: StepWait, Duration: 500 * time.Millisecond}},
		{"Key", Key("enter"), Step{Type: StepKey, Key: "enter"}},
		{"KeyWithDesc", KeyWithDesc("e", "Expand the menu"), Step{Type: StepKey, Key: "e", Description: "Expand the menu"}},
		{"Press", Press(2, 21), Step{Type: StepPress, X: 2, Y: 21}},
		{"DragTo", DragTo(100, 30), Step{Type: StepDragTo, X: 100, Y: 30}},
		{"Release", Release(), Step{Type: StepRelease}},
		{"Tap", Tap(8, 16), Step{Type: StepTap, X: 8, Y: 16}},
		{"Ticks", Ticks(12), Step{Type: StepTicks, Count: 12}},
		{"Annotate", Annotate("Drag the tab"), Step{Type: StepAnnotate, Annotation: "Drag the tab"}},
		{"Capture", Capture(), Step{Type: StepCapture}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestDefaultSetupIsFirstRun(t *testing.T) {
	setup := DefaultSetup()
	if setup.DockSide != 0 || setup.DockPercent != 0 || setup.SelectedSection != "" ||
		setup.Theme != "" || setup.DebugRegions || len(setup.CustomSections) != 0 {
		t.Errorf("DefaultSetup() = %+v, want all zero values", setup)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "Name", Message: "is required"}
	if got, want := err.Error(), "validation error: Name: is required"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
