package tui

import (
	"math"
	"testing"
)

func TestClickTogglesSelection(t *testing.T) {
	in := NewInteraction()

	in.Click("a")
	if got := in.Selected(); got != "a" {
		t.Fatalf("Selected() = %q, want %q", got, "a")
	}

	in.Click("a")
	if got := in.Selected(); got != "" {
		t.Errorf("Selected() after second click = %q, want empty", got)
	}

	in.Click("a")
	in.Click("b")
	if got := in.Selected(); got != "b" {
		t.Errorf("Selected() = %q, want %q", got, "b")
	}
}

func TestDragAccumulatesAcrossSessions(t *testing.T) {
	in := NewInteraction()
	in.Click("a")

	// First session: +10, +5.
	in.StartDrag("a", 100, 100)
	in.Drag(110, 105)
	in.EndDrag()

	if got := in.Offset("a"); got != (Offset{X: 10, Y: 5}) {
		t.Fatalf("Offset() after first drag = %+v, want {10 5}", got)
	}

	// Second session: +3, -2 on top of the persisted offset.
	in.StartDrag("a", 50, 50)
	in.Drag(53, 48)
	in.EndDrag()

	if got := in.Offset("a"); got != (Offset{X: 13, Y: 3}) {
		t.Errorf("Offset() after second drag = %+v, want {13 3}", got)
	}
}

func TestDragIsUnbounded(t *testing.T) {
	in := NewInteraction()
	in.Click("a")
	in.StartDrag("a", 0, 0)
	in.Drag(-5000, 9000)
	in.EndDrag()

	if got := in.Offset("a"); got != (Offset{X: -5000, Y: 9000}) {
		t.Errorf("Offset() = %+v, want {-5000 9000}", got)
	}
}

func TestDragRequiresSelection(t *testing.T) {
	in := NewInteraction()

	in.StartDrag("a", 0, 0)
	if in.Dragging() {
		t.Error("StartDrag() without selection began a session")
	}

	in.Click("a")
	in.StartDrag("b", 0, 0)
	if in.Dragging() {
		t.Error("StartDrag() on unselected item began a session")
	}
}

func TestResetRemovesEntry(t *testing.T) {
	in := NewInteraction()
	in.Click("a")
	in.StartDrag("a", 0, 0)
	in.Drag(7, 7)
	in.EndDrag()
	in.ScaleUp()

	in.Reset()

	if in.HasOffset("a") {
		t.Error("Reset() left an offset entry; want entry absent")
	}
	if got := in.Scale("a"); got != 1.0 {
		t.Errorf("Scale() after reset = %v, want 1.0", got)
	}
}

func TestScaleClamped(t *testing.T) {
	in := NewInteraction()
	in.Click("a")

	for i := 0; i < 20; i++ {
		in.ScaleUp()
	}
	if got := in.Scale("a"); got != 2.0 {
		t.Errorf("Scale() after 20 steps up = %v, want 2.0", got)
	}

	for i := 0; i < 20; i++ {
		in.ScaleDown()
	}
	if got := in.Scale("a"); got != 0.5 {
		t.Errorf("Scale() after 20 steps down = %v, want 0.5", got)
	}
}

func TestScaleStepsAreExact(t *testing.T) {
	in := NewInteraction()
	in.Click("a")

	in.ScaleUp()
	in.ScaleUp()
	in.ScaleUp()
	if got := in.Scale("a"); math.Abs(got-1.3) > 1e-9 {
		t.Errorf("Scale() after 3 steps = %v, want exactly 1.3", got)
	}
}

func TestScaleRequiresSelection(t *testing.T) {
	in := NewInteraction()
	in.ScaleUp()
	if got := in.Scale("a"); got != 1.0 {
		t.Errorf("ScaleUp() without selection changed scale to %v", got)
	}
}

func TestOffsetsSurviveDeselection(t *testing.T) {
	in := NewInteraction()
	in.Click("a")
	in.StartDrag("a", 0, 0)
	in.Drag(4, 4)
	in.EndDrag()

	in.Click("a") // deselect
	if got := in.Offset("a"); got != (Offset{X: 4, Y: 4}) {
		t.Errorf("Offset() after deselect = %+v, want {4 4}", got)
	}
}

func TestZoomClamped(t *testing.T) {
	in := NewInteraction()

	for i := 0; i < 20; i++ {
		in.ZoomIn()
	}
	if got := in.Zoom(); got != 1.5 {
		t.Errorf("Zoom() after 20 steps in = %v, want 1.5", got)
	}

	for i := 0; i < 20; i++ {
		in.ZoomOut()
	}
	if got := in.Zoom(); got != 0.5 {
		t.Errorf("Zoom() after 20 steps out = %v, want 0.5", got)
	}
}
