package gui_test

import (
	"math"
	"testing"

	"github.com/frameloop/gui"
)

// clickAt simulates a press and release in one frame at the given time.
func clickAt(in *gui.InputState, t float64, x, y float32) {
	in.SetTime(t)
	in.Reset()
	in.SetMousePos(x, y)
	in.SetMouseButton(gui.MouseButtonLeft, true)
	in.SetMouseButton(gui.MouseButtonLeft, false)
}

func TestClickWithinSlopRadius(t *testing.T) {
	in := gui.NewInputState()

	in.SetTime(0)
	in.Reset()
	in.SetMousePos(100, 100)
	in.SetMouseButton(gui.MouseButtonLeft, true)

	// Drift a few points before releasing, still under the threshold.
	in.SetTime(0.05)
	in.Reset()
	in.SetMousePos(103, 102)
	in.SetMouseButton(gui.MouseButtonLeft, false)

	if !in.PointerClicked(gui.MouseButtonLeft) {
		t.Fatal("press and release within the slop radius should count as a click")
	}
	if got := in.ClickCount(gui.MouseButtonLeft); got != 1 {
		t.Errorf("ClickCount = %d, want 1", got)
	}
	c := in.LastClick(gui.MouseButtonLeft)
	if c == nil || c.Pos.X != 103 {
		t.Errorf("LastClick position wrong: %+v", c)
	}
}

func TestDragIsNotAClick(t *testing.T) {
	in := gui.NewInputState()

	in.SetTime(0)
	in.Reset()
	in.SetMousePos(100, 100)
	in.SetMouseButton(gui.MouseButtonLeft, true)

	in.SetTime(0.05)
	in.Reset()
	in.SetMousePos(150, 100)

	if !in.IsDecidedlyDragging(gui.MouseButtonLeft) {
		t.Error("moving past the threshold while held should be a drag")
	}

	in.SetTime(0.1)
	in.Reset()
	in.SetMousePos(100, 100) // back to the origin changes nothing
	in.SetMouseButton(gui.MouseButtonLeft, false)

	if in.PointerClicked(gui.MouseButtonLeft) {
		t.Error("a release after dragging must not count as a click")
	}
}

func TestDoubleAndTripleClick(t *testing.T) {
	in := gui.NewInputState()

	clickAt(in, 0, 50, 50)
	if got := in.ClickCount(gui.MouseButtonLeft); got != 1 {
		t.Fatalf("first click count = %d, want 1", got)
	}

	clickAt(in, 0.1, 50, 50)
	if !in.DoubleClicked(gui.MouseButtonLeft) {
		t.Fatal("second click within the delay should be a double-click")
	}

	clickAt(in, 0.2, 50, 50)
	if !in.TripleClicked(gui.MouseButtonLeft) {
		t.Error("third quick click should be a triple-click")
	}
}

func TestSlowSecondClickIsSingle(t *testing.T) {
	in := gui.NewInputState()

	clickAt(in, 0, 50, 50)
	clickAt(in, 1.0, 50, 50)

	if got := in.ClickCount(gui.MouseButtonLeft); got != 1 {
		t.Errorf("click after the delay expired: count = %d, want 1", got)
	}
}

func TestClickClearedNextFrame(t *testing.T) {
	in := gui.NewInputState()

	clickAt(in, 0, 50, 50)
	in.SetTime(0.016)
	in.Reset()

	if in.PointerClicked(gui.MouseButtonLeft) {
		t.Error("completed clicks must not survive into the next frame")
	}
}

func TestSecondButtonDisqualifiesClick(t *testing.T) {
	in := gui.NewInputState()

	in.SetTime(0)
	in.Reset()
	in.SetMousePos(100, 100)
	in.SetMouseButton(gui.MouseButtonLeft, true)
	in.SetMouseButton(gui.MouseButtonRight, true)

	in.SetTime(0.05)
	in.Reset()
	in.SetMouseButton(gui.MouseButtonLeft, false)

	if in.PointerClicked(gui.MouseButtonLeft) {
		t.Error("pressing a second button should disqualify the in-flight click")
	}
}

func TestVelocityFromHistory(t *testing.T) {
	in := gui.NewInputState()

	// 500 points/second along X, sampled every 20ms.
	for i := 0; i < 6; i++ {
		in.SetTime(float64(i) * 0.02)
		in.Reset()
		in.SetMousePos(float32(i)*10, 0)
	}

	v := in.Velocity()
	if math.Abs(float64(v.X)-500) > 1 {
		t.Errorf("Velocity.X = %v, want ~500", v.X)
	}
	if v.Y != 0 {
		t.Errorf("Velocity.Y = %v, want 0", v.Y)
	}
}

func TestVelocityZeroWhenSparse(t *testing.T) {
	in := gui.NewInputState()

	in.SetTime(0)
	in.Reset()
	in.SetMousePos(10, 10)

	if v := in.Velocity(); v.X != 0 || v.Y != 0 {
		t.Errorf("velocity with too few samples should be zero, got %+v", v)
	}
}

func TestVelocityResetByPress(t *testing.T) {
	in := gui.NewInputState()

	for i := 0; i < 6; i++ {
		in.SetTime(float64(i) * 0.02)
		in.Reset()
		in.SetMousePos(float32(i)*10, 0)
	}

	// A press interrupts the flick: history restarts at the press point.
	in.SetMouseButton(gui.MouseButtonLeft, true)
	if v := in.Velocity(); v.X != 0 {
		t.Errorf("velocity after press = %v, want 0", v.X)
	}
}
