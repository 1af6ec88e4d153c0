package gui_test

import (
	"math"
	"testing"

	"github.com/frameloop/gui"
)

func touchFrame(in *gui.InputState, t float64) {
	in.SetTime(t)
	in.Reset()
}

func TestGestureNeedsTwoFingers(t *testing.T) {
	in := gui.NewInputState()
	touchFrame(in, 0)
	in.AddTouchEvent(1, gui.TouchStart, gui.Vec2{X: 100, Y: 100}, 1)

	if _, ok := in.MultiTouch(); ok {
		t.Error("one finger must not start a gesture")
	}
	if !in.AnyTouches() {
		t.Error("AnyTouches should see the single finger")
	}

	in.AddTouchEvent(2, gui.TouchStart, gui.Vec2{X: 200, Y: 100}, 1)
	if _, ok := in.MultiTouch(); !ok {
		t.Error("two fingers should start a gesture")
	}
}

func TestGestureFirstFrameIsIdentity(t *testing.T) {
	in := gui.NewInputState()
	touchFrame(in, 0)
	in.AddTouchEvent(1, gui.TouchStart, gui.Vec2{X: 100, Y: 100}, 1)
	in.AddTouchEvent(2, gui.TouchStart, gui.Vec2{X: 200, Y: 200}, 1)

	info, ok := in.MultiTouch()
	if !ok {
		t.Fatal("expected a gesture")
	}
	if info.ZoomDelta != 1 || info.ZoomDelta2D.X != 1 || info.ZoomDelta2D.Y != 1 {
		t.Errorf("first frame should report identity zoom, got %+v", info)
	}
	if info.TranslationDelta.X != 0 || info.TranslationDelta.Y != 0 {
		t.Errorf("first frame should report zero translation, got %+v", info.TranslationDelta)
	}
	if info.NumTouches != 2 {
		t.Errorf("NumTouches = %d, want 2", info.NumTouches)
	}
}

func TestProportionalPinchZoom(t *testing.T) {
	in := gui.NewInputState()
	touchFrame(in, 0)
	in.AddTouchEvent(1, gui.TouchStart, gui.Vec2{X: 100, Y: 100}, 1)
	in.AddTouchEvent(2, gui.TouchStart, gui.Vec2{X: 200, Y: 200}, 1)

	// Fingers spread to double their separation.
	touchFrame(in, 0.016)
	in.AddTouchEvent(1, gui.TouchMove, gui.Vec2{X: 50, Y: 50}, 1)
	in.AddTouchEvent(2, gui.TouchMove, gui.Vec2{X: 250, Y: 250}, 1)

	// Deltas are visible on the frame the moves arrive.
	info, ok := in.MultiTouch()
	if !ok {
		t.Fatal("gesture should still be active")
	}
	if math.Abs(float64(info.ZoomDelta)-2) > 1e-4 {
		t.Errorf("ZoomDelta = %v, want 2", info.ZoomDelta)
	}
	// Diagonal separation: both axes zoom.
	if math.Abs(float64(info.ZoomDelta2D.X)-2) > 1e-4 || math.Abs(float64(info.ZoomDelta2D.Y)-2) > 1e-4 {
		t.Errorf("ZoomDelta2D = %+v, want (2, 2)", info.ZoomDelta2D)
	}
}

func TestHorizontalPinchLeavesYAlone(t *testing.T) {
	in := gui.NewInputState()
	touchFrame(in, 0)
	// dx=300, dy=10: X dominates by more than 3:1, so the pinch is
	// classified horizontal for its whole lifetime.
	in.AddTouchEvent(1, gui.TouchStart, gui.Vec2{X: 100, Y: 100}, 1)
	in.AddTouchEvent(2, gui.TouchStart, gui.Vec2{X: 400, Y: 110}, 1)

	touchFrame(in, 0.016)
	in.AddTouchEvent(1, gui.TouchMove, gui.Vec2{X: 50, Y: 100}, 1)
	in.AddTouchEvent(2, gui.TouchMove, gui.Vec2{X: 450, Y: 110}, 1)

	info, ok := in.MultiTouch()
	if !ok {
		t.Fatal("gesture should still be active")
	}
	if info.ZoomDelta2D.X <= 1 {
		t.Errorf("ZoomDelta2D.X = %v, want > 1", info.ZoomDelta2D.X)
	}
	if info.ZoomDelta2D.Y != 1 {
		t.Errorf("ZoomDelta2D.Y = %v, want exactly 1 for a horizontal pinch", info.ZoomDelta2D.Y)
	}
}

func TestTwoFingerPan(t *testing.T) {
	in := gui.NewInputState()
	touchFrame(in, 0)
	in.AddTouchEvent(1, gui.TouchStart, gui.Vec2{X: 100, Y: 100}, 1)
	in.AddTouchEvent(2, gui.TouchStart, gui.Vec2{X: 200, Y: 100}, 1)

	touchFrame(in, 0.016)
	in.AddTouchEvent(1, gui.TouchMove, gui.Vec2{X: 130, Y: 140}, 1)
	in.AddTouchEvent(2, gui.TouchMove, gui.Vec2{X: 230, Y: 140}, 1)

	info, ok := in.MultiTouch()
	if !ok {
		t.Fatal("gesture should still be active")
	}
	if math.Abs(float64(info.TranslationDelta.X)-30) > 1e-4 ||
		math.Abs(float64(info.TranslationDelta.Y)-40) > 1e-4 {
		t.Errorf("TranslationDelta = %+v, want (30, 40)", info.TranslationDelta)
	}
	if math.Abs(float64(info.ZoomDelta)-1) > 1e-4 {
		t.Errorf("pure pan should not zoom, ZoomDelta = %v", info.ZoomDelta)
	}
}

func TestRotationDelta(t *testing.T) {
	in := gui.NewInputState()
	touchFrame(in, 0)
	in.AddTouchEvent(1, gui.TouchStart, gui.Vec2{X: 100, Y: 100}, 1)
	in.AddTouchEvent(2, gui.TouchStart, gui.Vec2{X: 200, Y: 100}, 1)

	// Rotate both fingers 90 degrees around the centroid (150, 100).
	touchFrame(in, 0.016)
	in.AddTouchEvent(1, gui.TouchMove, gui.Vec2{X: 150, Y: 50}, 1)
	in.AddTouchEvent(2, gui.TouchMove, gui.Vec2{X: 150, Y: 150}, 1)

	info, ok := in.MultiTouch()
	if !ok {
		t.Fatal("gesture should still be active")
	}
	if math.Abs(float64(info.RotationDelta)-math.Pi/2) > 1e-3 {
		t.Errorf("RotationDelta = %v, want pi/2", info.RotationDelta)
	}
	if math.Abs(float64(info.ZoomDelta)-1) > 1e-4 {
		t.Errorf("pure rotation should not zoom, ZoomDelta = %v", info.ZoomDelta)
	}
}

func TestFingerChangeReadsAsIdentity(t *testing.T) {
	in := gui.NewInputState()
	touchFrame(in, 0)
	in.AddTouchEvent(1, gui.TouchStart, gui.Vec2{X: 100, Y: 100}, 1)
	in.AddTouchEvent(2, gui.TouchStart, gui.Vec2{X: 200, Y: 100}, 1)

	touchFrame(in, 0.016)
	// A third finger lands far away, which would read as a huge zoom if
	// the deltas were not suppressed for one frame.
	in.AddTouchEvent(3, gui.TouchStart, gui.Vec2{X: 500, Y: 500}, 1)

	info, ok := in.MultiTouch()
	if !ok {
		t.Fatal("gesture should survive the finger change")
	}
	if info.ZoomDelta != 1 || info.TranslationDelta.X != 0 || info.TranslationDelta.Y != 0 {
		t.Errorf("the frame a finger changes must report identity deltas, got %+v", info)
	}
	if info.NumTouches != 3 {
		t.Errorf("NumTouches = %d, want 3", info.NumTouches)
	}
}

func TestGestureEndsBelowTwoFingers(t *testing.T) {
	in := gui.NewInputState()
	touchFrame(in, 0)
	in.AddTouchEvent(1, gui.TouchStart, gui.Vec2{X: 100, Y: 100}, 1)
	in.AddTouchEvent(2, gui.TouchStart, gui.Vec2{X: 200, Y: 100}, 1)

	in.AddTouchEvent(2, gui.TouchEnd, gui.Vec2{X: 200, Y: 100}, 0)
	if _, ok := in.MultiTouch(); ok {
		t.Error("lifting to one finger must end the gesture")
	}

	// A new second finger starts a fresh gesture, not a resumed one.
	in.AddTouchEvent(4, gui.TouchStart, gui.Vec2{X: 300, Y: 100}, 1)
	info, ok := in.MultiTouch()
	if !ok {
		t.Fatal("two fingers again should start a new gesture")
	}
	if info.ZoomDelta != 1 {
		t.Errorf("fresh gesture should start at identity, got %v", info.ZoomDelta)
	}
}
