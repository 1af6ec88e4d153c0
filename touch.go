package gui

import "math"

// TouchID identifies one finger for the duration of its contact.
// IDs are transient: the platform may reuse them after the finger lifts.
type TouchID uint64

// TouchPhase describes a touch event's lifecycle stage.
type TouchPhase int

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
	TouchCancel
)

// PinchType classifies a two-finger gesture by the dominant separation axis.
// Classified once when the gesture starts and kept for its lifetime.
type PinchType int

const (
	PinchProportional PinchType = iota // Zoom both axes
	PinchHorizontal                    // Fingers separated mostly along X
	PinchVertical                      // Fingers separated mostly along Y
)

// pinchDominanceRatio decides anisotropic pinch classification: one axis
// must exceed the other by this factor to win. Calibration constant, not
// derived from anything deeper.
const pinchDominanceRatio float32 = 3.0

// touchPoint is the last known state of one active finger.
type touchPoint struct {
	pos   Vec2
	force float32
}

// gestureFrame holds the derived quantities of the touch set at one instant.
type gestureFrame struct {
	avgDistance     float32 // Mean distance of touches from the centroid
	avgAbsDistance2 Vec2    // Mean per-axis absolute distance from the centroid
	avgPos          Vec2    // Centroid
	avgForce        float32
	heading         float32 // Angle from the first touch to the centroid
}

// gestureState tracks one multi-touch gesture from its start until fewer
// than two fingers remain.
type gestureState struct {
	startTime float64
	startPos  Vec2
	pinchType PinchType

	// previous is nil for exactly one frame after a finger is added or
	// removed, so all deltas read as identity instead of jumping.
	previous *gestureFrame
	current  gestureFrame
}

// MultiTouchInfo is the per-frame summary of an active multi-touch gesture.
// All deltas are one-frame deltas.
type MultiTouchInfo struct {
	StartTime float64
	StartPos  Vec2
	NumTouches int

	// ZoomDelta is the isotropic zoom factor: 1.0 means no change.
	ZoomDelta float32

	// ZoomDelta2D is the per-axis zoom factor. For a pinch classified as
	// horizontal the Y component stays 1.0, and vice versa.
	ZoomDelta2D Vec2

	// RotationDelta is the change in gesture heading, normalized to (-pi, pi].
	RotationDelta float32

	// TranslationDelta is the centroid movement.
	TranslationDelta Vec2

	// Force is the averaged touch pressure, 0 if the device reports none.
	Force float32
}

// AddTouchEvent feeds one touch contact event into the recognizer.
// The platform bridge calls this for every touch event it receives.
func (s *InputState) AddTouchEvent(id TouchID, phase TouchPhase, pos Vec2, force float32) {
	switch phase {
	case TouchStart:
		s.activeTouches[id] = touchPoint{pos: pos, force: force}
		s.touchCountChanged()
	case TouchMove:
		if _, ok := s.activeTouches[id]; ok {
			s.activeTouches[id] = touchPoint{pos: pos, force: force}
			if s.gesture != nil {
				// Refresh the live snapshot so deltas are visible on the
				// frame the move arrives, like pointer clicks are.
				s.gesture.current = calcGestureFrame(s.activeTouches)
			}
		}
	case TouchEnd, TouchCancel:
		delete(s.activeTouches, id)
		s.touchCountChanged()
	}
}

// touchCountChanged starts, stops or re-baselines the gesture after the
// finger count changes.
func (s *InputState) touchCountChanged() {
	if len(s.activeTouches) < 2 {
		// A gesture exists iff at least two fingers are down.
		s.gesture = nil
		return
	}
	if s.gesture == nil {
		frame := calcGestureFrame(s.activeTouches)
		s.gesture = &gestureState{
			startTime: s.now,
			startPos:  frame.avgPos,
			pinchType: classifyPinch(s.activeTouches),
			current:   frame,
		}
		return
	}
	// Finger added or removed mid-gesture: drop the previous snapshot so
	// the next frame's deltas are identity rather than a jump.
	s.gesture.previous = nil
	s.gesture.current = calcGestureFrame(s.activeTouches)
}

// beginTouchFrame rolls the gesture snapshots forward. Called once per
// frame from Reset, before new events arrive; TouchMove then refreshes
// the live snapshot as moves land.
func (s *InputState) beginTouchFrame() {
	if s.gesture == nil {
		return
	}
	prev := s.gesture.current
	s.gesture.previous = &prev
}

// AnyTouches returns true if at least one finger is down.
func (s *InputState) AnyTouches() bool {
	return len(s.activeTouches) > 0
}

// MultiTouch returns the current gesture summary, or false if fewer than
// two fingers are active.
func (s *InputState) MultiTouch() (MultiTouchInfo, bool) {
	g := s.gesture
	if g == nil {
		return MultiTouchInfo{}, false
	}

	info := MultiTouchInfo{
		StartTime:   g.startTime,
		StartPos:    g.startPos,
		NumTouches:  len(s.activeTouches),
		ZoomDelta:   1,
		ZoomDelta2D: Vec2{X: 1, Y: 1},
		Force:       g.current.avgForce,
	}

	prev := g.previous
	if prev == nil {
		// First frame of the gesture, or right after a finger change.
		return info, true
	}

	if prev.avgDistance > 0 {
		info.ZoomDelta = g.current.avgDistance / prev.avgDistance
	}
	switch g.pinchType {
	case PinchHorizontal:
		if prev.avgAbsDistance2.X > 0 {
			info.ZoomDelta2D.X = g.current.avgAbsDistance2.X / prev.avgAbsDistance2.X
		}
	case PinchVertical:
		if prev.avgAbsDistance2.Y > 0 {
			info.ZoomDelta2D.Y = g.current.avgAbsDistance2.Y / prev.avgAbsDistance2.Y
		}
	default:
		info.ZoomDelta2D = Vec2{X: info.ZoomDelta, Y: info.ZoomDelta}
	}
	info.RotationDelta = normalizedAngle(g.current.heading - prev.heading)
	info.TranslationDelta = g.current.avgPos.Sub(prev.avgPos)
	return info, true
}

// classifyPinch picks the pinch axis from the first two touches' separation.
func classifyPinch(touches map[TouchID]touchPoint) PinchType {
	if len(touches) != 2 {
		return PinchProportional
	}
	var pts [2]Vec2
	i := 0
	for _, t := range touches {
		pts[i] = t.pos
		i++
	}
	dx := absf(pts[0].X - pts[1].X)
	dy := absf(pts[0].Y - pts[1].Y)
	switch {
	case dx > pinchDominanceRatio*dy:
		return PinchHorizontal
	case dy > pinchDominanceRatio*dx:
		return PinchVertical
	default:
		return PinchProportional
	}
}

// calcGestureFrame derives the frame quantities from the active touch set.
func calcGestureFrame(touches map[TouchID]touchPoint) gestureFrame {
	n := float32(len(touches))
	if n == 0 {
		return gestureFrame{}
	}

	var f gestureFrame
	for _, t := range touches {
		f.avgPos.X += t.pos.X
		f.avgPos.Y += t.pos.Y
		f.avgForce += t.force
	}
	f.avgPos.X /= n
	f.avgPos.Y /= n
	f.avgForce /= n

	for _, t := range touches {
		d := t.pos.Sub(f.avgPos)
		f.avgDistance += d.Length()
		f.avgAbsDistance2.X += absf(d.X)
		f.avgAbsDistance2.Y += absf(d.Y)
	}
	f.avgDistance /= n
	f.avgAbsDistance2.X /= n
	f.avgAbsDistance2.Y /= n

	// Heading from an arbitrary but stable touch to the centroid. Only the
	// frame-to-frame change matters, so any fixed reference finger works;
	// the one with the smallest ID is stable while the set is unchanged.
	var refID TouchID
	first := true
	for id := range touches {
		if first || id < refID {
			refID = id
			first = false
		}
	}
	ref := touches[refID].pos
	f.heading = float32(math.Atan2(float64(f.avgPos.Y-ref.Y), float64(f.avgPos.X-ref.X)))
	return f
}

// normalizedAngle wraps an angle into (-pi, pi].
func normalizedAngle(a float32) float32 {
	const twoPi = 2 * math.Pi
	for a > math.Pi {
		a -= twoPi
	}
	for a <= -math.Pi {
		a += twoPi
	}
	return a
}
