package gui

// Pointer interaction thresholds.
const (
	// MaxClickDist is how far (in points) the pointer may travel between
	// press and release and still count as a click.
	MaxClickDist float32 = 6.0

	// MaxClickDelay is the maximum time in seconds between two clicks for
	// the second to count as a double-click (and between click one and
	// three for a triple-click, doubled).
	MaxClickDelay = 0.3
)

// Position history bounds for velocity estimation.
const (
	maxHistorySamples = 1000
	maxHistoryAge     = 0.1 // seconds
)

// Click describes a completed click: a press/release pair whose travel
// stayed under MaxClickDist.
type Click struct {
	Pos   Vec2
	Count int // 1 = single, 2 = double, 3 = triple
	Time  float64
}

// posSample is one timestamped pointer position.
type posSample struct {
	time float64
	pos  Vec2
}

// posHistory keeps a bounded, time-windowed trail of pointer positions.
type posHistory struct {
	samples []posSample
}

func (h *posHistory) add(t float64, pos Vec2) {
	h.samples = append(h.samples, posSample{time: t, pos: pos})
	if len(h.samples) > maxHistorySamples {
		h.samples = h.samples[len(h.samples)-maxHistorySamples:]
	}
}

// flush drops samples older than the history window.
func (h *posHistory) flush(now float64) {
	cutoff := now - maxHistoryAge
	i := 0
	for i < len(h.samples) && h.samples[i].time < cutoff {
		i++
	}
	if i > 0 {
		h.samples = h.samples[i:]
	}
}

func (h *posHistory) clear() {
	h.samples = h.samples[:0]
}

// velocity estimates pointer speed from the endpoints of the history.
// Reports zero when the trail is too short or too brief to be meaningful.
func (h *posHistory) velocity() Vec2 {
	if len(h.samples) < 3 {
		return Vec2{}
	}
	first := h.samples[0]
	last := h.samples[len(h.samples)-1]
	dt := float32(last.time - first.time)
	if dt <= 0.01 {
		return Vec2{}
	}
	return last.pos.Sub(first.pos).Mul(1 / dt)
}

// pointerButton tracks per-button press/click bookkeeping across frames.
type pointerButton struct {
	pressOrigin    Vec2
	pressStartTime float64
	movedTooMuch   bool

	// Timestamps of the most recent clicks, for double/triple detection.
	// The flags gate the zero values: without them a first click at a
	// small timestamp would read as a double.
	lastClickTime     float64
	lastLastClickTime float64
	hasClick          bool
	hasEarlierClick   bool

	click *Click // Click completed this frame, if any
}

// SetTime sets the monotonic timestamp for subsequent input events.
// The platform bridge calls this before feeding events for a frame.
func (s *InputState) SetTime(t float64) {
	s.now = t
}

// Time returns the current input timestamp.
func (s *InputState) Time() float64 {
	return s.now
}

// beginPointerFrame ages the position history and clears completed clicks.
// Called once per frame before event feeding.
func (s *InputState) beginPointerFrame() {
	s.history.flush(s.now)
	for i := range s.pointer {
		s.pointer[i].click = nil
	}
}

// recordPointerMove folds a position change into the click state machine.
func (s *InputState) recordPointerMove(pos Vec2) {
	s.history.add(s.now, pos)
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		if s.mouseDown[b] {
			pb := &s.pointer[b]
			if pos.Distance(pb.pressOrigin) > MaxClickDist {
				pb.movedTooMuch = true
			}
		}
	}
}

// recordPointerPress starts click tracking for a button.
func (s *InputState) recordPointerPress(button MouseButton, pos Vec2) {
	pb := &s.pointer[button]
	pb.pressOrigin = pos
	pb.pressStartTime = s.now
	pb.movedTooMuch = false
	// A press interrupts any flick in progress.
	s.history.clear()
	s.history.add(s.now, pos)
	// Pressing a second button disqualifies in-flight clicks on the others.
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		if b != button && s.mouseDown[b] {
			s.pointer[b].movedTooMuch = true
			pb.movedTooMuch = true
		}
	}
}

// recordPointerRelease completes click tracking for a button.
func (s *InputState) recordPointerRelease(button MouseButton, pos Vec2) {
	pb := &s.pointer[button]
	if pb.movedTooMuch {
		return
	}
	count := 1
	if pb.hasClick && s.now-pb.lastClickTime < MaxClickDelay {
		count = 2
		if pb.hasEarlierClick && s.now-pb.lastLastClickTime < MaxClickDelay*2 {
			count = 3
		}
	}
	pb.click = &Click{Pos: pos, Count: count, Time: s.now}
	pb.lastLastClickTime = pb.lastClickTime
	pb.lastClickTime = s.now
	pb.hasEarlierClick = pb.hasClick
	pb.hasClick = true
}

// PointerClicked returns true if a full click (press and release without
// moving more than MaxClickDist) completed this frame.
func (s *InputState) PointerClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.pointer[button].click != nil
}

// ClickCount returns 1, 2 or 3 for a single, double or triple click
// completed this frame, or 0 if none.
func (s *InputState) ClickCount(button MouseButton) int {
	if button < 0 || button >= MouseButtonCount {
		return 0
	}
	if c := s.pointer[button].click; c != nil {
		return c.Count
	}
	return 0
}

// DoubleClicked returns true if a double-click completed this frame.
func (s *InputState) DoubleClicked(button MouseButton) bool {
	return s.ClickCount(button) == 2
}

// TripleClicked returns true if a triple-click completed this frame.
func (s *InputState) TripleClicked(button MouseButton) bool {
	return s.ClickCount(button) == 3
}

// LastClick returns the click completed this frame for the button, or nil.
func (s *InputState) LastClick(button MouseButton) *Click {
	if button < 0 || button >= MouseButtonCount {
		return nil
	}
	return s.pointer[button].click
}

// IsDecidedlyDragging returns true if a button is held and the pointer has
// moved beyond the click threshold, so the interaction can no longer
// become a click.
func (s *InputState) IsDecidedlyDragging(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button] && s.pointer[button].movedTooMuch
}

// PressOrigin returns where the button was last pressed.
func (s *InputState) PressOrigin(button MouseButton) Vec2 {
	if button < 0 || button >= MouseButtonCount {
		return Vec2{}
	}
	return s.pointer[button].pressOrigin
}

// Velocity returns the pointer velocity in points per second, estimated
// over the recent position history. Zero when the pointer is still or the
// history is too sparse.
func (s *InputState) Velocity() Vec2 {
	return s.history.velocity()
}

// MousePos returns the pointer position as a Vec2.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}
