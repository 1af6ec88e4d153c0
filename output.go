package gui

import "math"

// CursorIcon names the pointer shape the host window should show.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorPointer
	CursorText
	CursorCrosshair
	CursorMove
	CursorGrab
	CursorGrabbing
	CursorResizeHorizontal
	CursorResizeVertical
	CursorResizeNWSE
	CursorResizeNESW
	CursorNotAllowed
	CursorWait
)

// OpenURL asks the host to open a link.
type OpenURL struct {
	URL    string
	NewTab bool
}

// OutputEventKind classifies events collected for accessibility hosts.
type OutputEventKind int

const (
	EventClicked OutputEventKind = iota
	EventValueChanged
	EventFocusGained
)

// OutputEvent is one interaction the host may want to announce.
type OutputEvent struct {
	Kind  OutputEventKind
	ID    ID
	Value string
}

// Output is the per-frame batch of requests the core hands back to the
// platform bridge alongside the draw data. The bridge consumes it after
// End: sets the cursor, copies text, opens URLs, schedules the next frame.
type Output struct {
	CursorIcon CursorIcon
	OpenURL    *OpenURL

	// CopiedText is non-empty if something was copied or cut this frame.
	CopiedText string

	// IMERect is where the OS should place composition UI, if text
	// editing is active.
	IMERect *Rect

	Events []OutputEvent

	// repaintAfter is the requested delay in seconds until the next
	// frame; +Inf means no repaint is needed.
	repaintAfter float64
}

// NewOutput returns an empty batch with no repaint requested. Use this
// instead of the zero value, whose repaint delay reads as zero.
func NewOutput() Output {
	return Output{repaintAfter: math.Inf(1)}
}

func newOutput() Output {
	return NewOutput()
}

// RequestRepaint asks for a new frame as soon as possible.
func (o *Output) RequestRepaint() {
	o.repaintAfter = 0
}

// RequestRepaintAfter asks for a new frame within d seconds. An earlier
// outstanding request wins.
func (o *Output) RequestRepaintAfter(d float64) {
	if d < o.repaintAfter {
		o.repaintAfter = d
	}
}

// NeedsRepaint returns true if a repaint was requested this frame.
func (o *Output) NeedsRepaint() bool {
	return !math.IsInf(o.repaintAfter, 1)
}

// RepaintAfter returns the requested repaint delay in seconds, or +Inf.
func (o *Output) RepaintAfter() float64 {
	return o.repaintAfter
}

// PushEvent records an interaction event for the host.
func (o *Output) PushEvent(ev OutputEvent) {
	o.Events = append(o.Events, ev)
}

// Merge folds a later batch into this one: last cursor wins, earliest
// repaint wins, text and events accumulate.
func (o *Output) Merge(other Output) {
	if other.CursorIcon != CursorDefault {
		o.CursorIcon = other.CursorIcon
	}
	if other.OpenURL != nil {
		o.OpenURL = other.OpenURL
	}
	if other.CopiedText != "" {
		o.CopiedText = other.CopiedText
	}
	if other.IMERect != nil {
		o.IMERect = other.IMERect
	}
	o.Events = append(o.Events, other.Events...)
	if other.repaintAfter < o.repaintAfter {
		o.repaintAfter = other.repaintAfter
	}
}
