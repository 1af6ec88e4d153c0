package gui

// Atomic is one element in a short intra-widget run: a text span, an icon
// or any custom-measured slot. Atomics are laid out left to right by
// AtomicLayout.
type Atomic struct {
	// Text, if non-empty, makes this a text atomic measured with the
	// context's font. Otherwise Size gives the atomic's fixed size.
	Text string
	Size Vec2

	// Grow atomics share the leftover width evenly after everything has
	// its preferred size.
	Grow bool

	// Shrink marks this atomic to absorb a width deficit (wrapping or
	// truncating its text). At most one atomic per layout may shrink.
	Shrink bool
}

// AtomicLayout sizes and places a run of atomics inside one widget, e.g.
// "icon, label, spacer, shortcut hint" inside a button.
type AtomicLayout struct {
	Atomics []Atomic
	Gap     float32

	// Wrap allows the shrink atomic's text to wrap to multiple lines.
	// When set and no atomic is marked Shrink, the first text atomic is
	// auto-selected.
	Wrap bool

	// AlignH/AlignV place the content run inside the allocated frame.
	AlignH Alignment
	AlignV Alignment
}

// AtomicSolution is the result of solving an AtomicLayout for a given
// available size.
type AtomicSolution struct {
	// Size is the final content size after growth.
	Size Vec2

	// IntrinsicSize is the preferred size before any shrinking, used for
	// parent sizing negotiations.
	IntrinsicSize Vec2

	// Sizes holds each atomic's solved size, in input order.
	Sizes []Vec2
}

// Solve computes per-atomic sizes for the given available space.
//
// Non-shrink atomics are measured first at their preferred size. The one
// shrink atomic then gets whatever width remains (clamped at zero).
// Leftover space after that is split evenly among grow atomics.
func (al *AtomicLayout) Solve(ctx *Context, available Vec2) AtomicSolution {
	n := len(al.Atomics)
	if n == 0 {
		return AtomicSolution{}
	}

	shrinkIdx := -1
	for i := range al.Atomics {
		if al.Atomics[i].Shrink {
			shrinkIdx = i
			break
		}
	}
	if shrinkIdx < 0 && al.Wrap {
		// Something has to give when wrapping is on; default to the
		// first text atomic.
		for i := range al.Atomics {
			if al.Atomics[i].Text != "" {
				shrinkIdx = i
				break
			}
		}
	}

	sol := AtomicSolution{Sizes: make([]Vec2, n)}
	gapTotal := al.Gap * float32(n-1)

	// First pass: everything except the shrink atomic at preferred size.
	desired := gapTotal
	intrinsicW := gapTotal
	growCount := 0
	for i := range al.Atomics {
		a := &al.Atomics[i]
		size := a.Size
		if a.Text != "" {
			size = ctx.MeasureText(a.Text)
		}
		if a.Grow {
			growCount++
		}
		intrinsicW += size.X
		sol.IntrinsicSize.Y = maxf(sol.IntrinsicSize.Y, size.Y)
		if i == shrinkIdx {
			continue
		}
		sol.Sizes[i] = size
		desired += size.X
	}
	sol.IntrinsicSize.X = intrinsicW

	// Second pass: the shrink atomic gets the clamped remainder.
	if shrinkIdx >= 0 {
		remaining := maxf(available.X-desired, 0)
		a := &al.Atomics[shrinkIdx]
		size := a.Size
		if a.Text != "" {
			if al.Wrap {
				size = MeasureWrappedText(ctx, a.Text, remaining, WrapModeAuto)
			} else {
				size = ctx.MeasureText(TextWidthEllipsis(ctx, a.Text, remaining))
			}
		}
		size.X = minf(size.X, remaining)
		sol.Sizes[shrinkIdx] = size
		desired += size.X
	}

	// Third pass: distribute leftover width among grow atomics.
	if growCount > 0 {
		extra := maxf(available.X-desired, 0) / float32(growCount)
		if extra > 0 {
			for i := range al.Atomics {
				if al.Atomics[i].Grow {
					sol.Sizes[i].X += extra
					desired += extra
				}
			}
		}
	}

	sol.Size.X = desired
	for _, s := range sol.Sizes {
		sol.Size.Y = maxf(sol.Size.Y, s.Y)
	}
	return sol
}

// Place positions the solved atomics inside frame, returning one rect per
// atomic. The run as a whole is aligned per AlignH/AlignV and each atomic
// is centered vertically in its slot.
func (sol *AtomicSolution) Place(al *AtomicLayout, frame Rect) []Rect {
	rects := make([]Rect, len(sol.Sizes))
	if len(sol.Sizes) == 0 {
		return rects
	}

	x := frame.X
	switch al.AlignH {
	case AlignCenter:
		x += maxf(frame.W-sol.Size.X, 0) / 2
	case AlignEnd:
		x += maxf(frame.W-sol.Size.X, 0)
	}

	baseY := frame.Y
	switch al.AlignV {
	case AlignCenter:
		baseY += maxf(frame.H-sol.Size.Y, 0) / 2
	case AlignEnd:
		baseY += maxf(frame.H-sol.Size.Y, 0)
	}

	for i, size := range sol.Sizes {
		y := baseY + (sol.Size.Y-size.Y)/2
		rects[i] = Rect{X: x, Y: y, W: size.X, H: size.Y}
		x += size.X + al.Gap
	}
	return rects
}
