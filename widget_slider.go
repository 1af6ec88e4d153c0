package gui

import (
	"fmt"
	"strings"
)

var sliderStore = NewFrameStore[SliderState]()

// SliderFloat draws a horizontal slider over [minVal, maxVal]. Dragging,
// the mouse wheel, and Left/Right while focused all adjust the value.
// Returns true when the value changed.
//
// Usage:
//
//	if ctx.SliderFloat("Volume", &volume, 0, 1) {
//	    updateVolume(volume)
//	}
func (ctx *Context) SliderFloat(label string, value *float32, minVal, maxVal float32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	state := sliderStore.Get(id, SliderState{})

	labelWidth := float32(0)
	if label != "" {
		labelWidth = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}

	sliderWidth := float32(150)
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		sliderWidth = optWidth
	}

	trackHeight := ctx.lineHeight() * 0.5
	h := ctx.lineHeight()
	grabWidth := float32(12)

	if label != "" {
		ctx.addText(pos.X, pos.Y+(h-ctx.lineHeight())/2, label, ctx.style.TextColor)
	}

	trackX := pos.X + labelWidth
	trackY := pos.Y + (h-trackHeight)/2

	rect := Rect{X: trackX, Y: pos.Y, W: sliderWidth, H: h}

	focusable := ctx.RegisterFocusable(id, label, rect, FocusTypeLeaf)
	isFocused := focusable != nil && focusable.IsFocused()

	hovered := ctx.isHovered(id, rect)
	changed := false

	// The wheel and arrow keys step by OptStep, defaulting to 1% of the
	// range.
	wheelStep := GetOpt(o, OptStep)
	if wheelStep == 0 {
		wheelStep = (maxVal - minVal) / 100
	}

	setValue := func(v float32) {
		v = clampf(v, minVal, maxVal)
		if v != *value {
			*value = v
			changed = true
		}
	}

	if ctx.Input != nil {
		if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
			state.Dragging = true
			state.DragStartX = ctx.Input.MouseX
			state.DragStartValue = *value
		}

		if state.Dragging {
			if ctx.Input.MouseDown(MouseButtonLeft) {
				relX := ctx.Input.MouseX - trackX - grabWidth/2
				ratio := clampf(relX/(sliderWidth-grabWidth), 0, 1)
				newValue := minVal + ratio*(maxVal-minVal)
				if step := GetOpt(o, OptStep); step > 0 {
					newValue = minVal + float32(int((newValue-minVal)/step+0.5))*step
				}
				setValue(newValue)
			} else {
				state.Dragging = false
			}
		}

		if hovered && ctx.Input.MouseWheelY != 0 {
			setValue(*value + ctx.Input.MouseWheelY*wheelStep)
		}

		if isFocused {
			if ctx.Input.KeyRepeated(KeyLeft) {
				setValue(*value - wheelStep)
			}
			if ctx.Input.KeyRepeated(KeyRight) {
				setValue(*value + wheelStep)
			}
		}
	}

	ratio := float32(0)
	if maxVal > minVal {
		ratio = (*value - minVal) / (maxVal - minVal)
	}
	grabX := trackX + ratio*(sliderWidth-grabWidth)

	ctx.DrawList.AddRect(trackX, trackY, sliderWidth, trackHeight, ctx.style.SliderTrackColor)
	if fillWidth := ratio * sliderWidth; fillWidth > 0 {
		ctx.DrawList.AddRect(trackX, trackY, fillWidth, trackHeight, ctx.style.SliderFillColor)
	}

	grabColor := ctx.style.SliderGrabColor
	if state.Dragging {
		grabColor = ctx.style.SliderGrabActive
	} else if hovered || isFocused {
		grabColor = ctx.style.SliderGrabHovered
	}
	ctx.DrawList.AddRect(grabX, pos.Y, grabWidth, h, grabColor)
	ctx.DrawList.AddRectOutline(grabX, pos.Y, grabWidth, h, ctx.style.InputBorderColor, 1)

	valueText := formatSliderValue(GetOpt(o, OptFormat), *value)
	valueWidth := ctx.MeasureText(valueText).X
	ctx.addText(trackX+sliderWidth+ctx.style.ItemSpacing, pos.Y, valueText, ctx.style.TextColor)

	if hovered {
		ctx.Output.CursorIcon = CursorPointer
	}
	if changed {
		ctx.Output.PushEvent(OutputEvent{Kind: EventValueChanged, ID: id, Value: valueText})
	}

	totalWidth := labelWidth + sliderWidth + ctx.style.ItemSpacing + valueWidth
	ctx.advanceCursor(Vec2{totalWidth, h})

	return changed
}

// formatSliderValue renders the value label. A %d format gets the value
// as an int, everything else as float32; the default is "%.2f".
func formatSliderValue(format string, value float32) string {
	if format == "" {
		format = "%.2f"
	}
	if strings.Contains(format, "%d") {
		return fmt.Sprintf(format, int(value))
	}
	return fmt.Sprintf(format, value)
}

// SliderInt draws a slider for int values, stepping by whole numbers.
// Returns true when the value changed.
//
// Usage:
//
//	if ctx.SliderInt("Count", &count, 0, 100) {
//	    updateCount(count)
//	}
func (ctx *Context) SliderInt(label string, value *int, minVal, maxVal int, opts ...Option) bool {
	floatVal := float32(*value)
	opts = append(opts, WithStep(1))

	hasFormat := false
	for _, opt := range opts {
		testOpts := options{}
		opt(&testOpts)
		if GetOpt(testOpts, OptFormat) != "" {
			hasFormat = true
			break
		}
	}
	if !hasFormat {
		opts = append(opts, WithFormat("%d"))
	}

	changed := ctx.SliderFloat(label, &floatVal, float32(minVal), float32(maxVal), opts...)
	if changed {
		*value = int(floatVal)
	}
	return changed
}

// GetSliderState returns the slider's live state, or nil before its
// first frame.
func GetSliderState(ctx *Context, label string) *SliderState {
	return sliderStore.GetIfExists(ctx.GetID(label))
}
