package gui_test

import (
	"testing"

	"github.com/frameloop/gui"
)

// mockRenderer counts Render calls and draws nothing.
type mockRenderer struct {
	frames int
}

func (r *mockRenderer) Render(dl *gui.DrawList) error {
	r.frames++
	return nil
}

func (r *mockRenderer) FontTextureID() uint32 { return 1 }

func (r *mockRenderer) Resize(width, height int) {}

func newTestUI(opts ...gui.GUIOption) (*gui.GUI, *gui.InputState, *mockRenderer) {
	renderer := &mockRenderer{}
	return gui.New(renderer, opts...), gui.NewInputState(), renderer
}

func TestFrameLifecycle(t *testing.T) {
	ui, input, renderer := newTestUI(gui.WithStyle(gui.ArcadeStyle()))

	ctx := ui.Begin(input, gui.Vec2{X: 1920, Y: 1080}, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	ctx.Text("Hello World")
	ctx.TextColored("Colored", gui.ColorYellow)

	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	if renderer.frames != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.frames)
	}
}

func TestButtonIdleReturnsFalse(t *testing.T) {
	ui, input, _ := newTestUI()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.Button("Test Button") {
		t.Error("button should not report a click without mouse input")
	}
	_ = ui.End()
}

func TestButtonIgnoresFarAwayClick(t *testing.T) {
	ui, input, _ := newTestUI()

	input.SetMousePos(700, 500)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	clicked := ctx.Button("Click Me")
	_ = ui.End()

	if clicked {
		t.Error("button at the layout origin should not see a click at 700,500")
	}
}

func TestPanelWithContent(t *testing.T) {
	ui, input, _ := newTestUI()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Panel("Test Panel", gui.Gap(8), gui.Padding(12))(func() {
		ctx.Text("Line 1")
		ctx.Text("Line 2")
	})
	_ = ui.End()
}

func TestListBoxSelectables(t *testing.T) {
	ui, input, _ := newTestUI()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	selected := 1
	items := []string{"Item 0", "Item 1", "Item 2"}
	ctx.ListBox("list", 200, gui.Gap(4))(func() {
		for i, item := range items {
			if ctx.Selectable(item, i == selected, gui.WithID(item)) {
				selected = i
			}
		}
	})

	_ = ui.End()

	if selected != 1 {
		t.Errorf("selection changed without input: got %d", selected)
	}
}

func TestInputTextUnfocusedIgnoresChars(t *testing.T) {
	ui, input, _ := newTestUI()

	input.AddInputChar('H')
	input.AddInputChar('i')

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	value := ""
	ctx.InputText("Label", &value)
	_ = ui.End()

	if value != "" {
		t.Errorf("unfocused field should not take typed chars, got %q", value)
	}
}

func TestCheckboxIdleKeepsValue(t *testing.T) {
	ui, input, _ := newTestUI()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	checked := false
	ctx.Checkbox("Enable", &checked)
	_ = ui.End()

	if checked {
		t.Error("checkbox should remain unchecked without a click")
	}
}

func TestFocusOverlayHotkey(t *testing.T) {
	ui, input, _ := newTestUI()

	input.SetKey(gui.KeyF10, true)
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if !ctx.DebugFocusHighlight {
		t.Fatal("F10 should switch the focus overlay on")
	}
	_ = ui.End()

	// Held key is not a fresh press; the overlay must not flicker off.
	input.Reset()
	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if !ctx.DebugFocusHighlight {
		t.Error("overlay should stay on while F10 is held")
	}
	_ = ui.End()

	input.Reset()
	input.SetKey(gui.KeyF10, false)
	input.SetKey(gui.KeyF10, true)
	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.DebugFocusHighlight {
		t.Error("second F10 press should switch the overlay off")
	}
	_ = ui.End()
}

func TestNestedStacks(t *testing.T) {
	ui, input, _ := newTestUI()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.VStack(gui.Gap(10))(func() {
		ctx.HStack(gui.Gap(5))(func() {
			ctx.Text("Label:")
			ctx.Text("Value")
		})
		ctx.Text("Below")
	})
	_ = ui.End()
}

func TestDrawListPoolClearsOnReuse(t *testing.T) {
	dl1 := gui.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}
	dl1.AddRect(0, 0, 100, 100, gui.ColorWhite)
	gui.ReleaseDrawList(dl1)

	dl2 := gui.AcquireDrawList()
	if dl2 == nil {
		t.Fatal("expected non-nil DrawList after release")
	}
	if len(dl2.VtxBuffer) != 0 {
		t.Error("reused DrawList should come back empty")
	}
	gui.ReleaseDrawList(dl2)
}

func TestIDAutoIncrement(t *testing.T) {
	ui, input, _ := newTestUI()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.GetID("button") == ctx.GetID("button") {
		t.Error("repeated label should get distinct IDs from the per-frame counter")
	}
	_ = ui.End()
}

func TestIDScopes(t *testing.T) {
	ui, input, _ := newTestUI()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	ctx.PushID("section1")
	id1 := ctx.GetID("item")
	ctx.PopID()

	ctx.PushID("section2")
	id2 := ctx.GetID("item")
	ctx.PopID()

	if id1 == id2 {
		t.Error("same label under different ID scopes should differ")
	}
	_ = ui.End()
}

func TestStateStoreRoundTrip(t *testing.T) {
	ui, input, _ := newTestUI()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	id := ctx.GetID("test_state")
	gui.SetState(ctx, id, float32(42.5))
	if got := gui.GetState(ctx, id, float32(0)); got != 42.5 {
		t.Errorf("expected 42.5, got %v", got)
	}
	if got := gui.GetState(ctx, ctx.GetID("nonexistent"), float32(99)); got != 99 {
		t.Errorf("expected default 99, got %v", got)
	}
	_ = ui.End()
}

func TestBuiltinStyles(t *testing.T) {
	styles := map[string]gui.Style{
		"default": gui.DefaultStyle(),
		"arcade":  gui.ArcadeStyle(),
		"dark":    gui.DarkStyle(),
		"light":   gui.LightStyle(),
	}
	for name, style := range styles {
		if style.TextColor == 0 {
			t.Errorf("%s style has zero TextColor", name)
		}
		if style.CharWidth == 0 {
			t.Errorf("%s style has zero CharWidth", name)
		}
	}
}

func TestColorPacking(t *testing.T) {
	c := gui.RGBA(255, 128, 64, 200)
	r, g, b, a := gui.UnpackRGBA(c)
	if r != 255 || g != 128 || b != 64 || a != 200 {
		t.Errorf("RGBA roundtrip failed: got %d,%d,%d,%d", r, g, b, a)
	}

	c2 := gui.RGBAf(1.0, 0.5, 0.25, 0.8)
	r2, g2, b2, a2 := gui.UnpackRGBA(c2)
	// float conversion rounds
	if r2 != 255 || g2 < 127 || g2 > 128 || b2 < 63 || b2 > 64 || a2 < 203 || a2 > 204 {
		t.Errorf("RGBAf conversion unexpected: got %d,%d,%d,%d", r2, g2, b2, a2)
	}
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddRect(float32(i%100), float32(i%100), 50, 50, gui.ColorWhite)
	}
}

func BenchmarkDrawListAddText(b *testing.B) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddText(0, float32(i%100*10), "Hello World", gui.ColorWhite, 1.0, 8, 8)
	}
}

func BenchmarkFullFrame(b *testing.B) {
	ui, input, _ := newTestUI()
	displaySize := gui.Vec2{X: 1920, Y: 1080}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(input, displaySize, 0.016)
		ctx.Panel("Menu", gui.Gap(8))(func() {
			ctx.Text("Title")
			for j := 0; j < 10; j++ {
				ctx.Selectable("Item", false)
			}
		})
		_ = ui.End()
	}
}
