package gui

// Renderer consumes the frame's draw data. backend/opengl provides the
// GL implementation; tests use a no-op renderer.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI owns the context, style and renderer for one UI instance.
type GUI struct {
	renderer     Renderer
	stateStore   StateStore
	style        Style
	ctx          *Context
	fontProvider FontProvider
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithStateStore replaces the default widget state store.
func WithStateStore(store StateStore) GUIOption {
	return func(g *GUI) { g.stateStore = store }
}

// New creates a GUI with the default style and an in-memory state store.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer:   renderer,
		stateStore: make(MapStateStore),
		style:      DefaultStyle(),
		ctx:        NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a frame and returns the context to draw with. Call before
// any widget.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	ctx.DrawList = AcquireDrawList()
	// Popups and dropdowns render into the foreground list, on top
	ctx.ForegroundDrawList = AcquireDrawList()

	ctx.Input = input
	ctx.stateStore = g.stateStore
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()

	if g.fontProvider != nil {
		ctx.SetFontProvider(g.fontProvider)
	}

	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End renders the frame and returns the draw lists to the pool. The
// frame's Output batch stays readable until the next Begin.
func (g *GUI) End() error {
	ctx := g.ctx
	if ctx.DrawList == nil {
		return nil
	}

	// A press that no selectable label claimed clears the selection slot.
	ctx.endSelectionFrame()

	err := g.renderer.Render(ctx.DrawList)
	if err != nil {
		return err
	}
	if ctx.ForegroundDrawList != nil && len(ctx.ForegroundDrawList.CmdBuffer) > 0 {
		err = g.renderer.Render(ctx.ForegroundDrawList)
	}

	ReleaseDrawList(ctx.DrawList)
	ctx.DrawList = nil
	if ctx.ForegroundDrawList != nil {
		ReleaseDrawList(ctx.ForegroundDrawList)
		ctx.ForegroundDrawList = nil
	}

	return err
}

// Context returns the context. Valid between Begin and End.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Output returns the frame's platform request batch: cursor icon to set,
// text to copy, URLs to open, repaint scheduling. The bridge consumes it
// after End.
func (g *GUI) Output() *Output {
	return &g.ctx.Output
}

// Style returns the current style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle replaces the style from the next frame on.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize forwards a display size change to the renderer.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}

// SetFontProvider installs a font provider, passed to each frame's
// context.
func (g *GUI) SetFontProvider(fp FontProvider) {
	g.fontProvider = fp
}

// FontProvider returns the installed provider, or nil.
func (g *GUI) FontProvider() FontProvider {
	return g.fontProvider
}

// PrepareInputHandling swaps the focus registry's buffers for a new
// frame. Call at the start of the frame, before any panel HandleInput:
// panels navigate against the widgets registered last frame, while this
// frame's draw pass fills the other buffer. Uses the same frame count as
// the Context.Reset that follows.
func (g *GUI) PrepareInputHandling() {
	if g.ctx == nil {
		return
	}
	g.ctx.FrameCount++

	if g.ctx.focusRegistry != nil {
		g.ctx.focusRegistry.ResetForFrame(g.ctx.FrameCount)
	}
}
