package gui

// FontProvider abstracts font loading and selection so the package
// never depends on a concrete font implementation. Applications inject
// one (bitmap fonts, system fonts, a mock for tests):
//
//	fontMgr := font.NewManager()
//	fontMgr.LoadFonts(dir)
//	ctx.SetFontProvider(fontMgr)
type FontProvider interface {
	// ActiveFont returns the font used for rendering, nil when none is
	// loaded.
	ActiveFont() Font

	// SetActiveFont switches fonts by name; unknown names error.
	SetActiveFont(name string) error
}

// Font measures text and produces textured quads for it.
// Implementations should rasterize into a texture atlas ahead of time,
// not per frame.
type Font interface {
	// TextureID returns the GL texture of the atlas; bind it before
	// rendering the quads.
	TextureID() uint32

	// HasGlyph reports whether the font covers r, for fallback logic.
	HasGlyph(r rune) bool

	// MeasureText returns the pixel size of text at scale.
	MeasureText(text string, scale float32) FontVec2

	// GetGlyphQuads returns one quad per glyph at the given origin. The
	// slice is reused; consume it before the next call.
	GetGlyphQuads(text string, x, y, scale float32) []FontGlyphQuad

	// LineHeight returns the line advance at scale.
	LineHeight(scale float32) float32
}

// FontVec2 mirrors the font package's vector type so neither package
// imports the other.
type FontVec2 struct {
	X, Y float32
}

// FontGlyphQuad is one glyph's screen rectangle and texture window.
type FontGlyphQuad struct {
	X0, Y0 float32
	X1, Y1 float32

	U0, V0 float32
	U1, V1 float32
}
