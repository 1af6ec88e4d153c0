// Package ebitengine provides an Ebitengine backend for the GUI package,
// useful on platforms without a raw OpenGL context (browsers, mobile).
package ebitengine

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/frameloop/gui"
)

// Renderer implements gui.Renderer on an ebiten.Image target.
//
// Texture IDs are renderer-local handles into an image table, with the
// builtin font registered first.
type Renderer struct {
	width, height int
	target        *ebiten.Image

	textures map[uint32]*ebiten.Image
	nextID   uint32
	fontTex  uint32

	// 1x1 white image for untextured draws.
	white *ebiten.Image

	// Scratch buffers reused across Render calls.
	vtx []ebiten.Vertex
	idx []uint16
}

// NewRenderer creates a renderer for the given logical size.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		width:    width,
		height:   height,
		textures: make(map[uint32]*ebiten.Image),
		nextID:   1,
		white:    ebiten.NewImage(1, 1),
	}
	r.white.Fill(color.White)
	r.fontTex = r.RegisterTexture(buildFontImage())
	return r
}

// buildFontImage uploads the builtin atlas as premultiplied white-on-
// transparent, so vertex color modulation yields the text color.
func buildFontImage() *ebiten.Image {
	w, h := gui.BuiltinFontAtlasWidth, gui.BuiltinFontAtlasHeight
	coverage := gui.BuiltinFontPixels()

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, c := range coverage {
		rgba.Pix[i*4+0] = c
		rgba.Pix[i*4+1] = c
		rgba.Pix[i*4+2] = c
		rgba.Pix[i*4+3] = c
	}
	return ebiten.NewImageFromImage(rgba)
}

// RegisterTexture adds an image to the texture table and returns its
// handle for use in draw commands.
func (r *Renderer) RegisterTexture(img *ebiten.Image) uint32 {
	id := r.nextID
	r.nextID++
	r.textures[id] = img
	return id
}

// FontTextureID returns the handle of the builtin font atlas.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// Resize updates the logical size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// SetTarget points the renderer at this frame's screen image. Call from
// the game's Draw before gui.End.
func (r *Renderer) SetTarget(screen *ebiten.Image) {
	r.target = screen
}

// Render draws the GUI draw list onto the current target.
func (r *Renderer) Render(dl *gui.DrawList) error {
	if r.target == nil || dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	opts := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	}

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}

		src := r.white
		if cmd.TextureID != 0 {
			if img, ok := r.textures[cmd.TextureID]; ok {
				src = img
			}
		}
		srcW := float32(src.Bounds().Dx())
		srcH := float32(src.Bounds().Dy())

		// Indices are relative to the command's base vertex.
		base := cmd.VertexOffset
		end := cmd.IndexOffset + cmd.ElemCount
		r.idx = r.idx[:0]
		maxVtx := uint32(0)
		for _, i := range dl.IdxBuffer[cmd.IndexOffset:end] {
			r.idx = append(r.idx, i)
			if uint32(i) > maxVtx {
				maxVtx = uint32(i)
			}
		}

		r.vtx = r.vtx[:0]
		for _, v := range dl.VtxBuffer[base : base+maxVtx+1] {
			cr, cg, cb, ca := gui.UnpackRGBA(v.Color)
			sx := v.TexCoord[0] * srcW
			sy := v.TexCoord[1] * srcH
			if src == r.white {
				sx, sy = 0.5, 0.5
			}
			r.vtx = append(r.vtx, ebiten.Vertex{
				DstX:   v.Pos[0],
				DstY:   v.Pos[1],
				SrcX:   sx,
				SrcY:   sy,
				ColorR: float32(cr) / 255,
				ColorG: float32(cg) / 255,
				ColorB: float32(cb) / 255,
				ColorA: float32(ca) / 255,
			})
		}

		// Clipping via subimage: the subimage keeps parent coordinates,
		// so vertex positions need no adjustment.
		dst := r.target
		clip := image.Rect(
			int(cmd.ClipRect[0]), int(cmd.ClipRect[1]),
			int(cmd.ClipRect[2]), int(cmd.ClipRect[3]),
		)
		if !clip.Empty() && clip != dst.Bounds() {
			sub := dst.SubImage(clip.Intersect(dst.Bounds()))
			var ok bool
			if dst, ok = sub.(*ebiten.Image); !ok {
				continue
			}
		}

		dst.DrawTriangles(r.vtx, r.idx, src, opts)
	}
	return nil
}
