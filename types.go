// Package gui provides an immediate-mode GUI library inspired by Dear ImGui.
// It uses a dedicated Context type (not context.Context) for better performance
// and type safety.
package gui

import "math"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of the vector.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Distance returns the distance between two points.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Normalized returns the unit vector in the same direction,
// or the zero vector if the length is zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{X: r.X + r.W, Y: r.Y + r.H}
}

// Expand returns the rectangle grown by amount on all sides.
// A negative amount shrinks it.
func (r Rect) Expand(amount float32) Rect {
	return Rect{X: r.X - amount, Y: r.Y - amount, W: r.W + 2*amount, H: r.H + 2*amount}
}

// Translate returns the rectangle moved by delta.
func (r Rect) Translate(delta Vec2) Rect {
	return Rect{X: r.X + delta.X, Y: r.Y + delta.Y, W: r.W, H: r.H}
}

// Union returns the smallest rectangle containing both rectangles.
// A zero-size rectangle at the origin is treated as empty.
func (r Rect) Union(other Rect) Rect {
	if r.W <= 0 && r.H <= 0 {
		return other
	}
	if other.W <= 0 && other.H <= 0 {
		return r
	}
	x1 := minf(r.X, other.X)
	y1 := minf(r.Y, other.Y)
	x2 := maxf(r.X+r.W, other.X+other.W)
	y2 := maxf(r.Y+r.H, other.Y+other.H)
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// IntersectsRay returns true if a ray from origin along dir hits the rectangle.
// dir does not need to be normalized. Used for "is the pointer heading
// toward this rect" tests.
func (r Rect) IntersectsRay(origin, dir Vec2) bool {
	if r.Contains(origin) {
		return true
	}
	tMin := float32(0)
	tMax := float32(1e9)

	for axis := 0; axis < 2; axis++ {
		var o, d, lo, hi float32
		if axis == 0 {
			o, d, lo, hi = origin.X, dir.X, r.X, r.X+r.W
		} else {
			o, d, lo, hi = origin.Y, dir.Y, r.Y, r.Y+r.H
		}
		if d == 0 {
			if o < lo || o > hi {
				return false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = maxf(tMin, t1)
		tMax = minf(tMax, t2)
	}
	return tMin <= tMax
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorCyan        uint32 = 0xFFFFFF00
	ColorMagenta     uint32 = 0xFFFF00FF
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255),
		uint8(clampf(g, 0, 1)*255),
		uint8(clampf(b, 0, 1)*255),
		uint8(clampf(a, 0, 1)*255),
	)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// absf returns the absolute value of a float32.
func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// remapf linearly remaps v from the range [fromMin, fromMax] to [toMin, toMax].
// A degenerate source range maps everything to toMin.
func remapf(v, fromMin, fromMax, toMin, toMax float32) float32 {
	if fromMax == fromMin {
		return toMin
	}
	t := (v - fromMin) / (fromMax - fromMin)
	return toMin + t*(toMax-toMin)
}
