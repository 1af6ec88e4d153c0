package gui

import (
	"math"
	"testing"
)

func TestVec2LengthIsExact(t *testing.T) {
	cases := []struct {
		v    Vec2
		want float64
	}{
		{Vec2{X: 3, Y: 4}, 5},
		{Vec2{X: 30, Y: 40}, 50},
		{Vec2{X: 50, Y: 50}, math.Sqrt(5000)}, // ~70.71, a pinch-zoom span
		{Vec2{X: 0, Y: 0}, 0},
		{Vec2{X: -6, Y: 8}, 10},
	}
	for _, tc := range cases {
		got := float64(tc.v.Length())
		if math.Abs(got-tc.want) > 1e-3 {
			t.Errorf("Length(%v, %v) = %v, want %v", tc.v.X, tc.v.Y, got, tc.want)
		}
	}
}

func TestVec2Normalized(t *testing.T) {
	n := Vec2{X: 3, Y: 4}.Normalized()
	if math.Abs(float64(n.Length())-1) > 1e-4 {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}
	if n.X <= 0 || n.Y <= 0 || n.Y <= n.X {
		t.Errorf("direction not preserved: %+v", n)
	}
}
