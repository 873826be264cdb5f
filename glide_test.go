package glide

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectBottomAndContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if r.Bottom() != 70 {
		t.Errorf("Bottom = %v, want 70", r.Bottom())
	}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{110, 70, true},
		{60, 45, true},
		{9, 45, false},
		{60, 71, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{Y: 0, Width: 100, Height: 100}
	if !a.Intersects(Rect{Y: 100, Width: 100, Height: 10}) {
		t.Error("adjacent rects should intersect")
	}
	if a.Intersects(Rect{Y: 101, Width: 100, Height: 10}) {
		t.Error("disjoint rects should not intersect")
	}
}

func TestScrollStateDirection(t *testing.T) {
	tests := []struct {
		vel  float64
		want Direction
	}{
		{3, DirectionForward},
		{-0.5, DirectionBackward},
		{0, DirectionNone},
	}
	for _, tt := range tests {
		if got := (ScrollState{Velocity: tt.vel}).Direction(); got != tt.want {
			t.Errorf("Direction(vel=%v) = %v, want %v", tt.vel, got, tt.want)
		}
	}
	if DirectionBackward.String() != "backward" {
		t.Errorf("String = %q", DirectionBackward.String())
	}
}

func TestColorToRGBA(t *testing.T) {
	c := colorToRGBA(Color{R: 1, G: 0.5, B: 0, A: 2})
	if c.R != 255 || c.G != 128 || c.B != 0 || c.A != 255 {
		t.Errorf("colorToRGBA = %+v", c)
	}
}
