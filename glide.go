package glide

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// colorToRGBA converts c to an 8-bit non-premultiplied color.
func colorToRGBA(c Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for pointer positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector used for camera and mesh state written by a RenderLoop.
type Vec3 struct {
	X, Y, Z float64
}

// Rect is an axis-aligned rectangle in document coordinates. The origin is
// the top-left of the document, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Bottom returns the Y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Direction is the sign of scroll movement.
type Direction int8

const (
	DirectionNone     Direction = 0  // no movement this frame
	DirectionForward  Direction = 1  // scrolling down the document
	DirectionBackward Direction = -1 // scrolling back up
)

// String returns "forward", "backward" or "none".
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// ScrollState is the scroll position shared by every stage of a frame.
// Raw is where input has asked the page to be; Virtual is the smoothed
// position everything renders against; Velocity is the signed per-frame
// change of Virtual.
type ScrollState struct {
	Raw      float64
	Virtual  float64
	Velocity float64
}

// Direction reports which way Virtual moved in the last frame.
func (s ScrollState) Direction() Direction {
	switch {
	case s.Velocity > 0:
		return DirectionForward
	case s.Velocity < 0:
		return DirectionBackward
	default:
		return DirectionNone
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
