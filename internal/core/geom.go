// Package core provides fundamental types and utilities for the tanks platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle used for drawing on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is an axis-aligned box in arena (world) units.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a box from its top-left corner and size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Centered creates a box of the given size centered on (cx, cy).
func Centered(cx, cy, w, h float64) RectF {
	return RectF{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether both projections overlap strictly.
// Touching edges do not count as overlap.
func (r RectF) Intersects(other RectF) bool {
	return r.Right() > other.X && other.Right() > r.X &&
		r.Bottom() > other.Y && other.Bottom() > r.Y
}

// SpanY reports whether the vertical interval [top, bottom] overlaps r strictly.
func (r RectF) SpanY(top, bottom float64) bool {
	return r.Bottom() > top && bottom > r.Y
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
