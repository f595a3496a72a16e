package rendering

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in point coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in points.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is too small to rasterize a pixel.
func (s Size) IsEmpty() bool {
	return !(s.Width >= 1) || !(s.Height >= 1)
}

// Scale returns the size multiplied by factor.
func (s Size) Scale(factor float64) Size {
	return Size{Width: s.Width * factor, Height: s.Height * factor}
}

// Pixels returns the integer pixel dimensions covering the size.
func (s Size) Pixels() (int, int) {
	return int(math.Ceil(s.Width - epsilon)), int(math.Ceil(s.Height - epsilon))
}

// MaxDimension returns the larger of width and height.
func (s Size) MaxDimension() float64 {
	return math.Max(s.Width, s.Height)
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Contains reports whether p lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Deflate returns the rectangle shrunk by delta on every side.
func (r Rect) Deflate(delta float64) Rect {
	return Rect{
		Left:   r.Left + delta,
		Top:    r.Top + delta,
		Right:  r.Right - delta,
		Bottom: r.Bottom - delta,
	}
}

// RRect represents a rectangle with a uniform corner radius.
type RRect struct {
	Rect   Rect
	Radius float64
}

// RRectFromRectAndRadius creates a rounded rectangle. The radius is clamped
// to half of the shorter side.
func RRectFromRectAndRadius(rect Rect, radius float64) RRect {
	limit := math.Min(rect.Width(), rect.Height()) / 2
	if radius > limit {
		radius = limit
	}
	if radius < 0 {
		radius = 0
	}
	return RRect{Rect: rect, Radius: radius}
}
