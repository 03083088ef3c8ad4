package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle anchored at its min corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Offset returns the rectangle translated by v.
func (r Rect) Offset(v cp.Vector) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, Width: r.Width, Height: r.Height}
}

// Intersects is a strict overlap test: rectangles that only share an edge do
// not intersect, and a rectangle with no area never intersects anything.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.Right(), other.Right()) - x,
		Height: max(r.Bottom(), other.Bottom()) - y,
	}
}

// Corners returns the four corners in the order min-min, min-max, max-min,
// max-max.
func (r Rect) Corners() [4]cp.Vector {
	return [4]cp.Vector{
		{X: r.X, Y: r.Y},
		{X: r.X, Y: r.Bottom()},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
	}
}

// RectFromPoints returns the axis-aligned bounds of the given points.
func RectFromPoints(points [4]cp.Vector) Rect {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Lerp interpolates every field of the rectangle componentwise.
func (r Rect) Lerp(other Rect, t float64) Rect {
	return Rect{
		X:      Lerp(r.X, other.X, t),
		Y:      Lerp(r.Y, other.Y, t),
		Width:  Lerp(r.Width, other.Width, t),
		Height: Lerp(r.Height, other.Height, t),
	}
}
