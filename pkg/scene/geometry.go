package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2D coordinate, either in screen pixels or scene units depending
// on context.
type Point = r2.Vec

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Finite reports whether both coordinates of p are real numbers.
func Finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Size is a viewport extent in screen pixels.
type Size struct {
	Width  float64
	Height float64
}

// Contains reports whether p lies within [0,W]x[0,H], edges included.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= s.Width && p.Y <= s.Height
}

// Empty reports whether the size has no area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Center returns the middle of the viewport.
func (s Size) Center() Point {
	return Pt(s.Width/2, s.Height/2)
}

// Bounds is an axis-aligned rectangle in scene units.
type Bounds struct {
	Min Point
	Max Point
}

// Empty reports whether the bounds enclose nothing.
func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Width of the bounds.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height of the bounds.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Point {
	return r2.Scale(0.5, r2.Add(b.Min, b.Max))
}

// Expand grows the bounds to include p.
func (b *Bounds) Expand(p Point) {
	if b.Empty() {
		b.Min, b.Max = p, p
		return
	}
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
}

// emptyBounds returns bounds that report Empty until expanded.
func emptyBounds() Bounds {
	return Bounds{
		Min: Pt(math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1)),
	}
}
