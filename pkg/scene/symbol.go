package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Symbol footprint in scene units. The anchor (Position) is the top-left
// corner of the unrotated footprint and the rotation pivot.
const (
	SymbolWidth  = 60.0
	SymbolHeight = 20.0
)

// Symbol is one placed circuit component.
type Symbol struct {
	ID       string
	Kind     Kind
	Position Point
	Rotation int
	Locked   bool
}

// Corners returns the four footprint corners in scene coordinates, taking
// rotation about the anchor into account.
func (s Symbol) Corners() [4]Point {
	theta := float64(s.Rotation) * math.Pi / 180
	local := [4]Point{
		Pt(0, 0),
		Pt(SymbolWidth, 0),
		Pt(SymbolWidth, SymbolHeight),
		Pt(0, SymbolHeight),
	}
	var out [4]Point
	for i, p := range local {
		out[i] = r2.Rotate(r2.Add(s.Position, p), theta, s.Position)
	}
	return out
}

// Bounds returns the axis-aligned box enclosing the rotated footprint.
func (s Symbol) Bounds() Bounds {
	b := emptyBounds()
	for _, c := range s.Corners() {
		b.Expand(c)
	}
	return b
}

// Contains reports whether the scene point p falls on the symbol footprint.
func (s Symbol) Contains(p Point) bool {
	theta := float64(s.Rotation) * math.Pi / 180
	local := r2.Sub(r2.Rotate(p, -theta, s.Position), s.Position)
	const eps = 1e-9
	return local.X >= -eps && local.Y >= -eps &&
		local.X <= SymbolWidth+eps && local.Y <= SymbolHeight+eps
}

// SymbolAt returns the topmost symbol under the scene point p. Later
// symbols are drawn above earlier ones, so the search runs backwards.
func SymbolAt(symbols []Symbol, p Point) (Symbol, bool) {
	for i := len(symbols) - 1; i >= 0; i-- {
		if symbols[i].Contains(p) {
			return symbols[i], true
		}
	}
	return Symbol{}, false
}

// ContentBounds returns the union of every symbol's footprint.
func ContentBounds(symbols []Symbol) Bounds {
	b := emptyBounds()
	for _, s := range symbols {
		sb := s.Bounds()
		b.Expand(sb.Min)
		b.Expand(sb.Max)
	}
	return b
}
