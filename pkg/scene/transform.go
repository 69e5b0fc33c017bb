package scene

import "math"

// View limits and step factors.
const (
	MinScale = 0.1
	MaxScale = 5.0

	// WheelZoomFactor is applied once per wheel notch.
	WheelZoomFactor = 1.1
	// StepZoomFactor is applied by the toolbar zoom buttons.
	StepZoomFactor = 1.2

	// PanLimit bounds the offset on each axis as a fraction of the viewport.
	PanLimit = 0.5

	// fitPadding leaves a margin around content when fitting the view.
	fitPadding = 0.9
	// emptyFitScale is used by Fit when there is no content to frame.
	emptyFitScale = 0.8
)

// Transform maps scene coordinates to screen pixels:
//
//	screen = scene*Scale + Offset
type Transform struct {
	Offset Point
	Scale  float64
}

// IdentityTransform returns the reset view: scale 1, no offset.
func IdentityTransform() Transform {
	return Transform{Scale: 1}
}

// ToScene converts a screen point into scene coordinates.
func (t Transform) ToScene(p Point) Point {
	return Pt((p.X-t.Offset.X)/t.Scale, (p.Y-t.Offset.Y)/t.Scale)
}

// ToScreen converts a scene point into screen coordinates.
func (t Transform) ToScreen(p Point) Point {
	return Pt(p.X*t.Scale+t.Offset.X, p.Y*t.Scale+t.Offset.Y)
}

// ZoomAt scales by factor while keeping the scene point under the screen
// point p stationary. The resulting scale is clamped to [MinScale, MaxScale].
func (t Transform) ZoomAt(p Point, factor float64) Transform {
	oldScale := t.Scale
	newScale := clampScale(oldScale * factor)

	// Scene point currently under the cursor
	anchor := t.ToScene(p)

	// Move the offset so the anchor maps back onto p
	return Transform{
		Offset: Pt(p.X-anchor.X*newScale, p.Y-anchor.Y*newScale),
		Scale:  newScale,
	}
}

// PanBy shifts the offset by a screen delta and clamps each axis to
// ±PanLimit of the viewport.
func (t Transform) PanBy(dx, dy float64, viewport Size) Transform {
	limitX := viewport.Width * PanLimit
	limitY := viewport.Height * PanLimit
	t.Offset.X = clamp(t.Offset.X+dx, -limitX, limitX)
	t.Offset.Y = clamp(t.Offset.Y+dy, -limitY, limitY)
	return t
}

// Fit frames content within the viewport. Empty content falls back to the
// default framing of scale 0.8 with a tenth of the viewport as offset.
func Fit(content Bounds, viewport Size) Transform {
	if content.Empty() || viewport.Empty() {
		return Transform{
			Offset: Pt(viewport.Width/10, viewport.Height/10),
			Scale:  emptyFitScale,
		}
	}

	// Pick the smaller axis scale so everything fits, with padding
	width := math.Max(content.Width(), SymbolHeight)
	height := math.Max(content.Height(), SymbolHeight)
	scale := clampScale(math.Min(
		viewport.Width*fitPadding/width,
		viewport.Height*fitPadding/height,
	))

	// Centre the content
	c := content.Center()
	vc := viewport.Center()
	return Transform{
		Offset: Pt(vc.X-c.X*scale, vc.Y-c.Y*scale),
		Scale:  scale,
	}
}

func clampScale(s float64) float64 {
	if math.IsNaN(s) {
		return 1
	}
	return clamp(s, MinScale, MaxScale)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
