// Package interact turns raw pointer and key input into scene actions.
// It has no knowledge of the windowing toolkit: the UI converts toolkit
// events into PointerEvent values and draws its regions from Layout.
package interact

import "github.com/OpenTraceLab/CirKit/pkg/scene"

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	Min, Max scene.Point
}

// R builds a rectangle from its origin and size.
func R(x, y, w, h float64) Rect {
	return Rect{Min: scene.Pt(x, y), Max: scene.Pt(x+w, y+h)}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p scene.Point) bool {
	return p.X >= r.Min.X && p.Y >= r.Min.Y && p.X <= r.Max.X && p.Y <= r.Max.Y
}

// Dx returns the width.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Size returns the extent as a scene.Size.
func (r Rect) Size() scene.Size {
	return scene.Size{Width: max(r.Dx(), 0), Height: max(r.Dy(), 0)}
}

// Metrics are the fixed region sizes in pixels.
type Metrics struct {
	ToolbarHeight     float64
	StatusHeight      float64
	PaletteWidth      float64
	PropertiesWidth   float64
	PaletteHeader     float64
	PaletteItemHeight float64
}

// DefaultMetrics returns the standard region sizes scaled by the number of
// pixels per density-independent pixel.
func DefaultMetrics(pxPerDp float64) Metrics {
	if pxPerDp <= 0 {
		pxPerDp = 1
	}
	return Metrics{
		ToolbarHeight:     56 * pxPerDp,
		StatusHeight:      28 * pxPerDp,
		PaletteWidth:      200 * pxPerDp,
		PropertiesWidth:   320 * pxPerDp,
		PaletteHeader:     44 * pxPerDp,
		PaletteItemHeight: 60 * pxPerDp,
	}
}

// Layout splits the window into toolbar, palette, canvas, properties panel
// and status bar. Hidden side panels collapse to zero width.
type Layout struct {
	Window     scene.Size
	Toolbar    Rect
	Palette    Rect
	Canvas     Rect
	Properties Rect
	Status     Rect

	metrics Metrics
}

// NewLayout computes the regions for a window of the given size.
func NewLayout(window scene.Size, m Metrics, showPalette, showProperties bool) Layout {
	w, h := window.Width, window.Height

	paletteW := m.PaletteWidth
	if !showPalette {
		paletteW = 0
	}
	propsW := m.PropertiesWidth
	if !showProperties {
		propsW = 0
	}

	// Shrink side panels before the canvas disappears entirely
	if paletteW+propsW > w {
		scale := w / (paletteW + propsW)
		paletteW *= scale
		propsW *= scale
	}

	top := min(m.ToolbarHeight, h)
	bottom := max(h-m.StatusHeight, top)

	return Layout{
		Window:     window,
		Toolbar:    R(0, 0, w, top),
		Palette:    R(0, top, paletteW, bottom-top),
		Canvas:     R(paletteW, top, w-paletteW-propsW, bottom-top),
		Properties: R(w-propsW, top, propsW, bottom-top),
		Status:     R(0, bottom, w, h-bottom),
		metrics:    m,
	}
}

// Metrics returns the sizes the layout was built from.
func (l Layout) Metrics() Metrics {
	return l.metrics
}

// PaletteItem returns the rectangle of the i-th palette entry.
func (l Layout) PaletteItem(i int) Rect {
	y := l.Palette.Min.Y + l.metrics.PaletteHeader + float64(i)*l.metrics.PaletteItemHeight
	return R(l.Palette.Min.X, y, l.Palette.Dx(), l.metrics.PaletteItemHeight)
}

// PaletteItemAt returns the kind whose palette entry is under p.
func (l Layout) PaletteItemAt(p scene.Point) (scene.Kind, bool) {
	if l.Palette.Dx() <= 0 || !l.Palette.Contains(p) {
		return scene.KindUnknown, false
	}
	for i, k := range scene.Kinds() {
		item := l.PaletteItem(i)
		if item.Max.Y > l.Palette.Max.Y {
			break
		}
		if item.Contains(p) {
			return k, true
		}
	}
	return scene.KindUnknown, false
}

// CanvasPoint converts a window point into canvas-local pixels.
func (l Layout) CanvasPoint(p scene.Point) scene.Point {
	return scene.Pt(p.X-l.Canvas.Min.X, p.Y-l.Canvas.Min.Y)
}
