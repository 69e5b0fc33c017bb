package render

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

// Options controls optional canvas layers.
type Options struct {
	ShowGrid bool
}

// DefaultOptions returns options with every layer enabled.
func DefaultOptions() Options {
	return Options{ShowGrid: true}
}

// Canvas draws scene snapshots.
type Canvas struct {
	Registry *Registry
	Colors   *Colors
	Options  Options

	grid Grid
}

// NewCanvas returns a canvas drawing symbols through reg.
func NewCanvas(reg *Registry, colors *Colors) *Canvas {
	return &Canvas{
		Registry: reg,
		Colors:   colors,
		Options:  DefaultOptions(),
		grid:     NewGrid(),
	}
}

// Draw renders snap into a viewport of the given pixel size, back to front:
// background, grid, symbols, selection.
func (c *Canvas) Draw(ops *op.Ops, size image.Point, snap scene.Snapshot) {
	defer clip.Rect{Max: size}.Push(ops).Pop()
	paint.FillShape(ops, c.Colors.Background, clip.Rect{Max: size}.Op())

	// Enter scene space
	tr := snap.Transform
	view := f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(float32(tr.Scale), float32(tr.Scale))).
		Offset(f32.Pt(float32(tr.Offset.X), float32(tr.Offset.Y)))
	defer op.Affine(view).Push(ops).Pop()

	if c.Options.ShowGrid {
		c.drawGrid(ops)
	}

	for _, sym := range snap.Symbols {
		c.drawSymbol(ops, sym, sym.ID == snap.Selection)
	}
}

// DrawGhost renders a translucent symbol of kind centred on the screen
// point at, used while dragging from the palette.
func (c *Canvas) DrawGhost(ops *op.Ops, kind scene.Kind, at f32.Point, scale float32) {
	t := f32.Affine2D{}.
		Offset(f32.Pt(-scene.SymbolWidth/2, -scene.SymbolHeight/2)).
		Scale(f32.Point{}, f32.Pt(scale, scale)).
		Offset(at)
	defer op.Affine(t).Push(ops).Pop()
	defer paint.PushOpacity(ops, 0.6).Pop()
	c.Registry.For(kind).Draw(ops)
}

func (c *Canvas) drawGrid(ops *op.Ops) {
	g := c.grid

	// Background area
	paint.FillShape(ops, c.Colors.GridFill, clip.Rect{
		Min: image.Pt(int(g.Area.Min.X), int(g.Area.Min.Y)),
		Max: image.Pt(int(g.Area.Max.X), int(g.Area.Max.Y)),
	}.Op())

	// Every ruling in one path
	var path clip.Path
	path.Begin(ops)
	for _, lines := range [][]Line{g.Horizontal, g.Vertical} {
		for _, l := range lines {
			path.MoveTo(f32.Pt(float32(l.From.X), float32(l.From.Y)))
			path.LineTo(f32.Pt(float32(l.To.X), float32(l.To.Y)))
		}
	}
	paint.FillShape(ops, c.Colors.GridLine, clip.Stroke{
		Path:  path.End(),
		Width: gridLineWidth,
	}.Op())

	// Origin marker
	r := int(OriginRadius)
	paint.FillShape(ops, c.Colors.Origin, clip.Ellipse{
		Min: image.Pt(int(g.Origin.X)-r, int(g.Origin.Y)-r),
		Max: image.Pt(int(g.Origin.X)+r, int(g.Origin.Y)+r),
	}.Op(ops))
}

func (c *Canvas) drawSymbol(ops *op.Ops, sym scene.Symbol, selected bool) {
	local := f32.Affine2D{}.
		Rotate(f32.Point{}, float32(float64(sym.Rotation)*math.Pi/180)).
		Offset(f32.Pt(float32(sym.Position.X), float32(sym.Position.Y)))
	defer op.Affine(local).Push(ops).Pop()

	c.Registry.For(sym.Kind).Draw(ops)

	if sym.Locked {
		paint.FillShape(ops, c.Colors.Locked, clip.Ellipse{
			Min: image.Pt(int(scene.SymbolWidth)-3, -3),
			Max: image.Pt(int(scene.SymbolWidth)+3, 3),
		}.Op(ops))
	}

	if selected {
		b := SelectionOutline()
		rr := clip.RRect{
			Rect: image.Rect(int(b.Min.X), int(b.Min.Y), int(b.Max.X), int(b.Max.Y)),
			SE:   selectionCorner, SW: selectionCorner, NW: selectionCorner, NE: selectionCorner,
		}
		paint.FillShape(ops, c.Colors.Selection, clip.Stroke{
			Path:  rr.Path(ops),
			Width: selectionWidth,
		}.Op())
	}
}
