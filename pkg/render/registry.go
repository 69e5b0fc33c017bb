package render

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

// SymbolRenderer draws one symbol in symbol-local scene units, with the
// footprint spanning (0,0)-(SymbolWidth,SymbolHeight).
type SymbolRenderer interface {
	Draw(ops *op.Ops)
}

// Registry maps each kind to its renderer. Kinds without a working icon
// share a single placeholder entry.
type Registry struct {
	renderers   map[scene.Kind]SymbolRenderer
	placeholder SymbolRenderer
}

// NewRegistry builds renderers from icons. Icons that fail to load are
// returned as errors and drawn with the placeholder.
func NewRegistry(icons *IconSet, colors *Colors) (*Registry, []error) {
	r := &Registry{
		renderers:   make(map[scene.Kind]SymbolRenderer),
		placeholder: placeholderRenderer{color: colors.Placeholder},
	}

	var errs []error
	for _, kind := range scene.Kinds() {
		img, err := icons.Image(kind)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.renderers[kind] = newIconRenderer(img)
	}
	return r, errs
}

// For returns the renderer for kind.
func (r *Registry) For(kind scene.Kind) SymbolRenderer {
	if sr, ok := r.renderers[kind]; ok {
		return sr
	}
	return r.placeholder
}

// IsPlaceholder reports whether kind falls back to the placeholder.
func (r *Registry) IsPlaceholder(kind scene.Kind) bool {
	_, ok := r.renderers[kind]
	return !ok
}

type iconRenderer struct {
	img  paint.ImageOp
	size image.Point
}

func newIconRenderer(img image.Image) iconRenderer {
	imgOp := paint.NewImageOp(img)
	imgOp.Filter = paint.FilterLinear
	return iconRenderer{img: imgOp, size: img.Bounds().Size()}
}

func (ir iconRenderer) Draw(ops *op.Ops) {
	// The raster is oversampled; scale it back onto the footprint
	sx := float32(scene.SymbolWidth) / float32(ir.size.X)
	sy := float32(scene.SymbolHeight) / float32(ir.size.Y)
	defer op.Affine(f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(sx, sy))).Push(ops).Pop()

	defer clip.Rect{Max: ir.size}.Push(ops).Pop()
	ir.img.Add(ops)
	paint.PaintOp{}.Add(ops)
}

type placeholderRenderer struct {
	color color.NRGBA
}

func (pr placeholderRenderer) Draw(ops *op.Ops) {
	paint.FillShape(ops, pr.color, clip.Rect{
		Max: image.Pt(int(scene.SymbolWidth), int(scene.SymbolHeight)),
	}.Op())
}
