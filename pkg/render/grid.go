package render

import "github.com/OpenTraceLab/CirKit/pkg/scene"

// Grid dimensions in scene units.
const (
	GridExtent       = 4000.0
	GridPitch        = 50.0
	GridLines        = 80
	OriginRadius     = 5.0
	gridHalf         = GridExtent / 2
	gridLineWidth    = 1.0
	selectionPadding = 4.0
	selectionWidth   = 2.0
	selectionCorner  = 6.0
)

// Line is a segment in scene coordinates.
type Line struct {
	From, To scene.Point
}

// Grid is the static background drawn under the symbols.
type Grid struct {
	Area       scene.Bounds
	Horizontal []Line
	Vertical   []Line
	Origin     scene.Point
}

// NewGrid returns the background: a square area centred on the origin
// ruled every GridPitch units in both directions.
func NewGrid() Grid {
	g := Grid{
		Area: scene.Bounds{
			Min: scene.Pt(-gridHalf, -gridHalf),
			Max: scene.Pt(gridHalf, gridHalf),
		},
		Horizontal: make([]Line, 0, GridLines),
		Vertical:   make([]Line, 0, GridLines),
	}
	for i := 0; i < GridLines; i++ {
		c := float64(i-GridLines/2) * GridPitch
		g.Horizontal = append(g.Horizontal, Line{From: scene.Pt(-gridHalf, c), To: scene.Pt(gridHalf, c)})
		g.Vertical = append(g.Vertical, Line{From: scene.Pt(c, -gridHalf), To: scene.Pt(c, gridHalf)})
	}
	return g
}

// SelectionOutline returns the rectangle drawn around a selected symbol, in
// symbol-local coordinates.
func SelectionOutline() scene.Bounds {
	return scene.Bounds{
		Min: scene.Pt(-selectionPadding, -selectionPadding),
		Max: scene.Pt(scene.SymbolWidth+selectionPadding, scene.SymbolHeight+selectionPadding),
	}
}
