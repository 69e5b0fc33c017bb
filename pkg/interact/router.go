package interact

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

// PointerKind classifies a pointer event.
type PointerKind uint8

const (
	Press PointerKind = iota
	Release
	Move
	Drag
	Scroll
	Cancel
)

// Buttons is a set of pointer buttons.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
)

// Contain reports whether all buttons in b2 are held in b.
func (b Buttons) Contain(b2 Buttons) bool {
	return b&b2 == b2
}

// PointerEvent is a toolkit-neutral pointer event in window pixels.
type PointerEvent struct {
	Kind     PointerKind
	Buttons  Buttons
	Position scene.Point
	// Scroll is the vertical wheel delta; positive scrolls down.
	Scroll float64
}

// Cursor hints which pointer shape the UI should show.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorGrab
	CursorGrabbing
	CursorCopy
)

// ClickSlop is how far, in pixels, the pointer may travel between press and
// release for the gesture to count as a click.
const ClickSlop = 3.0

// Store is the part of scene.Store the router needs.
type Store interface {
	Dispatch(actions ...scene.Action)
	Snapshot() scene.Snapshot
}

type gesture uint8

const (
	gestureNone gesture = iota
	gesturePalette
	gestureSymbol
	gestureCanvas
	gesturePan
)

// Router converts pointer events into scene actions. It is not safe for
// concurrent use; the UI calls it from its event loop.
type Router struct {
	store  Store
	layout Layout

	active  gesture
	kind    scene.Kind
	id      string
	grab    scene.Point
	pressAt scene.Point
	moved   bool

	pointer    scene.Point
	hasPointer bool
}

// NewRouter returns a router dispatching to store.
func NewRouter(store Store) *Router {
	return &Router{store: store}
}

// SetLayout updates the window regions and resizes the scene viewport when
// the canvas changed size.
func (r *Router) SetLayout(l Layout) {
	old := r.layout.Canvas.Size()
	r.layout = l
	if size := l.Canvas.Size(); size != old || r.store.Snapshot().Viewport != size {
		r.store.Dispatch(scene.Resize{Width: size.Width, Height: size.Height})
	}
}

// Layout returns the current regions.
func (r *Router) Layout() Layout {
	return r.layout
}

// Handle routes one pointer event.
func (r *Router) Handle(ev PointerEvent) {
	if ev.Kind != Cancel {
		r.pointer = ev.Position
		r.hasPointer = true
	}

	switch ev.Kind {
	case Press:
		r.press(ev)
	case Move, Drag:
		r.drag(ev)
	case Release:
		r.release(ev)
	case Cancel:
		r.cancel()
	case Scroll:
		r.scroll(ev)
	}
}

func (r *Router) press(ev PointerEvent) {
	if r.active != gestureNone {
		return
	}
	p := ev.Position
	local := r.layout.CanvasPoint(p)
	r.pressAt = p
	r.moved = false

	switch {
	case ev.Buttons.Contain(ButtonSecondary):
		if r.layout.Canvas.Contains(p) {
			r.active = gesturePan
			r.store.Dispatch(scene.BeginPan{At: &local})
		}

	case ev.Buttons.Contain(ButtonPrimary):
		if k, ok := r.layout.PaletteItemAt(p); ok {
			r.active = gesturePalette
			r.kind = k
			return
		}
		if !r.layout.Canvas.Contains(p) {
			return
		}
		snap := r.store.Snapshot()
		at := snap.Transform.ToScene(local)
		if sym, ok := scene.SymbolAt(snap.Symbols, at); ok {
			r.active = gestureSymbol
			r.id = sym.ID
			r.grab = r2.Sub(at, sym.Position)
			return
		}
		r.active = gestureCanvas
	}
}

func (r *Router) drag(ev PointerEvent) {
	if r.active == gestureNone {
		return
	}
	if r2.Norm(r2.Sub(ev.Position, r.pressAt)) > ClickSlop {
		r.moved = true
	}
	local := r.layout.CanvasPoint(ev.Position)

	switch r.active {
	case gesturePan:
		r.store.Dispatch(scene.UpdatePan{At: &local})
	case gestureSymbol:
		if !r.moved {
			return
		}
		at := r.store.Snapshot().Transform.ToScene(local)
		r.store.Dispatch(scene.Reposition{ID: r.id, To: r2.Sub(at, r.grab)})
	}
}

func (r *Router) release(ev PointerEvent) {
	if r.active == gestureNone {
		return
	}
	r.drag(ev)
	local := r.layout.CanvasPoint(ev.Position)

	switch r.active {
	case gesturePalette:
		// Drops outside the canvas are rejected by the store
		r.store.Dispatch(scene.Place{Kind: r.kind, At: &local})
	case gestureSymbol:
		if !r.moved {
			r.store.Dispatch(scene.Select{ID: r.id})
		}
	case gestureCanvas:
		if !r.moved {
			r.store.Dispatch(scene.Select{})
		}
	case gesturePan:
		r.store.Dispatch(scene.EndPan{})
	}
	r.reset()
}

func (r *Router) cancel() {
	if r.active == gesturePan {
		r.store.Dispatch(scene.EndPan{})
	}
	r.reset()
}

func (r *Router) scroll(ev PointerEvent) {
	if ev.Scroll == 0 || math.IsNaN(ev.Scroll) || !r.layout.Canvas.Contains(ev.Position) {
		return
	}
	local := r.layout.CanvasPoint(ev.Position)
	dir := 1
	if ev.Scroll > 0 {
		dir = -1
	}
	r.store.Dispatch(scene.Zoom{At: &local, Direction: dir})
}

func (r *Router) reset() {
	r.active = gestureNone
	r.kind = scene.KindUnknown
	r.id = ""
	r.grab = scene.Point{}
	r.moved = false
}

// PaletteDrag reports the kind being dragged from the palette and the
// current pointer position in window pixels.
func (r *Router) PaletteDrag() (scene.Kind, scene.Point, bool) {
	if r.active != gesturePalette || !r.hasPointer {
		return scene.KindUnknown, scene.Point{}, false
	}
	return r.kind, r.pointer, true
}

// Cursor returns the pointer shape for the current gesture and position.
func (r *Router) Cursor() Cursor {
	switch r.active {
	case gesturePalette:
		if r.layout.Canvas.Contains(r.pointer) {
			return CursorCopy
		}
		return CursorGrabbing
	case gesturePan:
		return CursorGrabbing
	case gestureSymbol:
		if r.moved {
			return CursorGrabbing
		}
		return CursorPointer
	}
	if !r.hasPointer {
		return CursorDefault
	}
	if _, ok := r.layout.PaletteItemAt(r.pointer); ok {
		return CursorGrab
	}
	if r.layout.Canvas.Contains(r.pointer) {
		snap := r.store.Snapshot()
		at := snap.Transform.ToScene(r.layout.CanvasPoint(r.pointer))
		if _, ok := scene.SymbolAt(snap.Symbols, at); ok {
			return CursorPointer
		}
	}
	return CursorDefault
}
