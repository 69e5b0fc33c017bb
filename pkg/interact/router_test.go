package interact

import (
	"testing"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

func newTestRouter(t *testing.T) (*Router, *scene.Store) {
	t.Helper()
	store := scene.NewStore()
	r := NewRouter(store)
	r.SetLayout(NewLayout(scene.Size{Width: 1000, Height: 700}, DefaultMetrics(1), true, true))

	if got := store.Snapshot().Viewport; got != (scene.Size{Width: 480, Height: 616}) {
		t.Fatalf("viewport = %+v, want 480x616", got)
	}
	return r, store
}

func primary(kind PointerKind, x, y float64) PointerEvent {
	return PointerEvent{Kind: kind, Buttons: ButtonPrimary, Position: scene.Pt(x, y)}
}

func secondary(kind PointerKind, x, y float64) PointerEvent {
	return PointerEvent{Kind: kind, Buttons: ButtonSecondary, Position: scene.Pt(x, y)}
}

func TestPaletteDropPlacesSymbol(t *testing.T) {
	r, store := newTestRouter(t)

	r.Handle(primary(Press, 100, 130))
	r.Handle(primary(Drag, 250, 180))
	kind, at, ok := r.PaletteDrag()
	if !ok || kind != scene.KindResistor || at != scene.Pt(250, 180) {
		t.Fatalf("PaletteDrag = %v %+v %v", kind, at, ok)
	}
	if r.Cursor() != CursorCopy {
		t.Fatalf("cursor over canvas = %v, want copy", r.Cursor())
	}
	r.Handle(PointerEvent{Kind: Release, Position: scene.Pt(300, 200)})

	snap := store.Snapshot()
	if len(snap.Symbols) != 1 {
		t.Fatalf("got %d symbols, want 1", len(snap.Symbols))
	}
	sym := snap.Symbols[0]
	if sym.Kind != scene.KindResistor || sym.Position != scene.Pt(100, 144) {
		t.Fatalf("placed %+v", sym)
	}
	if snap.Selection != sym.ID {
		t.Fatalf("new symbol not selected")
	}
	if _, _, ok := r.PaletteDrag(); ok {
		t.Fatalf("palette drag still active after release")
	}
}

func TestPaletteDropOutsideCanvasIsIgnored(t *testing.T) {
	r, store := newTestRouter(t)

	// second entry is the capacitor
	r.Handle(primary(Press, 20, 170))
	r.Handle(PointerEvent{Kind: Release, Position: scene.Pt(900, 200)})
	r.Handle(primary(Press, 20, 170))
	r.Handle(PointerEvent{Kind: Release, Position: scene.Pt(50, 300)})

	if n := len(store.Snapshot().Symbols); n != 0 {
		t.Fatalf("got %d symbols after drops outside the canvas", n)
	}
}

func TestClickTogglesAndBackgroundDeselects(t *testing.T) {
	r, store := newTestRouter(t)
	local := scene.Pt(100, 100)
	store.Dispatch(scene.Place{Kind: scene.KindBattery, At: &local}, scene.Select{})

	// canvas origin is (200,56); the symbol spans (300..360, 156..176)
	r.Handle(primary(Press, 310, 160))
	r.Handle(PointerEvent{Kind: Release, Position: scene.Pt(311, 161)})
	if got := store.Snapshot().Selection; got != "battery-1" {
		t.Fatalf("selection after click = %q", got)
	}

	r.Handle(primary(Press, 310, 160))
	r.Handle(PointerEvent{Kind: Release, Position: scene.Pt(310, 160)})
	if got := store.Snapshot().Selection; got != "" {
		t.Fatalf("second click should toggle off, got %q", got)
	}

	store.Dispatch(scene.Select{ID: "battery-1"})
	r.Handle(primary(Press, 600, 500))
	r.Handle(PointerEvent{Kind: Release, Position: scene.Pt(600, 500)})
	if got := store.Snapshot().Selection; got != "" {
		t.Fatalf("background click left %q selected", got)
	}
}

func TestDragRepositionsSymbol(t *testing.T) {
	r, store := newTestRouter(t)
	local := scene.Pt(100, 100)
	store.Dispatch(scene.Place{Kind: scene.KindInductor, At: &local}, scene.Select{})

	r.Handle(primary(Press, 310, 160))
	r.Handle(primary(Drag, 330, 200))
	r.Handle(PointerEvent{Kind: Release, Position: scene.Pt(350, 210)})

	snap := store.Snapshot()
	if got := snap.Symbols[0].Position; got != scene.Pt(140, 150) {
		t.Fatalf("position after drag = %+v, want (140,150)", got)
	}
	if snap.Selection != "" {
		t.Fatalf("drag should not change selection, got %q", snap.Selection)
	}
}

func TestSecondaryDragPans(t *testing.T) {
	r, store := newTestRouter(t)

	r.Handle(secondary(Press, 300, 300))
	if !store.Snapshot().Panning {
		t.Fatalf("secondary press did not start a pan")
	}
	r.Handle(secondary(Drag, 350, 290))
	r.Handle(PointerEvent{Kind: Release, Position: scene.Pt(350, 290)})

	snap := store.Snapshot()
	if snap.Panning {
		t.Fatalf("pan still active after release")
	}
	if snap.Transform.Offset != scene.Pt(50, -10) {
		t.Fatalf("offset = %+v, want (50,-10)", snap.Transform.Offset)
	}
}

func TestCancelEndsPan(t *testing.T) {
	r, store := newTestRouter(t)
	r.Handle(secondary(Press, 300, 300))
	r.Handle(PointerEvent{Kind: Cancel})
	if store.Snapshot().Panning {
		t.Fatalf("cancel did not end the pan")
	}
}

func TestScrollZoomsAtPointer(t *testing.T) {
	r, store := newTestRouter(t)

	r.Handle(PointerEvent{Kind: Scroll, Position: scene.Pt(300, 156), Scroll: -1})
	tr := store.Snapshot().Transform
	if tr.Scale <= 1 {
		t.Fatalf("scroll up should zoom in, scale %v", tr.Scale)
	}
	anchor := tr.ToScene(scene.Pt(100, 100))
	if d := anchor.X - 100; d > 1e-9 || d < -1e-9 {
		t.Fatalf("anchor drifted to %+v", anchor)
	}

	r.Handle(PointerEvent{Kind: Scroll, Position: scene.Pt(300, 156), Scroll: 2})
	if got := store.Snapshot().Transform.Scale; got >= tr.Scale {
		t.Fatalf("scroll down should zoom out, scale %v", got)
	}

	before := store.Snapshot().Version
	r.Handle(PointerEvent{Kind: Scroll, Position: scene.Pt(50, 300), Scroll: -1})
	if store.Snapshot().Version != before {
		t.Fatalf("scroll over the palette zoomed the canvas")
	}
}

func TestLayoutHidesPanels(t *testing.T) {
	l := NewLayout(scene.Size{Width: 1000, Height: 700}, DefaultMetrics(1), false, false)
	if l.Canvas.Dx() != 1000 {
		t.Fatalf("canvas width = %v, want full window", l.Canvas.Dx())
	}
	if _, ok := l.PaletteItemAt(scene.Pt(10, 130)); ok {
		t.Fatalf("hidden palette reported an item")
	}

	l = NewLayout(scene.Size{Width: 1000, Height: 700}, DefaultMetrics(2), true, true)
	if k, ok := l.PaletteItemAt(scene.Pt(10, 112+88+10)); !ok || k != scene.KindResistor {
		t.Fatalf("PaletteItemAt at 2x density = %v, %v", k, ok)
	}
}
