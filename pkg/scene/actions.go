package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Action is a request to change the scene. Actions are applied one at a
// time by a Store; the set is closed to this package.
type Action interface {
	apply(st *state) bool
}

// Resize records the viewport size in screen pixels.
type Resize struct {
	Width, Height float64
}

// Zoom changes the scale by one wheel notch around At. Direction > 0 zooms
// in, < 0 zooms out. A nil At or zero Direction is ignored.
type Zoom struct {
	At        *Point
	Direction int
}

// ZoomStep zooms around the viewport centre by StepZoomFactor.
type ZoomStep struct {
	Direction int
}

// BeginPan starts a pan gesture at the given screen point.
type BeginPan struct {
	At *Point
}

// UpdatePan moves the view by the pointer delta since the previous pan point.
type UpdatePan struct {
	At *Point
}

// EndPan finishes the pan gesture.
type EndPan struct{}

// ResetView restores scale 1 and zero offset.
type ResetView struct{}

// FitView frames every placed symbol in the viewport.
type FitView struct{}

// Place creates a symbol of Kind at the screen point At and selects it.
// Drops outside the viewport or of unknown kinds are ignored.
type Place struct {
	Kind Kind
	At   *Point
}

// Select toggles the selection. An empty ID clears it; selecting the
// currently selected ID clears it; unknown IDs are ignored.
type Select struct {
	ID string
}

// Reposition moves an unlocked symbol to a scene position.
type Reposition struct {
	ID string
	To Point
}

// RotateSelected turns the selected symbol by 90 degrees clockwise.
type RotateSelected struct{}

// SetLocked pins or unpins a symbol.
type SetLocked struct {
	ID     string
	Locked bool
}

// ToggleLockSelected flips the lock of the selected symbol.
type ToggleLockSelected struct{}

// ClearAll removes every symbol and clears the selection.
type ClearAll struct{}

// Load replaces the scene with previously saved symbols. Symbols of unknown
// kind, duplicate IDs and non-finite positions are skipped. A nil Transform
// keeps the current view; a non-finite one resets it to identity.
type Load struct {
	Symbols   []Symbol
	Transform *Transform
}

// state is the data owned by a Store.
type state struct {
	symbols   []Symbol
	selection string
	transform Transform
	viewport  Size
	panning   bool
	lastPan   Point
	seq       int
	version   uint64
}

func (st *state) index(id string) int {
	if id == "" {
		return -1
	}
	for i := range st.symbols {
		if st.symbols[i].ID == id {
			return i
		}
	}
	return -1
}

func (a Resize) apply(st *state) bool {
	size := Size{Width: max(a.Width, 0), Height: max(a.Height, 0)}
	if size == st.viewport {
		return false
	}
	st.viewport = size
	return true
}

func (a Zoom) apply(st *state) bool {
	if a.At == nil || a.Direction == 0 {
		return false
	}
	factor := WheelZoomFactor
	if a.Direction < 0 {
		factor = 1 / WheelZoomFactor
	}
	return st.setTransform(st.transform.ZoomAt(*a.At, factor))
}

func (a ZoomStep) apply(st *state) bool {
	if a.Direction == 0 {
		return false
	}
	factor := StepZoomFactor
	if a.Direction < 0 {
		factor = 1 / StepZoomFactor
	}
	return st.setTransform(st.transform.ZoomAt(st.viewport.Center(), factor))
}

func (a BeginPan) apply(st *state) bool {
	if a.At == nil {
		return false
	}
	st.lastPan = *a.At
	if st.panning {
		return false
	}
	st.panning = true
	return true
}

func (a UpdatePan) apply(st *state) bool {
	if !st.panning || a.At == nil {
		return false
	}
	dx := a.At.X - st.lastPan.X
	dy := a.At.Y - st.lastPan.Y
	st.lastPan = *a.At
	return st.setTransform(st.transform.PanBy(dx, dy, st.viewport))
}

func (EndPan) apply(st *state) bool {
	if !st.panning {
		return false
	}
	st.panning = false
	return true
}

func (ResetView) apply(st *state) bool {
	return st.setTransform(IdentityTransform())
}

func (FitView) apply(st *state) bool {
	return st.setTransform(Fit(ContentBounds(st.symbols), st.viewport))
}

func (a Place) apply(st *state) bool {
	if !a.Kind.Valid() || a.At == nil || !st.viewport.Contains(*a.At) {
		return false
	}
	st.seq++
	sym := Symbol{
		ID:       fmt.Sprintf("%s-%d", a.Kind, st.seq),
		Kind:     a.Kind,
		Position: st.transform.ToScene(*a.At),
	}
	st.symbols = append(st.symbols, sym)
	st.selection = sym.ID
	return true
}

func (a Select) apply(st *state) bool {
	if a.ID == "" || a.ID == st.selection {
		if st.selection == "" {
			return false
		}
		st.selection = ""
		return true
	}
	if st.index(a.ID) < 0 {
		return false
	}
	st.selection = a.ID
	return true
}

func (a Reposition) apply(st *state) bool {
	i := st.index(a.ID)
	if i < 0 || st.symbols[i].Locked || st.symbols[i].Position == a.To {
		return false
	}
	st.symbols[i].Position = a.To
	return true
}

func (RotateSelected) apply(st *state) bool {
	i := st.index(st.selection)
	if i < 0 {
		return false
	}
	st.symbols[i].Rotation = (st.symbols[i].Rotation + 90) % 360
	return true
}

func (a SetLocked) apply(st *state) bool {
	i := st.index(a.ID)
	if i < 0 || st.symbols[i].Locked == a.Locked {
		return false
	}
	st.symbols[i].Locked = a.Locked
	return true
}

func (ToggleLockSelected) apply(st *state) bool {
	i := st.index(st.selection)
	if i < 0 {
		return false
	}
	st.symbols[i].Locked = !st.symbols[i].Locked
	return true
}

func (ClearAll) apply(st *state) bool {
	if len(st.symbols) == 0 && st.selection == "" {
		return false
	}
	st.symbols = nil
	st.selection = ""
	return true
}

func (a Load) apply(st *state) bool {
	seen := make(map[string]bool, len(a.Symbols))
	symbols := make([]Symbol, 0, len(a.Symbols))
	for _, sym := range a.Symbols {
		if !sym.Kind.Valid() || sym.ID == "" || seen[sym.ID] || !Finite(sym.Position) {
			continue
		}
		seen[sym.ID] = true
		sym.Rotation = normalizeRotation(sym.Rotation)
		symbols = append(symbols, sym)

		// Keep generated ids unique across loads
		if n, ok := idSequence(sym.ID); ok && n > st.seq {
			st.seq = n
		}
	}
	st.symbols = symbols
	st.selection = ""
	st.panning = false
	if a.Transform != nil {
		t := *a.Transform
		if math.IsNaN(t.Scale) || !Finite(t.Offset) {
			t = IdentityTransform()
		}
		t.Scale = clampScale(t.Scale)
		st.transform = t
	}
	return true
}

func (st *state) setTransform(t Transform) bool {
	if t == st.transform {
		return false
	}
	st.transform = t
	return true
}

// normalizeRotation snaps r onto {0, 90, 180, 270}.
func normalizeRotation(r int) int {
	r = ((r/90)*90)%360 + 360
	return r % 360
}

// idSequence extracts the numeric suffix of ids such as "resistor-12".
func idSequence(id string) (int, bool) {
	i := strings.LastIndexByte(id, '-')
	if i < 0 || i == len(id)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
