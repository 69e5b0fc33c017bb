package scene

import (
	"fmt"
	"math"
	"sync"
)

// NoSelectionText is shown by the properties panel when nothing is selected.
const NoSelectionText = "Select a component to view properties"

// Properties is the read-only view of the selected symbol.
type Properties struct {
	Selected bool
	Type     string
	Position string
	Rotation string
	ID       string
	Locked   bool
}

// Placeholder returns the text to show instead of the fields, or "" when a
// symbol is selected.
func (p Properties) Placeholder() string {
	if p.Selected {
		return ""
	}
	return NoSelectionText
}

// Describe projects a symbol into display fields. Positions are rounded
// half up, so -0.5 becomes 0 and 0.5 becomes 1.
func Describe(sym Symbol, ok bool) Properties {
	if !ok {
		return Properties{}
	}
	return Properties{
		Selected: true,
		Type:     sym.Kind.Label(),
		Position: fmt.Sprintf("x: %d, y: %d", roundHalfUp(sym.Position.X), roundHalfUp(sym.Position.Y)),
		Rotation: fmt.Sprintf("%d°", sym.Rotation),
		ID:       sym.ID,
		Locked:   sym.Locked,
	}
}

// DescribeSelection projects the selection of a snapshot.
func DescribeSelection(snap Snapshot) Properties {
	return Describe(snap.Selected())
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Reporter pushes Properties to a sink whenever the selected record changes.
type Reporter struct {
	mu    sync.Mutex
	last  Properties
	sink  func(Properties)
	unsub func()
}

// NewReporter subscribes to store and immediately pushes the current
// properties to sink.
func NewReporter(store *Store, sink func(Properties)) *Reporter {
	r := &Reporter{sink: sink}
	r.last = DescribeSelection(store.Snapshot())
	sink(r.last)
	r.unsub = store.Subscribe(r.update)
	return r
}

// Current returns the most recently pushed properties.
func (r *Reporter) Current() Properties {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Close stops reporting.
func (r *Reporter) Close() {
	if r.unsub != nil {
		r.unsub()
		r.unsub = nil
	}
}

func (r *Reporter) update(snap Snapshot) {
	props := DescribeSelection(snap)

	r.mu.Lock()
	if props == r.last {
		r.mu.Unlock()
		return
	}
	r.last = props
	r.mu.Unlock()

	r.sink(props)
}
