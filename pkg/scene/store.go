package scene

import "sync"

// Snapshot is an immutable copy of the scene for rendering and reporting.
type Snapshot struct {
	Symbols   []Symbol
	Selection string
	Transform Transform
	Viewport  Size
	Panning   bool

	// Version increases by one for every applied change.
	Version uint64
}

// Selected returns the selected symbol, if any.
func (s Snapshot) Selected() (Symbol, bool) {
	return s.Symbol(s.Selection)
}

// Symbol looks up a symbol by id.
func (s Snapshot) Symbol(id string) (Symbol, bool) {
	if id == "" {
		return Symbol{}, false
	}
	for _, sym := range s.Symbols {
		if sym.ID == id {
			return sym, true
		}
	}
	return Symbol{}, false
}

// Listener receives the scene after every applied change.
type Listener func(Snapshot)

type subscription struct {
	id int
	fn Listener
}

// Store owns the scene state. All mutation goes through Dispatch, which
// applies actions strictly in order; actions dispatched while another is
// being applied (from a listener or another goroutine) are queued and
// applied by the goroutine already draining the queue.
type Store struct {
	mu sync.Mutex

	st       state
	queue    []Action
	draining bool

	subs    []subscription
	nextSub int
}

// NewStore returns an empty scene with the identity transform.
func NewStore() *Store {
	return &Store{st: state{transform: IdentityTransform()}}
}

// Dispatch applies the actions in order and notifies listeners after each
// one that changed the scene.
func (s *Store) Dispatch(actions ...Action) {
	s.mu.Lock()
	for _, a := range actions {
		if a != nil {
			s.queue = append(s.queue, a)
		}
	}
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.drain()
}

// drain applies queued actions until none are left. It is entered with mu
// held and returns with mu released, also when a listener panics.
func (s *Store) drain() {
	locked := true
	defer func() {
		if !locked {
			s.mu.Lock()
		}
		s.queue = nil
		s.draining = false
		s.mu.Unlock()
	}()

	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		if !next.apply(&s.st) {
			continue
		}
		s.st.version++

		snap := s.snapshotLocked()
		subs := append([]subscription(nil), s.subs...)
		s.mu.Unlock()
		locked = false
		for _, sub := range subs {
			sub.fn(snap)
		}
		s.mu.Lock()
		locked = true
	}
}

// Snapshot returns a copy of the current scene.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn for change notifications. The returned function
// removes the registration.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) snapshotLocked() Snapshot {
	symbols := make([]Symbol, len(s.st.symbols))
	copy(symbols, s.st.symbols)
	return Snapshot{
		Symbols:   symbols,
		Selection: s.st.selection,
		Transform: s.st.transform,
		Viewport:  s.st.viewport,
		Panning:   s.st.panning,
		Version:   s.st.version,
	}
}
