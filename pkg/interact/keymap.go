package interact

import (
	"sort"
	"strings"
	"sync"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

// Keymap maps key names to scene actions. Key names follow the toolkit's
// naming, e.g. "R" or "+".
type Keymap struct {
	mu       sync.RWMutex
	bindings map[string]scene.Action
}

// NewKeymap returns an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[string]scene.Action)}
}

// Bind maps key to action, replacing any previous binding.
func (k *Keymap) Bind(key string, action scene.Action) {
	key = normalizeKey(key)
	if key == "" || action == nil {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.bindings[key] = action
}

// Unbind removes the binding for key.
func (k *Keymap) Unbind(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.bindings, normalizeKey(key))
}

// Lookup returns the action bound to key.
func (k *Keymap) Lookup(key string) (scene.Action, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	a, ok := k.bindings[normalizeKey(key)]
	return a, ok
}

// Keys returns the bound key names in sorted order.
func (k *Keymap) Keys() []string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	keys := make([]string, 0, len(k.bindings))
	for key := range k.bindings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Press dispatches the action bound to key and reports whether one existed.
func (k *Keymap) Press(store Store, key string) bool {
	a, ok := k.Lookup(key)
	if !ok {
		return false
	}
	store.Dispatch(a)
	return true
}

// CanvasKeys names the keys the canvas binds while it is mounted.
type CanvasKeys struct {
	Rotate string
	Lock   string
}

// DefaultCanvasKeys returns R for rotate and L for lock.
func DefaultCanvasKeys() CanvasKeys {
	return CanvasKeys{Rotate: "R", Lock: "L"}
}

// MountCanvas binds the canvas shortcuts and returns a function that
// removes them again.
func MountCanvas(k *Keymap, keys CanvasKeys) (unmount func()) {
	bound := map[string]scene.Action{
		keys.Rotate: scene.RotateSelected{},
		keys.Lock:   scene.ToggleLockSelected{},
		"+":         scene.ZoomStep{Direction: 1},
		"-":         scene.ZoomStep{Direction: -1},
		"0":         scene.ResetView{},
		"F":         scene.FitView{},
	}
	for key, a := range bound {
		k.Bind(key, a)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for key := range bound {
				k.Unbind(key)
			}
		})
	}
}

func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) == 1 {
		return strings.ToUpper(key)
	}
	return key
}
