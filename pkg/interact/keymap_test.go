package interact

import (
	"testing"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

func TestRotateKeyOnlyWhileMounted(t *testing.T) {
	store := scene.NewStore()
	at := scene.Pt(10, 10)
	store.Dispatch(scene.Resize{Width: 100, Height: 100}, scene.Place{Kind: scene.KindResistor, At: &at})

	keys := NewKeymap()
	unmount := MountCanvas(keys, DefaultCanvasKeys())

	if !keys.Press(store, "r") {
		t.Fatalf("rotate key not bound after mount")
	}
	if got := store.Snapshot().Symbols[0].Rotation; got != 90 {
		t.Fatalf("rotation = %d, want 90", got)
	}

	unmount()
	unmount()
	if keys.Press(store, "R") {
		t.Fatalf("rotate key still bound after unmount")
	}
	if got := store.Snapshot().Symbols[0].Rotation; got != 90 {
		t.Fatalf("rotation changed after unmount: %d", got)
	}
	if len(keys.Keys()) != 0 {
		t.Fatalf("bindings left after unmount: %v", keys.Keys())
	}
}

func TestMountCanvasUsesConfiguredKeys(t *testing.T) {
	keys := NewKeymap()
	defer MountCanvas(keys, CanvasKeys{Rotate: "T", Lock: "K"})()

	if _, ok := keys.Lookup("R"); ok {
		t.Fatalf("default rotate key bound despite override")
	}
	a, ok := keys.Lookup("T")
	if !ok {
		t.Fatalf("custom rotate key not bound")
	}
	if _, isRotate := a.(scene.RotateSelected); !isRotate {
		t.Fatalf("T bound to %T", a)
	}
	if a, _ := keys.Lookup("K"); a != (scene.ToggleLockSelected{}) {
		t.Fatalf("K bound to %T", a)
	}
}
