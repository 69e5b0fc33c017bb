package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOwnWritesIgnoreOnlyOurSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.cirkit")
	if err := os.WriteFile(path, []byte("(cirkit_scene (version 1))\n"), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}

	var w ownWrites
	if w.matches(path) {
		t.Fatalf("unsaved file reported as our own write")
	}

	w.record(path)
	if !w.matches(path) {
		t.Fatalf("our own save was not recognised")
	}

	// Another program rewrites the file later
	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if w.matches(path) {
		t.Fatalf("external edit treated as our own write")
	}

	if w.matches(filepath.Join(t.TempDir(), "missing.cirkit")) {
		t.Fatalf("missing file matched")
	}
}
