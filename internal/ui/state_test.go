package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

func TestAppendLogTrimsToLimit(t *testing.T) {
	s := NewState()
	for i := 0; i < 250; i++ {
		s.AppendLog(fmt.Sprintf("line %d", i))
	}
	logs := s.Snapshot().Logs
	if len(logs) != 200 {
		t.Fatalf("got %d log lines, want 200", len(logs))
	}
	if logs[0] != "line 50" || logs[199] != "line 249" {
		t.Fatalf("unexpected window %q .. %q", logs[0], logs[199])
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewState()
	s.AppendLog("first")
	snap := s.Snapshot()
	snap.Logs[0] = "changed"
	if got := s.Snapshot().Logs[0]; got != "first" {
		t.Fatalf("snapshot shares log storage: %q", got)
	}
}

func TestSimulationToggleStatus(t *testing.T) {
	s := NewState()
	if got := s.Snapshot().SimulationStatus(); got != "Simulation Stopped" {
		t.Fatalf("initial status %q", got)
	}
	if !s.ToggleSimulation() {
		t.Fatalf("first toggle should start the simulation")
	}
	if got := s.Snapshot().SimulationStatus(); got != "Simulation Running" {
		t.Fatalf("running status %q", got)
	}
	if s.ToggleSimulation() {
		t.Fatalf("second toggle should stop the simulation")
	}
}

func TestSetErrorUpdatesStatus(t *testing.T) {
	s := NewState()
	s.SetError(errors.New("scenefile: open: missing"))
	snap := s.Snapshot()
	if snap.Status != "scenefile: open: missing" || snap.LastError == nil {
		t.Fatalf("error not surfaced: %+v", snap)
	}

	s.SetStatus("Saved board.cirkit")
	s.SetError(nil)
	snap = s.Snapshot()
	if snap.Status != "Saved board.cirkit" || snap.LastError != nil {
		t.Fatalf("clearing the error changed the status: %+v", snap)
	}
}

func TestSceneAndProperties(t *testing.T) {
	s := NewState()
	if path, id := s.Scene(); path != "" || id != uuid.Nil {
		t.Fatalf("new state has scene %q %v", path, id)
	}

	id := uuid.New()
	s.SetScene("/tmp/board.cirkit", id)
	if path, got := s.Scene(); path != "/tmp/board.cirkit" || got != id {
		t.Fatalf("scene = %q %v", path, got)
	}

	props := scene.Describe(scene.Symbol{ID: "battery-2", Kind: scene.KindBattery, Rotation: 180}, true)
	s.SetProperties(props)
	if got := s.Snapshot().Properties; got != props {
		t.Fatalf("properties = %+v", got)
	}
	if got := s.Snapshot().ScenePath; got != "/tmp/board.cirkit" {
		t.Fatalf("snapshot path %q", got)
	}
}

func TestDefaultsAndVersion(t *testing.T) {
	s := NewState()
	snap := s.Snapshot()
	if !snap.LeftPanelVisible || !snap.RightPanelVisible || !snap.ShowGrid || snap.DarkMode {
		t.Fatalf("unexpected defaults: %+v", snap)
	}
	if snap.AppVersion != "dev" || snap.Status != "Ready" {
		t.Fatalf("version/status = %q/%q", snap.AppVersion, snap.Status)
	}

	s.SetAppVersion("")
	if got := s.Snapshot().AppVersion; got != "dev" {
		t.Fatalf("empty version stored as %q", got)
	}
	s.SetAppVersion("1.2.0")
	s.SetLeftPanelVisible(false)
	s.SetDarkMode(true)
	s.SetShowGrid(false)
	snap = s.Snapshot()
	if snap.AppVersion != "1.2.0" || snap.LeftPanelVisible || !snap.DarkMode || snap.ShowGrid {
		t.Fatalf("setters not applied: %+v", snap)
	}
}
