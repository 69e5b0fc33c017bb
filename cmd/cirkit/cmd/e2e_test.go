package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Reset flags to prevent accumulation between runs
	replayWidth, replayHeight = 800, 600
	replayOut = ""
	replayJSON = false
	infoJSON = false
	verbose = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

const scenario = `# place, rotate, then pan the view
place resistor at 100 100
rotate
pan from 0 0 to 50 0
`

// TestReplayE2E runs a script headlessly and checks the printed report.
func TestReplayE2E(t *testing.T) {
	script := writeScript(t, "scenario.ckt", scenario)

	output, err := execute(t, "replay", script)
	if err != nil {
		t.Fatalf("replay failed: %v\nOutput: %s", err, output)
	}
	for _, want := range []string{
		"Components: 1",
		"resistor-1",
		"Type:     Resistor",
		"Position: x: 100, y: 100",
		"Rotation: 90°",
		"ID:       resistor-1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing expected string: %q\nGot:\n%s", want, output)
		}
	}
}

// TestReplaySaveThenInfo saves a replayed scene and reads it back with info.
func TestReplaySaveThenInfo(t *testing.T) {
	script := writeScript(t, "scenario.ckt", scenario)
	scenePath := filepath.Join(t.TempDir(), "result.cirkit")

	output, err := execute(t, "replay", script, "--out", scenePath)
	if err != nil {
		t.Fatalf("replay failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Saved "+scenePath) {
		t.Fatalf("save not reported:\n%s", output)
	}

	output, err = execute(t, "info", scenePath, "--json")
	if err != nil {
		t.Fatalf("info failed: %v\nOutput: %s", err, output)
	}
	var info SceneInfo
	if err := json.Unmarshal([]byte(output), &info); err != nil {
		t.Fatalf("decode info: %v\n%s", err, output)
	}
	if info.Components != 1 || info.Kinds["resistor"] != 1 {
		t.Fatalf("unexpected summary %+v", info)
	}
	if info.Offset != [2]float64{50, 0} || info.Scale != 1 {
		t.Fatalf("view = %v x%v, want (50,0) x1", info.Offset, info.Scale)
	}
	if info.UUID == "" {
		t.Fatalf("saved scene has no uuid")
	}
	sym := info.Symbols[0]
	if sym.ID != "resistor-1" || sym.X != 100 || sym.Y != 100 || sym.Rotation != 90 {
		t.Fatalf("symbol = %+v", sym)
	}
}

func TestReplayErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    func(t *testing.T) []string
		wantErr string
	}{
		{
			name: "unknown kind",
			args: func(t *testing.T) []string {
				return []string{"replay", writeScript(t, "bad.ckt", "resize 800 600\nplace diode at 1 1\n")}
			},
			wantErr: "bad.ckt:2:1",
		},
		{
			name: "missing script",
			args: func(t *testing.T) []string {
				return []string{"replay", filepath.Join(t.TempDir(), "nope.ckt")}
			},
			wantErr: "replay: read script",
		},
		{
			name: "missing scene",
			args: func(t *testing.T) []string {
				return []string{"info", filepath.Join(t.TempDir(), "nope.cirkit")}
			},
			wantErr: "scenefile: open",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, tt.args(t)...)
			if err == nil {
				t.Fatalf("Expected error but got none\nOutput: %s", output)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestReplayEmptySelection(t *testing.T) {
	script := writeScript(t, "clear.ckt", "place battery at 10 10\nselect none\n")
	output, err := execute(t, "replay", script)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !strings.Contains(output, "Select a component to view properties") {
		t.Fatalf("placeholder missing:\n%s", output)
	}
	if !strings.Contains(output, "Battery") {
		t.Fatalf("kind count missing:\n%s", output)
	}
}
