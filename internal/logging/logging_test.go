package logging

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestSinkReceivesEntries(t *testing.T) {
	var lines []string
	sink := &Sink{}
	sink.Attach(func(line string) { lines = append(lines, line) })

	logger, err := New(false, sink)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("scene saved", zap.String("path", "board.cirkit"))
	logger.Debug("hidden at info level")

	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "INFO") || !strings.Contains(lines[0], "scene saved") || !strings.Contains(lines[0], "board.cirkit") {
		t.Fatalf("unexpected line %q", lines[0])
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	var lines []string
	sink := &Sink{}
	sink.Attach(func(line string) { lines = append(lines, line) })

	logger, err := New(true, sink)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug("pointer routed")
	if len(lines) != 1 || !strings.Contains(lines[0], "DEBUG") {
		t.Fatalf("debug entry missing: %q", lines)
	}

	sink.Attach(nil)
	logger.Info("dropped")
	if len(lines) != 1 {
		t.Fatalf("detached sink still received lines")
	}
}
