package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/mars-rover/game/engine"
)

func TestAnalyzeScenario_Classic(t *testing.T) {
	var buf bytes.Buffer
	analyzeScenario(&buf, engine.DefaultSimulationConfig())
	out := buf.String()

	for _, want := range []string{
		"Name: classic",
		"Grid Size: 10 x 10",
		"Start: (0, 0, N)",
		"Obstacles: 1",
		"Obstacle Density: 1.0%",
		"Passable Cells: 99",
		"✅ All obstacles are inside the grid",
		"Final: (0, 1, W)",
		"Displacement: 1 (path length 5)",
		"1 of 6 moves were refused",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}

	if strings.Contains(out, "start cell") {
		t.Errorf("Did not expect a start cell warning, got:\n%s", out)
	}
}

func TestAnalyzeScenario_Warnings(t *testing.T) {
	cfg := &engine.SimulationConfig{
		Name:   "Awkward",
		Width:  2,
		Height: 2,
		Start:  engine.StartPose{X: 0, Y: 0, Heading: "N"},
		Obstacles: []engine.Position{
			{X: 0, Y: 0},
			{X: 9, Y: 9}, {X: -1, Y: 0}, {X: 5, Y: 5}, {X: 6, Y: 6}, {X: 7, Y: 7}, {X: 8, Y: 8},
		},
		Commands: "M",
	}

	var buf bytes.Buffer
	analyzeScenario(&buf, cfg)
	out := buf.String()

	for _, want := range []string{
		"WARNING: 6 obstacles are outside the grid",
		"... and 1 more",
		"WARNING: start cell (0, 0) is impassable",
		"✅ No moves were refused",
		"Final: (0, 1, N)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestAnalyzeScenario_InvalidGrid(t *testing.T) {
	var buf bytes.Buffer
	analyzeScenario(&buf, &engine.SimulationConfig{Width: -1, Start: engine.StartPose{Heading: "N"}})
	if !strings.HasPrefix(buf.String(), "Error:") {
		t.Errorf("Expected error output, got %q", buf.String())
	}
}

func TestAnalyzeDir(t *testing.T) {
	dir := t.TempDir()
	scenario := `{"name": "Tiny", "width": 1, "height": 1, "start": {"x": 0, "y": 0, "heading": "N"}, "commands": "M"}`
	if err := os.WriteFile(filepath.Join(dir, "tiny.json"), []byte(scenario), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := analyzeDir(&buf, dir); err != nil {
		t.Fatalf("analyzeDir failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "=== Analyzing tiny.json ===") {
		t.Errorf("Expected header for tiny.json, got:\n%s", out)
	}
	if !strings.Contains(out, "1 of 1 moves were refused") {
		t.Errorf("Expected refused move, got:\n%s", out)
	}
}

func TestAnalyzeDir_Missing(t *testing.T) {
	var buf bytes.Buffer
	if err := analyzeDir(&buf, "/non/existent/path"); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestCountMoves(t *testing.T) {
	history := []engine.MoveHistoryEntry{
		{Command: engine.Move},
		{Command: engine.TurnLeft},
		{Command: engine.Move, Blocked: true},
	}
	if got := countMoves(history); got != 2 {
		t.Errorf("countMoves = %d, expected 2", got)
	}
}
