package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scenario: %v", err)
	}
	return path
}

func hasMessage(result ValidationResult, substr string) bool {
	for _, msg := range result.Errors {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func TestValidateScenario_ValidJSON(t *testing.T) {
	path := writeScenario(t, "classic.json", `{
		"name": "Classic",
		"width": 10,
		"height": 10,
		"start": {"x": 0, "y": 0, "heading": "N"},
		"obstacles": [{"x": 2, "y": 2}],
		"commands": "MMRMMRMRM"
	}`)

	result := validateScenario(path)
	if !result.Valid {
		t.Fatalf("Expected valid scenario, but got errors: %v", result.Errors)
	}
	if result.File != "classic.json" {
		t.Errorf("Expected file name classic.json, got %s", result.File)
	}

	for _, want := range []string{
		"✓ Name: Classic",
		"✓ Grid: 10x10",
		"✓ Final: (0, 1, W), 1 move(s) refused",
		"✓ Reachability: all 99 passable cells",
	} {
		if !hasMessage(result, want) {
			t.Errorf("Expected message %q in %v", want, result.Errors)
		}
	}
}

func TestValidateScenario_ValidHCL(t *testing.T) {
	path := writeScenario(t, "ridge.hcl", `
name     = "Ridge"
commands = "RMMMM"

grid {
  width  = 6
  height = 3
}

start {
  x       = 0
  y       = 0
  heading = "N"
}

obstacle {
  x = 4
  y = 0
}
`)

	result := validateScenario(path)
	if !result.Valid {
		t.Fatalf("Expected valid scenario, but got errors: %v", result.Errors)
	}
	if !hasMessage(result, "✓ Final: (3, 0, E), 1 move(s) refused") {
		t.Errorf("Unexpected result: %v", result.Errors)
	}
}

func TestValidateScenario_InvalidJSON(t *testing.T) {
	result := validateScenario(writeScenario(t, "bad.json", `{"name": "test", invalid json}`))
	if result.Valid {
		t.Error("Expected invalid scenario due to bad JSON")
	}
	if !hasMessage(result, "Invalid JSON") {
		t.Errorf("Expected 'Invalid JSON' error, got %v", result.Errors)
	}
}

func TestValidateScenario_InvalidHCL(t *testing.T) {
	result := validateScenario(writeScenario(t, "bad.hcl", `grid { width = 2 }`))
	if result.Valid {
		t.Error("Expected invalid scenario due to bad HCL")
	}
	if !hasMessage(result, "Invalid HCL") {
		t.Errorf("Expected 'Invalid HCL' error, got %v", result.Errors)
	}
}

func TestValidateScenario_MissingFile(t *testing.T) {
	result := validateScenario("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !hasMessage(result, "Failed to read file") {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateScenario_ReportsEveryError(t *testing.T) {
	result := validateScenario(writeScenario(t, "broken.json", `{
		"width": -1,
		"height": 4,
		"start": {"x": 0, "y": 0, "heading": "Q"}
	}`))
	if result.Valid {
		t.Fatal("Expected invalid scenario")
	}
	if !hasMessage(result, "non-negative") {
		t.Errorf("Expected grid error, got %v", result.Errors)
	}
	if !hasMessage(result, `Invalid start heading "Q"`) {
		t.Errorf("Expected heading error, got %v", result.Errors)
	}
}

func TestValidateScenario_Warnings(t *testing.T) {
	result := validateScenario(writeScenario(t, "warn.json", `{
		"width": 3,
		"height": 3,
		"start": {"x": 1, "y": 1, "heading": "E"},
		"obstacles": [{"x": 1, "y": 1}, {"x": 1, "y": 1}, {"x": 5, "y": 5}],
		"commands": "MxM?"
	}`))
	if !result.Valid {
		t.Fatalf("Warnings should not invalidate a scenario: %v", result.Errors)
	}

	for _, want := range []string{
		"⚠ 1 duplicate obstacle(s)",
		"⚠ Obstacle (5, 5) is outside the 3x3 grid",
		"⚠ Start cell (1, 1) is impassable",
		"⚠ 2 command symbol(s) will be ignored",
	} {
		if !hasMessage(result, want) {
			t.Errorf("Expected warning %q in %v", want, result.Errors)
		}
	}
}

func TestValidateReachability(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   string
	}{
		{
			name: "boxed in",
			config: `{"width": 3, "height": 3, "start": {"x": 0, "y": 0, "heading": "N"},
				"obstacles": [{"x": 1, "y": 0}, {"x": 0, "y": 1}]}`,
			want: "⚠ Reachability: 1/7 passable cells reachable from start",
		},
		{
			name:   "open grid",
			config: `{"width": 2, "height": 2, "start": {"x": 0, "y": 0, "heading": "N"}}`,
			want:   "✓ Reachability: all 4 passable cells reachable from start",
		},
		{
			name:   "empty grid",
			config: `{"width": 0, "height": 0, "start": {"x": 0, "y": 0, "heading": "N"}}`,
			want:   "⚠ Grid has no passable cells",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateScenario(writeScenario(t, "reach.json", tt.config))
			if !result.Valid {
				t.Fatalf("Expected valid scenario: %v", result.Errors)
			}
			if !hasMessage(result, tt.want) {
				t.Errorf("Expected %q in %v", tt.want, result.Errors)
			}
		})
	}
}

func TestScenarioFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.hcl", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := scenarioFiles(dir)
	if err != nil {
		t.Fatalf("scenarioFiles failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Expected 2 scenario files, got %v", files)
	}
	if filepath.Base(files[0]) != "a.json" || filepath.Base(files[1]) != "b.hcl" {
		t.Errorf("Unexpected files: %v", files)
	}
}
