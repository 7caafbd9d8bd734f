// Command validate provides a small CLI that validates rover scenario files
// (JSON and HCL) in the ../configs directory, or the directory given as the
// first argument. It checks:
//   - File structure for the format (JSON or HCL blocks)
//   - Non-negative grid dimensions and a start heading of N, E, S or W
//   - Obstacles outside the grid, duplicate obstacles and a blocked start cell (warnings)
//   - Command symbols other than M, L and R (warnings)
//   - Reachability: how many cells the rover can reach from its start cell
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/mars-rover/game/config"
	"github.com/wricardo/mars-rover/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// Errors holds validation errors when Valid is false; informational lines
// (prefixed with ✓) and warnings (prefixed with ⚠) are kept either way.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) warn(format string, args ...any) {
	r.Errors = append(r.Errors, "⚠ "+fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...any) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

// decodeScenario reads a scenario without validating it, so that every
// problem can be reported rather than the first one
func decodeScenario(filePath string) (*engine.SimulationConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("Failed to read file: %v", err)
	}

	if strings.EqualFold(filepath.Ext(filePath), ".hcl") {
		cfg, err := config.ParseHCLScenario(filepath.Base(filePath), data)
		if err != nil {
			return nil, fmt.Errorf("Invalid HCL: %v", err)
		}
		return cfg, nil
	}

	var cfg engine.SimulationConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("Invalid JSON: %v", err)
	}
	return &cfg, nil
}

// validateScenario loads and validates a single scenario file
func validateScenario(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	cfg, err := decodeScenario(filePath)
	if err != nil {
		result.fail("%v", err)
		return result
	}

	if cfg.Width < 0 || cfg.Height < 0 {
		result.fail("Grid dimensions must be non-negative, got %dx%d", cfg.Width, cfg.Height)
	}
	if _, err := engine.ParseHeading(cfg.Start.Heading); err != nil {
		result.fail("Invalid start heading %q (expected N, E, S or W)", cfg.Start.Heading)
	}
	if !result.Valid {
		return result
	}

	grid, _ := engine.NewGrid(cfg.Width, cfg.Height)
	obstacles := engine.NewObstacleField(cfg.Obstacles...)
	start := cfg.Start.Position()

	if dup := len(cfg.Obstacles) - obstacles.Len(); dup > 0 {
		result.warn("%d duplicate obstacle(s)", dup)
	}
	for _, p := range engine.ObstaclesOutOfBounds(grid, obstacles) {
		result.warn("Obstacle %s is outside the %dx%d grid", p, cfg.Width, cfg.Height)
	}
	if engine.NewSpatialCheck(grid, obstacles).IsImpassable(start.X, start.Y) {
		result.warn("Start cell %s is impassable", start)
	}
	if ignored := len([]rune(cfg.Commands)) - len(engine.FilterCommands(cfg.Commands)); ignored > 0 {
		result.warn("%d command symbol(s) will be ignored", ignored)
	}

	reach := validateReachability(grid, obstacles, start)
	result.Errors = append(result.Errors, reach.Errors...)

	final, err := engine.Run(cfg)
	if err != nil {
		result.fail("Simulation failed: %v", err)
		return result
	}

	result.info("Name: %s", cfg.Name)
	result.info("Grid: %dx%d", cfg.Width, cfg.Height)
	result.info("Obstacles: %d", obstacles.Len())
	result.info("Commands: %d", len(engine.FilterCommands(cfg.Commands)))
	result.info("Final: (%d, %d, %s), %d move(s) refused",
		final.Final.Position.X, final.Final.Position.Y, final.Final.Heading, final.Blocked)

	return result
}

// validateReachability flood-fills passable cells from the start using
// 4-directional movement and reports how much of the grid the rover can reach.
// A start cell that is itself impassable is still expanded from.
func validateReachability(grid engine.Grid, obstacles engine.ObstacleField, start engine.Position) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	passable := engine.CountPassableCells(grid, obstacles)
	if passable == 0 {
		result.warn("Grid has no passable cells")
		return result
	}

	check := engine.NewSpatialCheck(grid, obstacles)
	visited := map[engine.Position]bool{start: true}
	queue := []engine.Position{start}
	headings := []engine.Heading{engine.North, engine.East, engine.South, engine.West}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, h := range headings {
			next := current.Add(h.Delta())
			if !visited[next] && !check.IsImpassable(next.X, next.Y) {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	reached := len(visited)
	if check.IsImpassable(start.X, start.Y) {
		reached--
	}

	if reached < passable {
		result.warn("Reachability: %d/%d passable cells reachable from start", reached, passable)
	} else {
		result.info("Reachability: all %d passable cells reachable from start", passable)
	}
	return result
}

// scenarioFiles lists JSON and HCL scenarios in dir
func scenarioFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.json", "*.hcl"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	return files, nil
}

// main scans the scenario directory and validates each file, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := scenarioFiles(configDir)
	if err != nil {
		fmt.Printf("Error finding scenario files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateScenario(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All scenarios are valid!")
	} else {
		fmt.Println("❌ Some scenarios have errors")
		os.Exit(1)
	}
}
