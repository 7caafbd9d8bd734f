// Command analyze prints quick, human-readable heuristics about the scenario
// files in the project's configs directory (or the directory given as the
// first argument). It summarizes dimensions, obstacle density, obstacles that
// fall outside the grid, a blocked start cell, and how far the command string
// takes the rover from its start.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/wricardo/mars-rover/game/config"
	"github.com/wricardo/mars-rover/game/engine"
)

func main() {
	dir := "configs"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := analyzeDir(os.Stdout, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// analyzeDir analyzes every loadable scenario in dir, in name order
func analyzeDir(w io.Writer, dir string) error {
	manager, err := config.NewManager(dir)
	if err != nil {
		return err
	}

	scenarios, err := manager.ListScenarios()
	if err != nil {
		return err
	}

	for _, info := range scenarios {
		fmt.Fprintf(w, "\n=== Analyzing %s ===\n", info.Filename)
		cfg, err := manager.LoadScenario(info.Filename)
		if err != nil {
			fmt.Fprintf(w, "Error loading scenario: %v\n", err)
			continue
		}
		analyzeScenario(w, cfg)
	}
	return nil
}

func analyzeScenario(w io.Writer, cfg *engine.SimulationConfig) {
	grid, err := engine.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	obstacles := engine.NewObstacleField(cfg.Obstacles...)
	start := cfg.Start.Position()

	fmt.Fprintf(w, "Name: %s\n", cfg.Name)
	fmt.Fprintf(w, "Grid Size: %d x %d\n", cfg.Width, cfg.Height)
	fmt.Fprintf(w, "Start: (%d, %d, %s)\n", start.X, start.Y, cfg.Start.Heading)
	fmt.Fprintf(w, "Obstacles: %d\n", obstacles.Len())

	cells := cfg.Width * cfg.Height
	passable := engine.CountPassableCells(grid, obstacles)
	if cells > 0 {
		fmt.Fprintf(w, "Obstacle Density: %.1f%%\n", 100*float64(cells-passable)/float64(cells))
	}
	fmt.Fprintf(w, "Passable Cells: %d\n", passable)

	outside := engine.ObstaclesOutOfBounds(grid, obstacles)
	if len(outside) > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d obstacles are outside the grid and can never block a move\n", len(outside))
		for i, p := range outside {
			if i < 5 { // Show first 5 outside obstacles
				fmt.Fprintf(w, "   Outside: %s\n", p)
			}
		}
		if len(outside) > 5 {
			fmt.Fprintf(w, "   ... and %d more\n", len(outside)-5)
		}
	} else {
		fmt.Fprintf(w, "✅ All obstacles are inside the grid\n")
	}

	if engine.NewSpatialCheck(grid, obstacles).IsImpassable(start.X, start.Y) {
		fmt.Fprintf(w, "⚠️  WARNING: start cell %s is impassable; the report will say an obstacle is detected until the rover moves\n", start)
	}

	result, err := engine.Run(cfg)
	if err != nil {
		fmt.Fprintf(w, "Error running scenario: %v\n", err)
		return
	}

	final := result.Final.Position
	fmt.Fprintf(w, "Final: (%d, %d, %s)\n", final.X, final.Y, result.Final.Heading)
	fmt.Fprintf(w, "Displacement: %d (path length %d)\n",
		engine.ManhattanDistance(start, final), engine.PathLength(result.History))

	if result.Blocked > 0 {
		fmt.Fprintf(w, "⚠️  %d of %d moves were refused\n", result.Blocked, countMoves(result.History))
	} else {
		fmt.Fprintf(w, "✅ No moves were refused\n")
	}
}

func countMoves(history []engine.MoveHistoryEntry) int {
	n := 0
	for _, e := range history {
		if e.Command == engine.Move {
			n++
		}
	}
	return n
}
