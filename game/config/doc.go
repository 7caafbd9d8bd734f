// Package config provides scenario and settings management for the Mars Rover simulator.
//
// The config package handles:
//   - Loading scenarios from JSON and HCL files
//   - Scenario validation, caching and listing
//   - Parsing obstacle lists typed by a user, e.g. "(2,2) (3,4)"
//   - Application settings from a rover.json file, the environment and .env
//
// Scenario Format:
//
// A scenario fixes the grid size, the rover's start pose, the obstacles and
// the command string. JSON scenarios mirror engine.SimulationConfig:
//
//	{
//	  "name": "classic",
//	  "width": 10, "height": 10,
//	  "start": {"x": 0, "y": 0, "heading": "N"},
//	  "obstacles": [{"x": 2, "y": 2}],
//	  "commands": "MMRMMRMRM"
//	}
//
// HCL scenarios use blocks:
//
//	name     = "classic"
//	commands = "MMRMMRMRM"
//
//	grid {
//	  width  = 10
//	  height = 10
//	}
//
//	start {
//	  x       = 0
//	  y       = 0
//	  heading = "N"
//	}
//
//	obstacle {
//	  x = 2
//	  y = 2
//	}
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	scenario, err := manager.LoadScenario("classic")
//	scenarios, err := manager.ListScenarios()
//
// Validation:
//
// Scenarios are checked with engine.ValidateSimulationConfig: grid
// dimensions must be non-negative and the start heading one of N, E, S, W.
// Start and obstacle positions are not restricted to the grid.
package config
