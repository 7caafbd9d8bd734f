// Package engine provides the core simulation logic for the Mars Rover.
//
// The engine package implements:
//   - A bounded grid and a field of point obstacles
//   - A single impassability check composed from both
//   - The rover state machine (move, turn left, turn right)
//   - Command dispatch over a string of command symbols
//   - The final status report
//
// Core Types:
//
// Grid and ObstacleField both satisfy ImpassabilityCheck, and AnyOf composes
// them into the check a Rover consults before committing a move. Simulation
// wires a SimulationConfig into those pieces and runs its command string.
//
// Usage:
//
//	cfg := &engine.SimulationConfig{
//		Width:     10,
//		Height:    10,
//		Start:     engine.StartPose{X: 0, Y: 0, Heading: "N"},
//		Obstacles: []engine.Position{{X: 2, Y: 2}},
//		Commands:  "MMRMMRMRM",
//	}
//
//	result, err := engine.Run(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Report)
//
// Rules:
//
// North increases y, East increases x. A move into a cell that is off the
// grid or holds an obstacle is refused silently and the rover stays put.
// Symbols other than M, L and R in a command string are ignored.
package engine
