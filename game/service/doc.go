// Package service provides the application layer for the Mars Rover simulator.
//
// The service package implements:
//   - Scenario lookup through a ScenarioStore
//   - Running simulations from a scenario or an ad-hoc configuration
//   - Run identification and structured logging of each run
//
// Core Interfaces:
//
// SimulationService is the main service interface used by the command line
// front-ends. ScenarioStore abstracts where scenarios come from; the
// config.Manager implementation reads them from a directory of JSON and HCL
// files.
//
// Usage:
//
//	store, _ := config.NewManager("configs")
//	svc := service.NewSimulationService(store, logger)
//
//	run, err := svc.RunScenario(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(run.Result.Report)
//
// Each run builds a fresh rover, so concurrent calls never share mutable
// state.
package service
