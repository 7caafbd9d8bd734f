package service

import (
	"context"
	"errors"

	"github.com/wricardo/mars-rover/game/engine"
)

var (
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrInvalidScenario  = errors.New("invalid scenario")
)

// SimulationService defines all simulation operations
type SimulationService interface {
	// Runs
	Run(ctx context.Context, config *engine.SimulationConfig) (*RunResult, error)
	RunScenario(ctx context.Context, name string) (*RunResult, error)

	// Scenarios
	ListScenarios(ctx context.Context) ([]*ScenarioInfo, error)
	LoadScenario(ctx context.Context, name string) (*engine.SimulationConfig, error)
	SaveScenario(ctx context.Context, name string, config *engine.SimulationConfig) error
}

// ScenarioStore handles scenario loading
type ScenarioStore interface {
	LoadScenario(name string) (*engine.SimulationConfig, error)
	ListScenarios() ([]*ScenarioInfo, error)
	GetDefault() *engine.SimulationConfig
	SaveScenario(name string, config *engine.SimulationConfig) error
}
