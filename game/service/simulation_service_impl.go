package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wricardo/mars-rover/game/engine"
)

// simulationServiceImpl implements the SimulationService interface
type simulationServiceImpl struct {
	scenarios ScenarioStore
	logger    zerolog.Logger
	now       func() time.Time
}

// NewSimulationService creates a new simulation service instance
func NewSimulationService(scenarios ScenarioStore, logger zerolog.Logger) SimulationService {
	return &simulationServiceImpl{
		scenarios: scenarios,
		logger:    logger.With().Str("component", "simulation").Logger(),
		now:       time.Now,
	}
}

// Run executes an ad-hoc configuration on a fresh rover
func (s *simulationServiceImpl) Run(ctx context.Context, config *engine.SimulationConfig) (*RunResult, error) {
	return s.run(ctx, "", config)
}

// RunScenario loads a scenario by name and runs it. An empty name runs the
// store's default scenario.
func (s *simulationServiceImpl) RunScenario(ctx context.Context, name string) (*RunResult, error) {
	config, err := s.LoadScenario(ctx, name)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = config.Name
	}
	return s.run(ctx, name, config)
}

func (s *simulationServiceImpl) run(ctx context.Context, scenario string, config *engine.SimulationConfig) (*RunResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := s.logger.With().Str("run_id", runID).Logger()
	if scenario != "" {
		logger = logger.With().Str("scenario", scenario).Logger()
	}

	started := s.now()
	result, err := engine.Run(config)
	if err != nil {
		logger.Warn().Err(err).Msg("simulation rejected")
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	duration := s.now().Sub(started)

	ignored := utf8.RuneCountInString(config.Commands) - result.Applied
	logger.Info().
		Int("applied", result.Applied).
		Int("blocked", result.Blocked).
		Int("ignored", ignored).
		Int("x", result.Final.Position.X).
		Int("y", result.Final.Position.Y).
		Str("heading", string(result.Final.Heading)).
		Bool("impassable", result.Final.Impassable).
		Dur("duration", duration).
		Msg("simulation finished")

	for _, e := range result.History {
		if e.Blocked {
			logger.Debug().Int("step", e.Step).Stringer("at", e.From).Str("heading", string(e.Heading)).Msg("move refused")
		}
	}

	return &RunResult{
		RunID:      runID,
		Scenario:   scenario,
		Config:     config,
		Result:     result,
		StartedAt:  started,
		Duration:   duration,
		Ignored:    ignored,
		PathLength: engine.PathLength(result.History),
	}, nil
}

// ListScenarios returns every scenario the store can load
func (s *simulationServiceImpl) ListScenarios(ctx context.Context) ([]*ScenarioInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.scenarios.ListScenarios()
}

// LoadScenario resolves a scenario by name, falling back to the default for ""
func (s *simulationServiceImpl) LoadScenario(ctx context.Context, name string) (*engine.SimulationConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if name == "" {
		config := s.scenarios.GetDefault()
		if config == nil {
			return nil, fmt.Errorf("%w: no default scenario configured", ErrScenarioNotFound)
		}
		return config, nil
	}

	config, err := s.scenarios.LoadScenario(name)
	if err != nil {
		if errors.Is(err, ErrScenarioNotFound) {
			// Provide helpful error message with available options
			available, listErr := s.scenarios.ListScenarios()
			if listErr == nil && len(available) > 0 {
				ids := make([]string, 0, len(available))
				for _, info := range available {
					ids = append(ids, info.ScenarioID)
				}
				return nil, fmt.Errorf("scenario '%s': %w. Available scenarios: %v", name, ErrScenarioNotFound, ids)
			}
			return nil, fmt.Errorf("scenario '%s': %w", name, ErrScenarioNotFound)
		}
		return nil, fmt.Errorf("failed to load scenario %s: %w", name, err)
	}
	return config, nil
}

// SaveScenario validates and stores a scenario
func (s *simulationServiceImpl) SaveScenario(ctx context.Context, name string, config *engine.SimulationConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: scenario name is required", ErrInvalidScenario)
	}
	if err := s.scenarios.SaveScenario(name, config); err != nil {
		return err
	}
	s.logger.Info().Str("scenario", name).Msg("scenario saved")
	return nil
}
