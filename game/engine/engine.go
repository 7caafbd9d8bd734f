package engine

// Simulation wires a configuration into a grid, obstacles and a rover
type Simulation struct {
	config    *SimulationConfig
	grid      Grid
	obstacles ObstacleField
	check     ImpassabilityCheck
	rover     *Rover
}

// Result is the outcome of running a command string
type Result struct {
	Final   Status             `json:"final"`
	Report  string             `json:"report"`
	Applied int                `json:"applied"`
	Blocked int                `json:"blocked"`
	History []MoveHistoryEntry `json:"history"`
}

// NewSimulation creates a simulation from the provided configuration
func NewSimulation(config *SimulationConfig) (*Simulation, error) {
	if err := ValidateSimulationConfig(config); err != nil {
		return nil, err
	}

	grid, err := NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, err
	}
	obstacles := NewObstacleField(config.Obstacles...)
	check := NewSpatialCheck(grid, obstacles)

	heading, err := ParseHeading(config.Start.Heading)
	if err != nil {
		return nil, err
	}
	rover, err := NewRover(config.Start.Position(), heading, check)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		config:    config,
		grid:      grid,
		obstacles: obstacles,
		check:     check,
		rover:     rover,
	}, nil
}

// Config returns the configuration the simulation was built from
func (s *Simulation) Config() *SimulationConfig {
	return s.config
}

// Grid returns the bounded grid
func (s *Simulation) Grid() Grid {
	return s.grid
}

// Obstacles returns the obstacle field
func (s *Simulation) Obstacles() ObstacleField {
	return s.obstacles
}

// Rover returns the simulated rover
func (s *Simulation) Rover() *Rover {
	return s.rover
}

// Execute applies commands on top of the rover's current state
func (s *Simulation) Execute(commands string) int {
	return Dispatch(s.rover, commands)
}

// Run applies the configured command string and reports the final state
func (s *Simulation) Run() Result {
	applied := s.Execute(s.config.Commands)
	return s.Result(applied)
}

// Result summarises the rover's current state
func (s *Simulation) Result(applied int) Result {
	history := s.rover.History()
	blocked := 0
	for _, e := range history {
		if e.Blocked {
			blocked++
		}
	}
	status := s.rover.StatusReport()
	return Result{
		Final:   status,
		Report:  FormatReport(status),
		Applied: applied,
		Blocked: blocked,
		History: history,
	}
}

// Run builds a fresh simulation from config and runs it to completion
func Run(config *SimulationConfig) (Result, error) {
	sim, err := NewSimulation(config)
	if err != nil {
		return Result{}, err
	}
	return sim.Run(), nil
}
