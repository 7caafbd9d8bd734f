package service

import (
	"time"

	"github.com/wricardo/mars-rover/game/engine"
)

// RunResult contains the outcome of a single simulation run
type RunResult struct {
	RunID      string                   `json:"run_id"`
	Scenario   string                   `json:"scenario,omitempty"`
	Config     *engine.SimulationConfig `json:"config"`
	Result     engine.Result            `json:"result"`
	StartedAt  time.Time                `json:"started_at"`
	Duration   time.Duration            `json:"duration"`
	Ignored    int                      `json:"ignored"` // command symbols skipped by the dispatcher
	PathLength int                      `json:"path_length"`
}

// ScenarioInfo provides information about a scenario file
type ScenarioInfo struct {
	Filename    string `json:"filename"`
	ScenarioID  string `json:"scenario_id"` // The identifier to pass to RunScenario
	Format      string `json:"format"`      // "json" or "hcl"
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Obstacles   int    `json:"obstacles"`
	Commands    int    `json:"commands"`
}
