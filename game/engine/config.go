package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StartPose is where the rover begins and which way it faces
type StartPose struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Heading string `json:"heading"`
}

// Position returns the start cell
func (s StartPose) Position() Position {
	return Position{X: s.X, Y: s.Y}
}

// SimulationConfig represents a single rover run
type SimulationConfig struct {
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Start       StartPose  `json:"start"`
	Obstacles   []Position `json:"obstacles"`
	Commands    string     `json:"commands"`
}

// ValidateSimulationConfig rejects configurations the rover cannot be built
// from. The start cell and obstacle positions are deliberately unchecked.
func ValidateSimulationConfig(config *SimulationConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Width < 0 || config.Height < 0 {
		return fmt.Errorf("config validation: %w: width and height must be non-negative, got %dx%d",
			ErrInvalidGrid, config.Width, config.Height)
	}
	if _, err := ParseHeading(config.Start.Heading); err != nil {
		return fmt.Errorf("config validation: start: %w", err)
	}
	return nil
}

// LoadSimulationConfig loads a simulation configuration from a JSON file
func LoadSimulationConfig(filename string) (*SimulationConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config, err := ParseSimulationConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config '%s': %w", filename, err)
	}
	if config.Name == "" {
		config.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return config, nil
}

// ParseSimulationConfig decodes and validates a JSON configuration
func ParseSimulationConfig(data []byte) (*SimulationConfig, error) {
	var config SimulationConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := ValidateSimulationConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// DefaultSimulationConfig is the 10x10 reference run with one obstacle
func DefaultSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		Name:        "classic",
		Description: "10x10 grid with a single obstacle at (2, 2)",
		Width:       10,
		Height:      10,
		Start:       StartPose{X: 0, Y: 0, Heading: string(North)},
		Obstacles:   []Position{{X: 2, Y: 2}},
		Commands:    "MMRMMRMRM",
	}
}
