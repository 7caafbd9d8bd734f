package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/wricardo/mars-rover/game/engine"
)

// hclScenario is the top-level shape of an .hcl scenario file
type hclScenario struct {
	Name        string         `hcl:"name,optional"`
	Description string         `hcl:"description,optional"`
	Commands    string         `hcl:"commands,optional"`
	ObstacleSet string         `hcl:"obstacles,optional"`
	Grid        hclGrid        `hcl:"grid,block"`
	Start       hclStart       `hcl:"start,block"`
	Obstacles   []*hclObstacle `hcl:"obstacle,block"`
}

type hclGrid struct {
	Width  int `hcl:"width"`
	Height int `hcl:"height"`
}

type hclStart struct {
	X       int    `hcl:"x"`
	Y       int    `hcl:"y"`
	Heading string `hcl:"heading"`
}

type hclObstacle struct {
	X int `hcl:"x"`
	Y int `hcl:"y"`
}

// ParseHCLScenario decodes an HCL scenario. Obstacles may be given as
// obstacle blocks, as an "obstacles" list string, or both.
func ParseHCLScenario(filename string, src []byte) (*engine.SimulationConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root hclScenario
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	obstacles := make([]engine.Position, 0, len(root.Obstacles))
	for _, o := range root.Obstacles {
		obstacles = append(obstacles, engine.Position{X: o.X, Y: o.Y})
	}
	if root.ObstacleSet != "" {
		listed, err := ParseObstacles(root.ObstacleSet)
		if err != nil {
			return nil, fmt.Errorf("%s: obstacles: %w", filename, err)
		}
		obstacles = append(obstacles, listed...)
	}

	return &engine.SimulationConfig{
		Name:        root.Name,
		Description: root.Description,
		Width:       root.Grid.Width,
		Height:      root.Grid.Height,
		Start: engine.StartPose{
			X:       root.Start.X,
			Y:       root.Start.Y,
			Heading: root.Start.Heading,
		},
		Obstacles: obstacles,
		Commands:  root.Commands,
	}, nil
}

// Diagnostics unwraps HCL diagnostics from an error returned by
// ParseHCLScenario, for callers that want source ranges
func Diagnostics(err error) hcl.Diagnostics {
	var diags hcl.Diagnostics
	if errors.As(err, &diags) {
		return diags
	}
	return nil
}
