package config

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/wricardo/mars-rover/game/engine"
)

// ObstacleList is a whitespace, comma or semicolon separated list of
// coordinate pairs, each written "(x, y)" or "x,y"
type ObstacleList struct {
	Pairs []*ObstaclePair `parser:"( @@ ( (';' | ',')? @@ )* )?"`
}

type ObstaclePair struct {
	Paren *Coordinates `parser:"  '(' @@ ')'"`
	Bare  *Coordinates `parser:"| @@"`
}

type Coordinates struct {
	X *Integer `parser:"@@ ','"`
	Y *Integer `parser:"@@"`
}

type Integer struct {
	Negative bool `parser:"@'-'?"`
	Value    int  `parser:"@Int"`
}

var obstacleParser = participle.MustBuild[ObstacleList]()

func (i *Integer) signed() int {
	if i.Negative {
		return -i.Value
	}
	return i.Value
}

// Position returns the pair as an engine position
func (p *ObstaclePair) Position() engine.Position {
	c := p.Bare
	if p.Paren != nil {
		c = p.Paren
	}
	return engine.Position{X: c.X.signed(), Y: c.Y.signed()}
}

// ParseObstacles parses an obstacle list such as "(2,2) (3,-1)" or "2,2;3,-1"
func ParseObstacles(text string) ([]engine.Position, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	list, err := obstacleParser.ParseString("obstacles", text)
	if err != nil {
		return nil, fmt.Errorf("invalid obstacle list: %w", err)
	}

	positions := make([]engine.Position, 0, len(list.Pairs))
	for _, pair := range list.Pairs {
		positions = append(positions, pair.Position())
	}
	return positions, nil
}

// FormatObstacles renders positions in the form ParseObstacles accepts
func FormatObstacles(positions []engine.Position) string {
	parts := make([]string, 0, len(positions))
	for _, p := range positions {
		parts = append(parts, fmt.Sprintf("(%d,%d)", p.X, p.Y))
	}
	return strings.Join(parts, " ")
}
