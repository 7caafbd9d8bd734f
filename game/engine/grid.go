package engine

import (
	"fmt"
	"sort"
)

// ImpassabilityCheck answers whether the rover may not occupy a cell
type ImpassabilityCheck interface {
	IsImpassable(x, y int) bool
}

// CheckFunc adapts a plain function to ImpassabilityCheck
type CheckFunc func(x, y int) bool

// IsImpassable calls f(x, y)
func (f CheckFunc) IsImpassable(x, y int) bool {
	return f(x, y)
}

// Grid is the half-open region 0 <= x < Width, 0 <= y < Height
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewGrid creates a grid, rejecting negative dimensions
func NewGrid(width, height int) (Grid, error) {
	if width < 0 || height < 0 {
		return Grid{}, fmt.Errorf("%w: dimensions must be non-negative, got %dx%d", ErrInvalidGrid, width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// InBounds reports whether (x, y) lies on the grid
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsImpassable reports whether (x, y) lies off the grid
func (g Grid) IsImpassable(x, y int) bool {
	return !g.InBounds(x, y)
}

// ObstacleField is an immutable set of blocked cells
type ObstacleField struct {
	cells map[Position]struct{}
}

// NewObstacleField creates a field from the given positions. Duplicates collapse.
func NewObstacleField(positions ...Position) ObstacleField {
	cells := make(map[Position]struct{}, len(positions))
	for _, p := range positions {
		cells[p] = struct{}{}
	}
	return ObstacleField{cells: cells}
}

// IsBlocked reports whether an obstacle occupies (x, y)
func (o ObstacleField) IsBlocked(x, y int) bool {
	_, ok := o.cells[Position{X: x, Y: y}]
	return ok
}

// IsImpassable is IsBlocked
func (o ObstacleField) IsImpassable(x, y int) bool {
	return o.IsBlocked(x, y)
}

// Len returns the number of distinct obstacles
func (o ObstacleField) Len() int {
	return len(o.cells)
}

// Positions returns the obstacles ordered by y, then x
func (o ObstacleField) Positions() []Position {
	out := make([]Position, 0, len(o.cells))
	for p := range o.cells {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

type anyOf []ImpassabilityCheck

func (a anyOf) IsImpassable(x, y int) bool {
	for _, c := range a {
		if c.IsImpassable(x, y) {
			return true
		}
	}
	return false
}

// AnyOf composes checks; a cell is impassable if any member says so
func AnyOf(checks ...ImpassabilityCheck) ImpassabilityCheck {
	return anyOf(append([]ImpassabilityCheck(nil), checks...))
}

// NewSpatialCheck treats off-grid cells and obstacle cells alike
func NewSpatialCheck(grid Grid, obstacles ObstacleField) ImpassabilityCheck {
	return AnyOf(grid, obstacles)
}
