package engine

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	return abs(from.X-to.X) + abs(from.Y-to.Y)
}

// ObstaclesOutOfBounds returns obstacles that lie outside the grid and so
// can never affect a move
func ObstaclesOutOfBounds(grid Grid, obstacles ObstacleField) []Position {
	var out []Position
	for _, p := range obstacles.Positions() {
		if !grid.InBounds(p.X, p.Y) {
			out = append(out, p)
		}
	}
	return out
}

// CountPassableCells counts in-bounds cells not covered by an obstacle
func CountPassableCells(grid Grid, obstacles ObstacleField) int {
	blocked := obstacles.Len() - len(ObstaclesOutOfBounds(grid, obstacles))
	return grid.Width*grid.Height - blocked
}

// PathLength counts the successful moves in a history
func PathLength(history []MoveHistoryEntry) int {
	n := 0
	for _, e := range history {
		if e.Command == Move && !e.Blocked {
			n++
		}
	}
	return n
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
