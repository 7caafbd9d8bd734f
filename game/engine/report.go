package engine

import (
	"fmt"
	"strings"
)

const (
	obstacleDetected = "Obstacle detected."
	noObstacles      = "No obstacles detected."
)

// FormatReport renders the final position line and the status line
func FormatReport(s Status) string {
	detection := noObstacles
	if s.Impassable {
		detection = obstacleDetected
	}
	return fmt.Sprintf("Final Position: (%d, %d, %s)\nRover is at (%d, %d) facing %s. %s",
		s.Position.X, s.Position.Y, s.Heading,
		s.Position.X, s.Position.Y, s.Heading, detection)
}

// FormatHistory renders one line per history entry
func FormatHistory(history []MoveHistoryEntry) string {
	var b strings.Builder
	for _, e := range history {
		fmt.Fprintf(&b, "%3d %-5s %s -> %s facing %s", e.Step, e.Command, e.From, e.To, e.Heading)
		if e.Blocked {
			b.WriteString(" [blocked]")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
