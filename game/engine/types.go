package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidHeading = errors.New("invalid heading")
	ErrInvalidGrid    = errors.New("invalid grid")
)

// Position represents x,y coordinates
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position offset by delta
func (p Position) Add(delta Position) Position {
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Heading is the compass direction the rover faces
type Heading string

const (
	North Heading = "N"
	East  Heading = "E"
	South Heading = "S"
	West  Heading = "W"
)

// Clockwise order; turning right walks forward, turning left walks back.
var compass = [...]Heading{North, East, South, West}

var headingDeltas = map[Heading]Position{
	North: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: -1},
	West:  {X: -1, Y: 0},
}

var headingNames = map[Heading]string{
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
}

// ParseHeading converts a heading symbol (N, E, S, W) to a Heading
func ParseHeading(s string) (Heading, error) {
	h := Heading(strings.ToUpper(strings.TrimSpace(s)))
	if !h.Valid() {
		return "", fmt.Errorf("%w: %q (expected one of N, E, S, W)", ErrInvalidHeading, s)
	}
	return h, nil
}

// Valid reports whether h is one of the four compass headings
func (h Heading) Valid() bool {
	_, ok := headingDeltas[h]
	return ok
}

// Right returns the heading one quarter turn clockwise
func (h Heading) Right() Heading {
	return compass[(h.index()+1)%len(compass)]
}

// Left returns the heading one quarter turn counter-clockwise
func (h Heading) Left() Heading {
	return compass[(h.index()+len(compass)-1)%len(compass)]
}

// Delta returns the one-cell step taken when moving in this heading
func (h Heading) Delta() Position {
	return headingDeltas[h]
}

// Name returns the long form of the heading, e.g. "North"
func (h Heading) Name() string {
	if name, ok := headingNames[h]; ok {
		return name
	}
	return string(h)
}

func (h Heading) index() int {
	for i, c := range compass {
		if c == h {
			return i
		}
	}
	// Rovers are only built with valid headings.
	panic(fmt.Sprintf("engine: heading %q is not on the compass", string(h)))
}

// Status is a read-only snapshot of the rover used for reporting
type Status struct {
	Position   Position `json:"position"`
	Heading    Heading  `json:"heading"`
	Impassable bool     `json:"impassable"`
}

// MoveHistoryEntry represents a single applied command
type MoveHistoryEntry struct {
	Step    int      `json:"step"`
	Command Command  `json:"command"`
	From    Position `json:"from"`
	To      Position `json:"to"`
	Heading Heading  `json:"heading"`
	Blocked bool     `json:"blocked,omitempty"`
}
