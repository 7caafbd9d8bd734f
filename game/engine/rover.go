package engine

// Rover holds a position and heading on a shared, read-only terrain
type Rover struct {
	pos     Position
	heading Heading
	check   ImpassabilityCheck
	history []MoveHistoryEntry
}

// NewRover places a rover at start facing heading. The start cell is not
// checked: a rover may begin off the grid or on top of an obstacle.
func NewRover(start Position, heading Heading, check ImpassabilityCheck) (*Rover, error) {
	h, err := ParseHeading(string(heading))
	if err != nil {
		return nil, err
	}
	if check == nil {
		check = CheckFunc(func(int, int) bool { return false })
	}
	return &Rover{
		pos:     start,
		heading: h,
		check:   check,
		history: []MoveHistoryEntry{},
	}, nil
}

// Position returns the current cell
func (r *Rover) Position() Position {
	return r.pos
}

// Heading returns the current facing
func (r *Rover) Heading() Heading {
	return r.heading
}

// CanMove reports whether the cell ahead is passable
func (r *Rover) CanMove() bool {
	next := r.pos.Add(r.heading.Delta())
	return !r.check.IsImpassable(next.X, next.Y)
}

// Move steps one cell forward. A blocked step leaves the rover in place and
// returns false.
func (r *Rover) Move() bool {
	from := r.pos
	next := from.Add(r.heading.Delta())
	moved := !r.check.IsImpassable(next.X, next.Y)
	if moved {
		r.pos = next
	}
	r.record(Move, from, !moved)
	return moved
}

// TurnLeft rotates a quarter turn counter-clockwise
func (r *Rover) TurnLeft() {
	r.heading = r.heading.Left()
	r.record(TurnLeft, r.pos, false)
}

// TurnRight rotates a quarter turn clockwise
func (r *Rover) TurnRight() {
	r.heading = r.heading.Right()
	r.record(TurnRight, r.pos, false)
}

// StatusReport snapshots the rover. Impassable is evaluated against the
// current cell on every call.
func (r *Rover) StatusReport() Status {
	return Status{
		Position:   r.pos,
		Heading:    r.heading,
		Impassable: r.check.IsImpassable(r.pos.X, r.pos.Y),
	}
}

// History returns every command applied so far, in order
func (r *Rover) History() []MoveHistoryEntry {
	out := make([]MoveHistoryEntry, len(r.history))
	copy(out, r.history)
	return out
}

// LastMove returns the most recent entry, or nil if nothing was applied
func (r *Rover) LastMove() *MoveHistoryEntry {
	if len(r.history) == 0 {
		return nil
	}
	last := r.history[len(r.history)-1]
	return &last
}

func (r *Rover) record(cmd Command, from Position, blocked bool) {
	r.history = append(r.history, MoveHistoryEntry{
		Step:    len(r.history) + 1,
		Command: cmd,
		From:    from,
		To:      r.pos,
		Heading: r.heading,
		Blocked: blocked,
	})
}
