package engine

import "fmt"

// Command is a single rover instruction
type Command byte

const (
	Move      Command = 'M'
	TurnLeft  Command = 'L'
	TurnRight Command = 'R'
)

var commandTable = map[Command]func(*Rover){
	Move:      func(r *Rover) { r.Move() },
	TurnLeft:  (*Rover).TurnLeft,
	TurnRight: (*Rover).TurnRight,
}

// ParseCommand maps a symbol to its command. Symbols are case-sensitive.
func ParseCommand(symbol rune) (Command, bool) {
	if symbol > 0x7f {
		return 0, false
	}
	c := Command(symbol)
	_, ok := commandTable[c]
	return c, ok
}

// Apply runs the command against r
func (c Command) Apply(r *Rover) error {
	fn, ok := commandTable[c]
	if !ok {
		return fmt.Errorf("unknown command %q", byte(c))
	}
	fn(r)
	return nil
}

func (c Command) String() string {
	switch c {
	case Move:
		return "move"
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	}
	return fmt.Sprintf("unknown(%q)", byte(c))
}

// MarshalText encodes the command as its single-letter symbol
func (c Command) MarshalText() ([]byte, error) {
	return []byte{byte(c)}, nil
}

// UnmarshalText decodes a single-letter symbol
func (c *Command) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return fmt.Errorf("command must be one symbol, got %q", text)
	}
	parsed, ok := ParseCommand(rune(text[0]))
	if !ok {
		return fmt.Errorf("unknown command %q", text)
	}
	*c = parsed
	return nil
}

// Dispatch applies each recognised symbol in commands to r, left to right.
// Unrecognised symbols are skipped. It returns how many commands ran.
func Dispatch(r *Rover, commands string) int {
	applied := 0
	for _, symbol := range commands {
		c, ok := ParseCommand(symbol)
		if !ok {
			continue
		}
		commandTable[c](r)
		applied++
	}
	return applied
}

// FilterCommands returns only the recognised symbols of commands
func FilterCommands(commands string) string {
	out := make([]byte, 0, len(commands))
	for _, symbol := range commands {
		if c, ok := ParseCommand(symbol); ok {
			out = append(out, byte(c))
		}
	}
	return string(out)
}
