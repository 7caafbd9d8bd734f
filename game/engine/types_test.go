package engine

import (
	"encoding/json"
	"errors"
	"testing"
)

var allHeadings = []Heading{North, East, South, West}

func TestHeadingConstants(t *testing.T) {
	tests := []struct {
		heading  Heading
		expected string
		name     string
	}{
		{North, "N", "North"},
		{East, "E", "East"},
		{South, "S", "South"},
		{West, "W", "West"},
	}

	for _, test := range tests {
		if string(test.heading) != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, string(test.heading))
		}
		if test.heading.Name() != test.name {
			t.Errorf("Expected name %s, got %s", test.name, test.heading.Name())
		}
	}
}

func TestParseHeading(t *testing.T) {
	tests := []struct {
		input    string
		expected Heading
		wantErr  bool
	}{
		{"N", North, false},
		{"e", East, false},
		{" S ", South, false},
		{"W", West, false},
		{"", "", true},
		{"X", "", true},
		{"NE", "", true},
		{"North", "", true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			h, err := ParseHeading(test.input)
			if test.wantErr {
				if !errors.Is(err, ErrInvalidHeading) {
					t.Fatalf("ParseHeading(%q): expected ErrInvalidHeading, got %v", test.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHeading(%q): unexpected error %v", test.input, err)
			}
			if h != test.expected {
				t.Errorf("ParseHeading(%q): expected %s, got %s", test.input, test.expected, h)
			}
		})
	}
}

func TestHeadingTurns(t *testing.T) {
	tests := []struct {
		heading Heading
		left    Heading
		right   Heading
	}{
		{North, West, East},
		{East, North, South},
		{South, East, West},
		{West, South, North},
	}

	for _, test := range tests {
		if got := test.heading.Left(); got != test.left {
			t.Errorf("%s.Left(): expected %s, got %s", test.heading, test.left, got)
		}
		if got := test.heading.Right(); got != test.right {
			t.Errorf("%s.Right(): expected %s, got %s", test.heading, test.right, got)
		}
	}
}

func TestHeadingTurnsAreInverse(t *testing.T) {
	for _, h := range allHeadings {
		if got := h.Right().Left(); got != h {
			t.Errorf("Left(Right(%s)) = %s", h, got)
		}
		if got := h.Left().Right(); got != h {
			t.Errorf("Right(Left(%s)) = %s", h, got)
		}
	}
}

func TestHeadingCycleLength(t *testing.T) {
	for _, h := range allHeadings {
		left, right := h, h
		for i := 0; i < 4; i++ {
			left = left.Left()
			right = right.Right()
			if i < 3 && (left == h || right == h) {
				t.Errorf("%s returned to itself after %d turns", h, i+1)
			}
		}
		if left != h || right != h {
			t.Errorf("%s: four turns should return to start, got left=%s right=%s", h, left, right)
		}
	}
}

func TestHeadingDelta(t *testing.T) {
	tests := []struct {
		heading Heading
		delta   Position
	}{
		{North, Position{0, 1}},
		{South, Position{0, -1}},
		{East, Position{1, 0}},
		{West, Position{-1, 0}},
	}

	for _, test := range tests {
		if got := test.heading.Delta(); got != test.delta {
			t.Errorf("%s.Delta(): expected %v, got %v", test.heading, test.delta, got)
		}
	}
}

func TestPositionAsMapKey(t *testing.T) {
	seen := map[Position]bool{{X: 1, Y: 2}: true}
	if !seen[Position{X: 1, Y: 2}] {
		t.Error("Expected equal positions to hash to the same key")
	}
	if seen[Position{X: 2, Y: 1}] {
		t.Error("Expected swapped coordinates to be a different key")
	}
	if got := (Position{X: 1, Y: 2}).Add(Position{X: -3, Y: 4}); got != (Position{X: -2, Y: 6}) {
		t.Errorf("Add: got %v", got)
	}
}

func TestMoveHistoryEntryJSON(t *testing.T) {
	entry := MoveHistoryEntry{
		Step:    3,
		Command: Move,
		From:    Position{X: 1, Y: 2},
		To:      Position{X: 1, Y: 2},
		Heading: East,
		Blocked: true,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Failed to marshal entry: %v", err)
	}

	var decoded MoveHistoryEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal entry: %v", err)
	}
	if decoded != entry {
		t.Errorf("Expected %+v, got %+v", entry, decoded)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Failed to unmarshal raw: %v", err)
	}
	if raw["command"] != "M" {
		t.Errorf("Expected command to encode as \"M\", got %v", raw["command"])
	}
}
