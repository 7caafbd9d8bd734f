package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/mars-rover/game/engine"
)

func TestParseObstacles(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []engine.Position
	}{
		{"parenthesised", "(2,2) (3,-1)", []engine.Position{{X: 2, Y: 2}, {X: 3, Y: -1}}},
		{"spaces inside parens", "( 2 , 2 )", []engine.Position{{X: 2, Y: 2}}},
		{"semicolon separated", "2,2;3,4", []engine.Position{{X: 2, Y: 2}, {X: 3, Y: 4}}},
		{"comma separated", "2,2,3,4", []engine.Position{{X: 2, Y: 2}, {X: 3, Y: 4}}},
		{"mixed forms", "(0,1), 5,6", []engine.Position{{X: 0, Y: 1}, {X: 5, Y: 6}}},
		{"duplicates kept", "(1,1) (1,1)", []engine.Position{{X: 1, Y: 1}, {X: 1, Y: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseObstacles(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseObstacles_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		got, err := ParseObstacles(input)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestParseObstacles_Invalid(t *testing.T) {
	for _, input := range []string{"(2,2", "2", "(a,b)", "(1,2) x"} {
		_, err := ParseObstacles(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatObstacles(t *testing.T) {
	positions := []engine.Position{{X: 2, Y: 2}, {X: -1, Y: 4}}
	text := FormatObstacles(positions)
	assert.Equal(t, "(2,2) (-1,4)", text)

	parsed, err := ParseObstacles(text)
	require.NoError(t, err)
	assert.Equal(t, positions, parsed)

	assert.Equal(t, "", FormatObstacles(nil))
}
