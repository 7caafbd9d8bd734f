package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wricardo/mars-rover/game/engine"
)

var errNoInput = errors.New("unexpected end of input")

// prompter reads one answer per line
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) line(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errNoInput
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) integer(question string) (int, error) {
	answer, err := p.line(question)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", answer)
	}
	return n, nil
}

// ask collects a full configuration in the order the questions are listed
func (p *prompter) ask() (*engine.SimulationConfig, error) {
	cfg := &engine.SimulationConfig{Name: "prompt"}

	var err error
	if cfg.Width, err = p.integer("Enter grid size X: "); err != nil {
		return nil, err
	}
	if cfg.Height, err = p.integer("Enter grid size Y: "); err != nil {
		return nil, err
	}
	if cfg.Start.X, err = p.integer("Enter starting X position: "); err != nil {
		return nil, err
	}
	if cfg.Start.Y, err = p.integer("Enter starting Y position: "); err != nil {
		return nil, err
	}
	if cfg.Start.Heading, err = p.line("Enter starting direction (N, S, E, W): "); err != nil {
		return nil, err
	}

	count, err := p.integer("Enter the number of obstacles: ")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("number of obstacles must be non-negative, got %d", count)
	}
	for i := 1; i <= count; i++ {
		x, err := p.integer(fmt.Sprintf("Enter obstacle %d X position: ", i))
		if err != nil {
			return nil, err
		}
		y, err := p.integer(fmt.Sprintf("Enter obstacle %d Y position: ", i))
		if err != nil {
			return nil, err
		}
		cfg.Obstacles = append(cfg.Obstacles, engine.Position{X: x, Y: y})
	}

	if cfg.Commands, err = p.line("Enter commands (M, L, R): "); err != nil {
		return nil, err
	}
	return cfg, nil
}
