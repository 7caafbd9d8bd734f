// Command rover runs the Mars rover simulator.
//
// It supports four subcommands:
//  1. "run" – runs a scenario file, or an ad-hoc configuration given as flags
//  2. "prompt" – asks for the configuration on stdin, one value at a time
//  3. "scenarios" – lists the scenario files in the scenario directory
//  4. "version" – prints version information
//
// Global flags select the settings directory, the scenario directory and the
// log level/format. Settings are read from rover.json and .env in the config
// directory, then from ROVER_* environment variables, then from flags.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/mars-rover/game/config"
	"github.com/wricardo/mars-rover/game/engine"
	"github.com/wricardo/mars-rover/game/logging"
	"github.com/wricardo/mars-rover/game/service"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Mars Rover Simulator"
)

// app carries what the root Before hook resolves for the subcommands
type app struct {
	settings *config.Settings
	logger   zerolog.Logger
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// newApp builds the command tree
func newApp() *cli.Command {
	a := &app{logger: zerolog.Nop()}

	return &cli.Command{
		Name:    "rover",
		Usage:   "drive a rover across a bounded grid with obstacles",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "directory holding rover.json and .env",
				Value: ".",
			},
			&cli.StringFlag{
				Name:    "scenario-dir",
				Usage:   "directory containing scenario files",
				Sources: cli.EnvVars("ROVER_SCENARIO_DIR"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn, error or off",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "console or json",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.runCommand(),
			a.promptCommand(),
			a.scenariosCommand(),
			{
				Name:  "version",
				Usage: "show version information",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Fprintf(cmd.Root().Writer, "%s v%s\n", AppName, Version)
					return nil
				},
			},
		},
	}
}

// before loads settings, applies flag overrides and sets up logging
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	settings, err := config.LoadSettings(cmd.String("config"))
	if err != nil {
		return ctx, cli.Exit(fmt.Sprintf("failed to load settings: %v", err), 1)
	}

	if cmd.IsSet("scenario-dir") {
		settings.ScenarioDir = cmd.String("scenario-dir")
	}
	if cmd.IsSet("log-level") {
		settings.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		settings.LogFormat = cmd.String("log-format")
	}

	a.settings = settings
	a.logger = logging.New(cmd.Root().ErrWriter, settings.LogLevel, settings.LogFormat)
	a.logger.Debug().
		Str("scenario_dir", settings.ScenarioDir).
		Str("default_scenario", settings.DefaultScenario).
		Msg("settings loaded")
	return ctx, nil
}

// initializeServices wires the scenario manager and the simulation service.
// When the scenario directory is unusable and scenarios are not required,
// the service runs ad-hoc configurations only.
func (a *app) initializeServices(requireScenarios bool) (service.SimulationService, error) {
	manager, err := config.NewManager(a.settings.ScenarioDir)
	if err != nil {
		if requireScenarios {
			return nil, fmt.Errorf("failed to create scenario manager: %w", err)
		}
		a.logger.Debug().Err(err).Msg("scenario directory unavailable")
		return service.NewSimulationService(nil, a.logger), nil
	}

	if name := a.settings.DefaultScenario; name != "" {
		if err := manager.SetDefault(name); err != nil {
			a.logger.Debug().Err(err).Str("scenario", name).Msg("default scenario unavailable")
		}
	}

	return service.NewSimulationService(manager, a.logger), nil
}

func (a *app) runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run a scenario or an ad-hoc configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scenario", Aliases: []string{"s"}, Usage: "scenario name in the scenario directory"},
			&cli.IntFlag{Name: "width", Value: 10, Usage: "grid width"},
			&cli.IntFlag{Name: "height", Value: 10, Usage: "grid height"},
			&cli.IntFlag{Name: "x", Usage: "start x"},
			&cli.IntFlag{Name: "y", Usage: "start y"},
			&cli.StringFlag{Name: "heading", Value: "N", Usage: "start heading (N, E, S, W)"},
			&cli.StringFlag{Name: "obstacles", Usage: `obstacle list, e.g. "(2,2) (3,4)"`},
			&cli.StringFlag{Name: "commands", Aliases: []string{"c"}, Usage: "command string of M, L and R"},
			&cli.StringFlag{Name: "save", Usage: "save the ad-hoc configuration under this scenario name"},
			&cli.BoolFlag{Name: "trace", Usage: "print the move history"},
			&cli.BoolFlag{Name: "json", Usage: "print the run result as JSON"},
		},
		Action: a.run,
	}
}

// adHocFlags switch run from scenario mode to a configuration built from flags
var adHocFlags = []string{"width", "height", "x", "y", "heading", "obstacles"}

func (a *app) run(ctx context.Context, cmd *cli.Command) error {
	adHoc := false
	for _, name := range adHocFlags {
		if cmd.IsSet(name) {
			adHoc = true
			break
		}
	}
	if adHoc && cmd.IsSet("scenario") {
		return cli.Exit("--scenario cannot be combined with grid, start or obstacle flags", 2)
	}
	if !adHoc && cmd.IsSet("save") {
		return cli.Exit("--save needs an ad-hoc configuration", 2)
	}

	svc, err := a.initializeServices(!adHoc || cmd.IsSet("save"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var result *service.RunResult
	switch {
	case adHoc:
		cfg, err := configFromFlags(cmd)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		if name := cmd.String("save"); name != "" {
			if err := svc.SaveScenario(ctx, name, cfg); err != nil {
				return cli.Exit(err.Error(), 1)
			}
		}
		result, err = svc.Run(ctx, cfg)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
	case cmd.IsSet("commands"):
		cfg, err := svc.LoadScenario(ctx, cmd.String("scenario"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		override := *cfg
		override.Commands = cmd.String("commands")
		result, err = svc.Run(ctx, &override)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
	default:
		result, err = svc.RunScenario(ctx, cmd.String("scenario"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	return printResult(cmd.Root().Writer, result, cmd.Bool("trace"), cmd.Bool("json"))
}

// configFromFlags builds an ad-hoc configuration from the run flags
func configFromFlags(cmd *cli.Command) (*engine.SimulationConfig, error) {
	obstacles, err := config.ParseObstacles(cmd.String("obstacles"))
	if err != nil {
		return nil, err
	}

	cfg := &engine.SimulationConfig{
		Name:      "ad-hoc",
		Width:     cmd.Int("width"),
		Height:    cmd.Int("height"),
		Start:     engine.StartPose{X: cmd.Int("x"), Y: cmd.Int("y"), Heading: cmd.String("heading")},
		Obstacles: obstacles,
		Commands:  cmd.String("commands"),
	}
	if name := cmd.String("save"); name != "" {
		cfg.Name = name
	}
	return cfg, nil
}

func printResult(w io.Writer, result *service.RunResult, trace, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if trace {
		fmt.Fprint(w, engine.FormatHistory(result.Result.History))
	}
	fmt.Fprintln(w, result.Result.Report)
	return nil
}

func (a *app) promptCommand() *cli.Command {
	return &cli.Command{
		Name:  "prompt",
		Usage: "enter the configuration interactively",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "trace", Usage: "print the move history"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root := cmd.Root()
			cfg, err := newPrompter(root.Reader, root.Writer).ask()
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			svc, err := a.initializeServices(false)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			result, err := svc.Run(ctx, cfg)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return printResult(root.Writer, result, cmd.Bool("trace"), false)
		},
	}
}

func (a *app) scenariosCommand() *cli.Command {
	return &cli.Command{
		Name:  "scenarios",
		Usage: "list scenario files",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := a.initializeServices(true)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			scenarios, err := svc.ListScenarios(ctx)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			w := cmd.Root().Writer
			if len(scenarios) == 0 {
				fmt.Fprintf(w, "No scenarios in %s\n", a.settings.ScenarioDir)
				return nil
			}
			fmt.Fprintf(w, "%-16s %-6s %-9s %-9s %-8s %s\n", "ID", "FORMAT", "GRID", "OBSTACLES", "COMMANDS", "NAME")
			for _, s := range scenarios {
				fmt.Fprintf(w, "%-16s %-6s %-9s %-9d %-8d %s\n",
					s.ScenarioID, s.Format, fmt.Sprintf("%dx%d", s.Width, s.Height), s.Obstacles, s.Commands, s.Name)
			}
			return nil
		},
	}
}

// exitCode reports the exit status carried by err, if any
func exitCode(err error) int {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	if err != nil {
		return 1
	}
	return 0
}
