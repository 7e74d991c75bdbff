// Command sepro loads a model file, compiles it, initializes the engine
// with a world, runs for a requested number of steps, and dumps the
// resulting state.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/sepro-lang/sepro"
	"github.com/sepro-lang/sepro/compiler"
	"github.com/sepro-lang/sepro/modelyaml"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("sepro", flag.ContinueOnError)
	fs.SetOutput(stderr)
	world := fs.String("world", "main", "name of the world to initialize")
	seed := fs.Int64("seed", 0, "shuffle RNG seed (0: nondeterministic)")
	format := fs.String("format", "dsl", `model file format: "dsl" or "yaml"`)
	config := fs.String("config", "", "path to a YAML run-config sidecar file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: sepro [flags] MODEL STEPS")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	cfg := defaultConfig()
	if *config != "" {
		if err := loadConfigFile(*config, &cfg); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if *world != "main" {
		cfg.World = *world
	}
	if *seed != 0 {
		cfg.Seed = seed
	}
	if *format != "dsl" {
		cfg.Format = *format
	}

	modelPath := fs.Arg(0)
	steps, err := strconv.Atoi(fs.Arg(1))
	if err != nil || steps < 0 {
		fmt.Fprintf(stderr, "sepro: STEPS must be a non-negative integer, got %q\n", fs.Arg(1))
		return 2
	}

	model, err := loadModel(modelPath, cfg.Format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if cfg.Dump {
		fmt.Fprintf(stdout, "model: %d concept(s), %d actuator(s), %d world(s), %d measure(s)\n",
			len(model.Concepts), len(model.Actuators), len(model.Worlds), len(model.Measures))
	}

	e := sepro.NewEngine(model, nil)
	if cfg.Seed != nil {
		e.SetSeed(*cfg.Seed)
	}
	e.SetLogger(sepro.NewTextLogger(stdout))

	if _, err := e.Initialize(cfg.World); err != nil {
		fmt.Fprintln(stderr, "sepro:", err)
		return 1
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, haltSignals()...)
	defer signal.Stop(interrupted)

	runUntilStepsOrSignal(e, steps, interrupted, stdout)

	e.DebugDump(stdout)
	return 0
}

// runUntilStepsOrSignal drives the engine one step at a time so that a
// pending interrupt signal is only honored between steps, never in the
// middle of one (grounded on the teacher's platform-specific system files'
// goal of never leaving process state half-updated).
func runUntilStepsOrSignal(e *sepro.Engine, steps int, interrupted <-chan os.Signal, stdout *os.File) {
	for i := 0; i < steps; i++ {
		select {
		case <-interrupted:
			fmt.Fprintln(stdout, "sepro: interrupted, halting after current step")
			return
		default:
		}
		e.Step()
		if e.IsHalted() {
			return
		}
	}
}

func loadModel(path string, format string) (*sepro.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sepro: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(format) {
	case "", "dsl":
		model, err := compiler.Compile(f)
		if err != nil {
			return nil, fmt.Errorf("sepro: compiling %s: %w", path, err)
		}
		return model, nil
	case "yaml":
		model, err := modelyaml.Load(f)
		if err != nil {
			return nil, fmt.Errorf("sepro: loading %s: %w", path, err)
		}
		return model, nil
	default:
		return nil, fmt.Errorf("sepro: unknown model format %q", format)
	}
}
