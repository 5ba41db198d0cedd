// pqpath reads a weighted edge list and prints the shortest path between two
// vertices, computed with Dijkstra's algorithm over an indexed priority queue.
//
// Usage:
//
//	pqpath [flags] <source> <destination> < edges.txt
//	pqpath [flags] table <source> < edges.txt
//	pqpath [flags] generate --topology grid --size 5 > edges.txt
//	pqpath [flags] dumpconfig
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/pqpath/core"
	"github.com/katalvlaran/pqpath/dijkstra"
	"github.com/katalvlaran/pqpath/edgelist"
)

var (
	ConfigFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	BackendFlag = &cli.StringFlag{
		Name:    "backend",
		Usage:   "priority queue backend (heap, sorted)",
		Value:   "heap",
		EnvVars: []string{"PQPATH_BACKEND"},
	}
	DirectedFlag = &cli.BoolFlag{
		Name:  "directed",
		Usage: "treat each triple as a one-way edge",
	}
	InputFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "edge list file (\"-\" or empty reads standard input)",
	}
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "log level (debug, info, warn, error)",
		Value: "warn",
	}
	NoColorFlag = &cli.BoolFlag{
		Name:  "nocolor",
		Usage: "disable colored output",
	}
)

var appFlags = []cli.Flag{
	ConfigFileFlag,
	BackendFlag,
	DirectedFlag,
	InputFlag,
	VerbosityFlag,
	NoColorFlag,
}

var (
	distanceColor = color.New(color.FgGreen).SprintFunc()
	pathColor     = color.New(color.FgCyan).SprintFunc()
	nullColor     = color.New(color.FgRed).SprintFunc()
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "pqpath"
	app.Usage = "single-source shortest paths over a weighted edge list"
	app.ArgsUsage = "<source> <destination>"
	app.Flags = appFlags
	app.Action = shortestPath
	app.Commands = []*cli.Command{
		tableCommand,
		generateCommand,
		dumpConfigCommand,
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		os.Exit(1)
	}
}

// shortestPath prints "<distance> <path>" for the two positional vertices,
// or "null" when the destination cannot be reached.
func shortestPath(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("expected <source> <destination>, got %d argument(s)", ctx.NArg())
	}
	source, dest := ctx.Args().Get(0), ctx.Args().Get(1)

	solver, g, err := solve(ctx, source)
	if err != nil {
		return err
	}
	if !g.HasVertex(dest) {
		return fmt.Errorf("%w: destination %s", dijkstra.ErrVertexNotFound, dest)
	}

	out := ctx.App.Writer
	if !solver.Reachable(dest) {
		fmt.Fprintln(out, nullColor("null"))
		return nil
	}
	d, _ := solver.DistanceTo(dest)
	path, _ := solver.PathTo(dest)
	fmt.Fprintln(out, distanceColor(formatDistance(d)), pathColor(formatPath(path)))

	return nil
}

// solve builds the configuration, reads the graph and runs the solver from source.
func solve(ctx *cli.Context, source string) (*dijkstra.Solver[string], *core.Graph, error) {
	cfg, err := buildConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	logger, err := newLogger(ctx.App.ErrWriter, cfg.Verbosity)
	if err != nil {
		return nil, nil, err
	}

	g, err := readGraph(ctx.App.Reader, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Loaded edge list", "input", inputName(cfg.Input), "stats", g.Stats())

	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: source %s", dijkstra.ErrVertexNotFound, source)
	}

	start := time.Now()
	solver, err := dijkstra.New(g.Adjacency(), source, dijkstra.WithBackend(cfg.Backend))
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Solved shortest paths", "source", source, "backend", cfg.Backend,
		"vertices", g.VertexCount(), "edges", g.EdgeCount(), "elapsed", time.Since(start))

	return solver, g, nil
}

// readGraph loads the edge list named by cfg.Input, or stdin when unset.
func readGraph(stdin io.Reader, cfg *Config) (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(cfg.Directed)}
	if cfg.Input == "" || cfg.Input == "-" {
		return edgelist.Read(stdin, opts...)
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := edgelist.Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Input, err)
	}

	return g, nil
}

func inputName(input string) string {
	if input == "" || input == "-" {
		return "stdin"
	}
	return input
}

// newLogger returns a text logger on w filtered at the named level.
func newLogger(w io.Writer, verbosity string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(verbosity)); err != nil {
		return nil, fmt.Errorf("invalid verbosity %q: %w", verbosity, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// formatDistance renders d with at least one decimal place ("3.0", "2.25").
func formatDistance(d float64) string {
	s := strconv.FormatFloat(d, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}

// formatPath renders a path as "[A, B, C]".
func formatPath(path []string) string {
	return "[" + strings.Join(path, ", ") + "]"
}
