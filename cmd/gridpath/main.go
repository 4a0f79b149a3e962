// Command gridpath loads a grid scenario, runs an A* search on it and prints
// the outcome, optionally saving a PNG of the searched board.
//
// Usage:
//
//	gridpath [-config scenario.yaml] [-png out.png] [-v]
//
// The scenario path defaults to $GRIDPATH_CONFIG, then ./scenario.yaml.
// Exit status is 0 when a path was found, 2 when the goal is unreachable and
// 1 on any error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/editor"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/scenario"
)

// Exit codes.
const (
	exitFound       = 0
	exitError       = 1
	exitUnreachable = 2
)

const defaultConfigPath = "./scenario.yaml"

var glyphs = map[editor.Status]byte{
	editor.Unvisited: '.',
	editor.Open:      'o',
	editor.Closed:    'x',
	editor.Barrier:   '#',
	editor.Start:     'S',
	editor.Goal:      'G',
	editor.Path:      '*',
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without process globals, returning the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", configDefault(), "scenario YAML file")
	pngPath := fs.String("png", "", "write the searched board to this PNG file")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	astar.SetLogger(log)
	defer astar.SetLogger(nil)

	res, err := solve(ctx, *configPath, *pngPath, stdout)
	if err != nil {
		log.WithError(err).Error("gridpath failed")
		return exitError
	}
	if !res.Found() {
		return exitUnreachable
	}
	return exitFound
}

func configDefault() string {
	if p := os.Getenv("GRIDPATH_CONFIG"); p != "" {
		return p
	}
	return defaultConfigPath
}

// solve loads the scenario, searches it and reports to w.
func solve(ctx context.Context, configPath, pngPath string, w io.Writer) (astar.Result, error) {
	s, err := scenario.Load(configPath)
	if err != nil {
		return astar.Result{}, err
	}
	astar.Logger().WithField("path", configPath).Debug("scenario loaded")

	e, err := s.Editor()
	if err != nil {
		return astar.Result{}, err
	}
	res, err := e.Run(ctx)
	if err != nil {
		return res, err
	}
	if res.Status == astar.Cancelled {
		return res, fmt.Errorf("search %s: %w", res.Status, context.Cause(ctx))
	}

	report(w, e, res)

	if pngPath != "" {
		if err = render.SavePNG(pngPath, e.Snapshot(), s.RenderOptions()...); err != nil {
			return res, err
		}
		astar.Logger().WithField("png", pngPath).Info("board saved")
	}

	return res, nil
}

func report(w io.Writer, e *editor.Editor, res astar.Result) {
	fmt.Fprintf(w, "status: %s\n", res.Status)
	fmt.Fprintf(w, "expanded: %d\n", res.Expanded)
	if res.Found() {
		fmt.Fprintf(w, "cost: %d\n", res.Cost)
		fmt.Fprintf(w, "path: %s\n", joinCells(res.Path))
	}
	for _, row := range e.Snapshot() {
		line := make([]byte, len(row))
		for i, st := range row {
			line[i] = glyphs[st]
		}
		fmt.Fprintln(w, string(line))
	}
}

func joinCells(cells []grid.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
