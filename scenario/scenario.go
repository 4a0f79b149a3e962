package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/editor"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: failed to read %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML scenario, applies defaults and validates it.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scenario: failed to parse: %w", err)
	}

	if s.Render.CellSize == 0 {
		s.Render.CellSize = DefaultCellSize
	}
	if s.Layout != "" {
		if err := s.applyLayout(); err != nil {
			return nil, err
		}
	}
	if s.Start == nil || s.Goal == nil {
		return nil, ErrMissingEndpoint
	}
	if *s.Start == *s.Goal {
		return nil, fmt.Errorf("%w: both are %v", ErrSameEndpoints, s.Start.Cell())
	}

	return &s, nil
}

// applyLayout derives size and endpoints from the ASCII layout and checks
// them against any explicit values.
func (s *Scenario) applyLayout() error {
	lines := strings.Split(strings.TrimRight(s.Layout, "\n"), "\n")
	var start, goal *Point
	for r, line := range lines {
		line = strings.TrimRight(line, "\r")
		cells := []rune(line)
		for c, ch := range cells {
			switch ch {
			case 'S':
				if start != nil {
					return fmt.Errorf("%w: more than one 'S'", ErrConflictingLayout)
				}
				start = &Point{Row: r, Col: c}
				cells[c] = '.'
			case 'G':
				if goal != nil {
					return fmt.Errorf("%w: more than one 'G'", ErrConflictingLayout)
				}
				goal = &Point{Row: r, Col: c}
				cells[c] = '.'
			}
		}
		lines[r] = string(cells)
	}

	rows, cols := len(lines), len([]rune(lines[0]))
	if (s.Rows != 0 && s.Rows != rows) || (s.Cols != 0 && s.Cols != cols) {
		return fmt.Errorf("%w: layout is %d×%d, fields say %d×%d", ErrConflictingLayout, rows, cols, s.Rows, s.Cols)
	}
	s.Rows, s.Cols = rows, cols

	if start != nil {
		if s.Start != nil && *s.Start != *start {
			return fmt.Errorf("%w: start", ErrConflictingLayout)
		}
		s.Start = start
	}
	if goal != nil {
		if s.Goal != nil && *s.Goal != *goal {
			return fmt.Errorf("%w: goal", ErrConflictingLayout)
		}
		s.Goal = goal
	}
	s.layoutLines = lines

	return nil
}

// Grid builds the board: layout or empty grid, then declared barriers, then
// random barriers (never on start or goal).
func (s *Scenario) Grid() (*grid.Grid, error) {
	var (
		g   *grid.Grid
		err error
	)
	if s.layoutLines != nil {
		g, err = grid.FromStrings(s.layoutLines)
	} else {
		g, err = grid.New(s.Rows, s.Cols)
	}
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	for _, b := range s.Barriers {
		if err = g.SetPassable(b.Cell(), false); err != nil {
			return nil, fmt.Errorf("scenario: barrier: %w", err)
		}
	}
	if s.Random != nil {
		if err = g.Scatter(s.Random.Density, s.Random.Seed, s.Start.Cell(), s.Goal.Cell()); err != nil {
			return nil, fmt.Errorf("scenario: random: %w", err)
		}
	}

	return g, nil
}

// Editor builds the board and places start and goal on it.
func (s *Scenario) Editor(opts ...editor.Option) (*editor.Editor, error) {
	g, err := s.Grid()
	if err != nil {
		return nil, err
	}
	e, err := editor.FromGrid(g, opts...)
	if err != nil {
		return nil, err
	}
	if err = e.Place(s.Start.Cell()); err != nil {
		return nil, fmt.Errorf("scenario: start: %w", err)
	}
	if err = e.Place(s.Goal.Cell()); err != nil {
		return nil, fmt.Errorf("scenario: goal: %w", err)
	}

	return e, nil
}

// RenderOptions translates the render section into render options.
func (s *Scenario) RenderOptions() []render.Option {
	opts := []render.Option{
		render.WithCellSize(s.Render.CellSize),
		render.WithLabels(s.Render.Labels),
	}
	if s.Render.GridLines != nil {
		opts = append(opts, render.WithGridLines(*s.Render.GridLines))
	}
	return opts
}
