package editor

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Editor couples a grid with per-cell display status and endpoint choice.
// It is not safe for concurrent use.
type Editor struct {
	grid   *grid.Grid
	status []Status // row-major, len = rows*cols
	opts   Options

	start, goal       grid.Cell
	hasStart, hasGoal bool
}

// New creates an editor over an empty rows×cols grid.
// Returns grid.ErrInvalidDimension for non-positive sizes.
func New(rows, cols int, opts ...Option) (*Editor, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	return FromGrid(g, opts...)
}

// FromGrid creates an editor over an existing grid. Blocked cells start with
// status Barrier. The editor takes ownership of g.
func FromGrid(g *grid.Grid, opts ...Option) (*Editor, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Editor{
		grid:   g,
		status: make([]Status, g.Rows()*g.Cols()),
		opts:   o,
	}
	for _, b := range g.Barriers() {
		e.status[e.index(b)] = Barrier
	}

	return e, nil
}

// Grid returns the underlying grid. Mutating it directly bypasses status
// bookkeeping; prefer Place and Erase.
func (e *Editor) Grid() *grid.Grid { return e.grid }

// Start returns the start cell and whether it is set.
func (e *Editor) Start() (grid.Cell, bool) { return e.start, e.hasStart }

// Goal returns the goal cell and whether it is set.
func (e *Editor) Goal() (grid.Cell, bool) { return e.goal, e.hasGoal }

// Status returns the display status of c.
func (e *Editor) Status(c grid.Cell) (Status, error) {
	if err := e.check(c); err != nil {
		return Unvisited, err
	}
	return e.status[e.index(c)], nil
}

// Snapshot copies the status board, indexed [row][col].
func (e *Editor) Snapshot() [][]Status {
	rows, cols := e.grid.Rows(), e.grid.Cols()
	out := make([][]Status, rows)
	for r := range out {
		out[r] = make([]Status, cols)
		copy(out[r], e.status[r*cols:(r+1)*cols])
	}
	return out
}

// Count returns how many cells currently have status s.
func (e *Editor) Count(s Status) int {
	n := 0
	for _, st := range e.status {
		if st == s {
			n++
		}
	}
	return n
}

// Place applies a primary click at c:
//  1. no start yet and c is not the goal → c becomes the start;
//  2. no goal yet and c is not the start → c becomes the goal;
//  3. c is neither start nor goal → c becomes a barrier.
//
// Clicking the start or goal again does nothing. Endpoints are always
// passable, even when placed over a former barrier.
func (e *Editor) Place(c grid.Cell) error {
	if err := e.check(c); err != nil {
		return err
	}
	isStart := e.hasStart && c == e.start
	isGoal := e.hasGoal && c == e.goal

	switch {
	case !e.hasStart && !isGoal:
		e.start, e.hasStart = c, true
		e.set(c, Start, true)
	case !e.hasGoal && !isStart:
		e.goal, e.hasGoal = c, true
		e.set(c, Goal, true)
	case !isStart && !isGoal:
		e.set(c, Barrier, false)
	}

	return nil
}

// Erase applies a secondary click at c: the cell becomes passable and
// Unvisited, and if it was the start or goal that endpoint is unset.
func (e *Editor) Erase(c grid.Cell) error {
	if err := e.check(c); err != nil {
		return err
	}
	if e.hasStart && c == e.start {
		e.hasStart = false
	}
	if e.hasGoal && c == e.goal {
		e.hasGoal = false
	}
	e.set(c, Unvisited, true)

	return nil
}

// Clear unsets both endpoints, makes every cell passable and resets all
// statuses to Unvisited.
func (e *Editor) Clear() {
	e.hasStart, e.hasGoal = false, false
	e.grid.Reset()
	clear(e.status)
	astar.Logger().Info("editor: board cleared")
}

// ClearSearch drops Open, Closed and Path decoration from a previous run,
// keeping endpoints and barriers.
func (e *Editor) ClearSearch() {
	for i, st := range e.status {
		if st.decoration() {
			e.status[i] = Unvisited
		}
	}
}

// Run searches from start to goal and decorates the board with the search
// progress. ctx cancels the search between expansions; a cancelled run
// keeps its partial decoration and reports astar.Cancelled.
// Returns ErrEndpointsUnset if either endpoint is missing.
func (e *Editor) Run(ctx context.Context) (astar.Result, error) {
	if !e.hasStart || !e.hasGoal {
		return astar.Result{}, ErrEndpointsUnset
	}
	e.ClearSearch()

	log := astar.Logger().WithFields(logrus.Fields{
		"start": e.start.String(),
		"goal":  e.goal.String(),
	})
	log.Info("editor: run started")

	res, err := astar.FindPath(e.grid, e.start, e.goal,
		astar.WithContext(ctx),
		astar.WithOnOpen(func(c grid.Cell) { e.decorate(c, Open) }),
		astar.WithOnExpand(func(c grid.Cell) {
			e.decorate(c, Closed)
			e.opts.OnStep(e, c)
		}),
	)
	if err != nil {
		return res, fmt.Errorf("editor: run: %w", err)
	}

	if res.Found() {
		for _, c := range res.Path {
			e.decorate(c, Path)
		}
	}
	log.WithFields(logrus.Fields{
		"status":   res.Status.String(),
		"expanded": res.Expanded,
	}).Info("editor: run finished")

	return res, nil
}

// decorate sets a search status unless c is an endpoint.
func (e *Editor) decorate(c grid.Cell, s Status) {
	i := e.index(c)
	if st := e.status[i]; st == Start || st == Goal {
		return
	}
	e.status[i] = s
}

// set writes both the status and the grid passability of c.
func (e *Editor) set(c grid.Cell, s Status, passable bool) {
	e.status[e.index(c)] = s
	// c was bounds-checked by the caller
	_ = e.grid.SetPassable(c, passable)
}

func (e *Editor) check(c grid.Cell) error {
	if !e.grid.InBounds(c) {
		return fmt.Errorf("%w: %v", grid.ErrOutOfBounds, c)
	}
	return nil
}

func (e *Editor) index(c grid.Cell) int {
	return c.Row*e.grid.Cols() + c.Col
}
