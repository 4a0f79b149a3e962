// Package astar implements A* search on a grid.Grid.
//
// Notes on implementation choices:
//
//   - g-scores live in a map; an absent key stands for +∞.
//   - f-scores are recorded per cell but only ever used as heap keys.
//   - Improving a cell that is already open updates g, f and cameFrom but does
//     not push a second entry; the existing entry keeps its position.
//   - Cancellation is polled once per outer iteration, never inside hooks.
package astar

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
)

// FindPath searches for a shortest path from start to goal on g.
//
// Returns:
//
//   - Result with Status Found and the start→goal path, or
//   - Result with Status Unreachable when no path exists, or
//   - Result with Status Cancelled when the WithContext context is done.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and goal must be inside g (ErrInvalidEndpoint).
//
// The passability of start is not consulted. A blocked goal can never be
// entered, so it yields Unreachable unless start == goal, which always
// returns the single-cell path.
func FindPath(g *grid.Grid, start, goal grid.Cell, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v not in %d×%d", ErrInvalidEndpoint, start, g.Rows(), g.Cols())
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: goal %v not in %d×%d", ErrInvalidEndpoint, goal, g.Rows(), g.Cols())
	}

	log := Logger().WithFields(logrus.Fields{
		"start": start.String(),
		"goal":  goal.String(),
	})

	if start == goal {
		log.Debug("astar: start equals goal")
		return Result{Status: Found, Path: []grid.Cell{start}}, nil
	}

	s := newSearcher(g, goal, o)
	log.WithField("size", fmt.Sprintf("%d×%d", g.Rows(), g.Cols())).Debug("astar: search started")
	res := s.run(start)
	log.WithFields(logrus.Fields{
		"status":   res.Status.String(),
		"expanded": res.Expanded,
		"cost":     res.Cost,
	}).Debug("astar: search finished")

	return res, nil
}

// searcher holds the mutable state of a single FindPath call.
type searcher struct {
	grid     *grid.Grid              // read-only during the search
	goal     grid.Cell               // target cell
	opts     Options                 // hooks, heuristic, context
	gScore   map[grid.Cell]int       // best known cost from start; absent = +∞
	fScore   map[grid.Cell]int       // gScore + heuristic, heap key only
	cameFrom map[grid.Cell]grid.Cell // predecessor on the best known path
	open     *openSet                // heap + membership
	expanded int                     // non-stale pops
}

func newSearcher(g *grid.Grid, goal grid.Cell, o Options) *searcher {
	return &searcher{
		grid:     g,
		goal:     goal,
		opts:     o,
		gScore:   make(map[grid.Cell]int),
		fScore:   make(map[grid.Cell]int),
		cameFrom: make(map[grid.Cell]grid.Cell),
		open:     newOpenSet(),
	}
}

// run seeds the open set with start and loops until the goal is expanded,
// the open set is exhausted, or the context is done.
func (s *searcher) run(start grid.Cell) Result {
	s.gScore[start] = 0
	s.fScore[start] = s.opts.Heuristic(start, s.goal)
	s.open.seed(start, s.fScore[start])

	for s.open.len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-s.opts.Ctx.Done():
			return Result{Status: Cancelled, Expanded: s.expanded}
		default:
		}

		top, _ := s.open.pop()
		cur := top.cell
		if !s.open.contains(cur) {
			continue // stale duplicate
		}
		s.open.remove(cur)
		s.expanded++

		if cur == s.goal {
			path := reconstruct(s.cameFrom, cur)
			s.opts.OnExpand(cur)
			return Result{
				Status:   Found,
				Path:     path,
				Cost:     len(path) - 1,
				Expanded: s.expanded,
			}
		}

		s.relax(cur)
		s.opts.OnExpand(cur)
	}

	return Result{Status: Unreachable, Expanded: s.expanded}
}

// relax examines every neighbor of cur in grid order and records any
// strictly better path through cur. Cells not yet open are pushed.
func (s *searcher) relax(cur grid.Cell) {
	tentative := s.gScore[cur] + 1
	for _, nb := range s.grid.NeighborsOf(cur) {
		if old, ok := s.gScore[nb]; ok && tentative >= old {
			continue
		}
		s.cameFrom[nb] = cur
		s.gScore[nb] = tentative
		s.fScore[nb] = tentative + s.opts.Heuristic(nb, s.goal)

		if !s.open.contains(nb) {
			s.open.push(nb, s.fScore[nb])
			s.opts.OnOpen(nb)
		}
	}
}
