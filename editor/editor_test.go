package editor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/editor"
	"github.com/katalvlaran/gridpath/grid"
)

func c(row, col int) grid.Cell { return grid.Cell{Row: row, Col: col} }

func newEditor(t *testing.T, rows, cols int, opts ...editor.Option) *editor.Editor {
	t.Helper()
	e, err := editor.New(rows, cols, opts...)
	require.NoError(t, err)
	return e
}

func status(t *testing.T, e *editor.Editor, cell grid.Cell) editor.Status {
	t.Helper()
	s, err := e.Status(cell)
	require.NoError(t, err)
	return s
}

func TestNew_Errors(t *testing.T) {
	_, err := editor.New(0, 4)
	assert.ErrorIs(t, err, grid.ErrInvalidDimension)

	_, err = editor.FromGrid(nil)
	assert.ErrorIs(t, err, editor.ErrNilGrid)
}

func TestFromGrid_BarrierStatus(t *testing.T) {
	g, err := grid.FromStrings([]string{".#", "#."})
	require.NoError(t, err)
	e, err := editor.FromGrid(g)
	require.NoError(t, err)

	assert.Equal(t, editor.Barrier, status(t, e, c(0, 1)))
	assert.Equal(t, editor.Barrier, status(t, e, c(1, 0)))
	assert.Equal(t, editor.Unvisited, status(t, e, c(0, 0)))
	assert.Equal(t, 2, e.Count(editor.Barrier))
}

// TestPlace_Sequence walks the primary-click state machine.
func TestPlace_Sequence(t *testing.T) {
	e := newEditor(t, 3, 3)

	require.NoError(t, e.Place(c(0, 0)))
	start, ok := e.Start()
	assert.True(t, ok)
	assert.Equal(t, c(0, 0), start)
	assert.Equal(t, editor.Start, status(t, e, c(0, 0)))

	// clicking the start again is a no-op
	require.NoError(t, e.Place(c(0, 0)))
	_, ok = e.Goal()
	assert.False(t, ok)

	require.NoError(t, e.Place(c(2, 2)))
	goal, ok := e.Goal()
	assert.True(t, ok)
	assert.Equal(t, c(2, 2), goal)
	assert.Equal(t, editor.Goal, status(t, e, c(2, 2)))

	require.NoError(t, e.Place(c(1, 1)))
	assert.Equal(t, editor.Barrier, status(t, e, c(1, 1)))
	ok, err := e.Grid().Passable(c(1, 1))
	require.NoError(t, err)
	assert.False(t, ok)

	// endpoints never turn into barriers
	require.NoError(t, e.Place(c(2, 2)))
	assert.Equal(t, editor.Goal, status(t, e, c(2, 2)))
}

func TestPlace_StartOverGoalIgnored(t *testing.T) {
	e := newEditor(t, 2, 2)
	require.NoError(t, e.Place(c(0, 0)))
	require.NoError(t, e.Place(c(1, 1)))

	// unset the start, then click the goal: nothing may change
	require.NoError(t, e.Erase(c(0, 0)))
	require.NoError(t, e.Place(c(1, 1)))
	_, ok := e.Start()
	assert.False(t, ok)
	assert.Equal(t, editor.Goal, status(t, e, c(1, 1)))

	// the next free click restores a start
	require.NoError(t, e.Place(c(0, 1)))
	start, ok := e.Start()
	assert.True(t, ok)
	assert.Equal(t, c(0, 1), start)
}

func TestPlace_EndpointOverBarrierIsPassable(t *testing.T) {
	g, err := grid.FromStrings([]string{"#."})
	require.NoError(t, err)
	e, err := editor.FromGrid(g)
	require.NoError(t, err)

	require.NoError(t, e.Place(c(0, 0)))
	assert.Equal(t, editor.Start, status(t, e, c(0, 0)))
	ok, err := g.Passable(c(0, 0))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestErase(t *testing.T) {
	e := newEditor(t, 2, 3)
	require.NoError(t, e.Place(c(0, 0)))
	require.NoError(t, e.Place(c(0, 2)))
	require.NoError(t, e.Place(c(0, 1)))

	require.NoError(t, e.Erase(c(0, 1)))
	assert.Equal(t, editor.Unvisited, status(t, e, c(0, 1)))
	assert.Empty(t, e.Grid().Barriers())

	require.NoError(t, e.Erase(c(0, 2)))
	_, ok := e.Goal()
	assert.False(t, ok)

	// the next placement fills the missing goal, not a barrier
	require.NoError(t, e.Place(c(1, 2)))
	goal, ok := e.Goal()
	assert.True(t, ok)
	assert.Equal(t, c(1, 2), goal)
}

func TestOutOfBounds(t *testing.T) {
	e := newEditor(t, 2, 2)
	assert.ErrorIs(t, e.Place(c(2, 0)), grid.ErrOutOfBounds)
	assert.ErrorIs(t, e.Erase(c(0, -1)), grid.ErrOutOfBounds)
	_, err := e.Status(c(5, 5))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestClear(t *testing.T) {
	e := newEditor(t, 3, 3)
	for _, cell := range []grid.Cell{c(0, 0), c(2, 2), c(1, 1), c(1, 0)} {
		require.NoError(t, e.Place(cell))
	}
	e.Clear()

	_, ok := e.Start()
	assert.False(t, ok)
	_, ok = e.Goal()
	assert.False(t, ok)
	assert.Empty(t, e.Grid().Barriers())
	assert.Equal(t, 9, e.Count(editor.Unvisited))
}

func TestRun_EndpointsUnset(t *testing.T) {
	e := newEditor(t, 3, 3)
	_, err := e.Run(context.Background())
	assert.ErrorIs(t, err, editor.ErrEndpointsUnset)

	require.NoError(t, e.Place(c(0, 0)))
	_, err = e.Run(context.Background())
	assert.ErrorIs(t, err, editor.ErrEndpointsUnset)
}

// TestRun_Decoration checks the board after a search around a center barrier.
//
//	S . .        S C C
//	. # .   →    P # C
//	. . G        P P G
func TestRun_Decoration(t *testing.T) {
	var steps []grid.Cell
	e := newEditor(t, 3, 3, editor.WithOnStep(func(_ *editor.Editor, cell grid.Cell) {
		steps = append(steps, cell)
	}))
	require.NoError(t, e.Place(c(0, 0)))
	require.NoError(t, e.Place(c(2, 2)))
	require.NoError(t, e.Place(c(1, 1)))

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, res.Expanded, len(steps))

	want := [][]editor.Status{
		{editor.Start, editor.Closed, editor.Closed},
		{editor.Path, editor.Barrier, editor.Closed},
		{editor.Path, editor.Path, editor.Goal},
	}
	assert.Equal(t, want, e.Snapshot())
}

// TestRun_Repeatable ensures a second run starts from a clean board and
// yields the same decoration.
func TestRun_Repeatable(t *testing.T) {
	e := newEditor(t, 4, 4)
	require.NoError(t, e.Place(c(0, 0)))
	require.NoError(t, e.Place(c(3, 3)))
	require.NoError(t, e.Place(c(1, 1)))
	require.NoError(t, e.Place(c(2, 1)))

	_, err := e.Run(context.Background())
	require.NoError(t, err)
	first := e.Snapshot()

	_, err = e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, e.Snapshot())
}

func TestRun_Unreachable(t *testing.T) {
	e := newEditor(t, 3, 3)
	require.NoError(t, e.Place(c(0, 0)))
	require.NoError(t, e.Place(c(2, 2)))
	for col := 0; col < 3; col++ {
		require.NoError(t, e.Place(c(1, col)))
	}

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, astar.Unreachable, res.Status)
	assert.Zero(t, e.Count(editor.Path))
	assert.Equal(t, 2, e.Count(editor.Closed))
	assert.Equal(t, editor.Unvisited, status(t, e, c(2, 0)))
}

func TestRun_Cancelled(t *testing.T) {
	e := newEditor(t, 5, 5)
	require.NoError(t, e.Place(c(0, 0)))
	require.NoError(t, e.Place(c(4, 4)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := e.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, astar.Cancelled, res.Status)
	assert.Zero(t, e.Count(editor.Closed))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "barrier", editor.Barrier.String())
	assert.Equal(t, "path", editor.Path.String())
	assert.Equal(t, "status(42)", editor.Status(42).String())
}
