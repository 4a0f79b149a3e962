package astar

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// entry is one open-set heap record. The same cell may have several entries
// alive at once; only the one popped while the cell is a member counts.
type entry struct {
	f     int       // priority key, g + h at push time
	order int       // insertion order, breaks f ties (lower first)
	cell  grid.Cell // the cell this entry refers to
}

// lessEntry orders entries by ascending f, then ascending insertion order.
func lessEntry(a, b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.order < b.order
}

// openSet pairs the min-heap of entries with the set of cells that are
// logically open. The heap never supports decrease-key; membership is the
// source of truth and stale entries are filtered by the caller on pop.
type openSet struct {
	entries *heap.Heap[entry]
	members mapset.Set[grid.Cell]
	counter int
}

func newOpenSet() *openSet {
	return &openSet{
		entries: heap.New[entry](lessEntry),
		members: mapset.New[grid.Cell](),
	}
}

// seed pushes the start cell with insertion order 0.
func (o *openSet) seed(c grid.Cell, f int) {
	o.entries.Push(entry{f: f, order: 0, cell: c})
	o.members.Put(c)
}

// push bumps the insertion counter, then pushes c with it.
func (o *openSet) push(c grid.Cell, f int) {
	o.counter++
	o.entries.Push(entry{f: f, order: o.counter, cell: c})
	o.members.Put(c)
}

// pop removes the minimum entry. ok is false when the heap is empty.
func (o *openSet) pop() (entry, bool) {
	return o.entries.Pop()
}

func (o *openSet) contains(c grid.Cell) bool { return o.members.Has(c) }

func (o *openSet) remove(c grid.Cell) { o.members.Remove(c) }

// len counts heap entries, stale ones included.
func (o *openSet) len() int { return o.entries.Size() }
