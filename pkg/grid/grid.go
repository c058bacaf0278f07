// Package grid provides a dense rectangular grid addressable by core.Coord.
package grid

import (
	"iter"

	"tapestry/pkg/core"
	"tapestry/pkg/patterns"
	"tapestry/pkg/selection"
)

// Grid stores cells of type T in row-major order.
type Grid[T any] struct {
	bounds  core.Rect
	data    []T
	scratch []T
	guard   selection.Guard
}

// New allocates a grid covering r with zero-valued cells.
func New[T any](r core.Rect) *Grid[T] {
	return &Grid[T]{bounds: r, data: make([]T, r.Len())}
}

// NewWithGenerator allocates a grid covering r and fills every cell with
// gen(c), visiting coordinates in row-major order.
func NewWithGenerator[T any](r core.Rect, gen func(core.Coord) T) *Grid[T] {
	g := New[T](r)
	i := 0
	for c := range patterns.Rect(r) {
		g.data[i] = gen(c)
		i++
	}
	return g
}

// Map returns a new grid with f applied to every cell of g.
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	out := New[U](g.bounds)
	for c, v := range g.All() {
		out.data[out.index(c)] = f(v)
	}
	return out
}

// Bounds returns the addressable rectangle.
func (g *Grid[T]) Bounds() core.Rect { return g.bounds }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

// Guard exposes the borrow tracker shared by every selection over g.
func (g *Grid[T]) Guard() *selection.Guard { return &g.guard }

// Addr returns the cell at c without a bounds check.
func (g *Grid[T]) Addr(c core.Coord) *T { return &g.data[g.index(c)] }

// Values exposes the backing slice in row-major order. Treat it as read-only.
func (g *Grid[T]) Values() []T { return g.data }

// Index returns the linear slice index for c, or -1 when c is out of bounds.
func (g *Grid[T]) Index(c core.Coord) int {
	if !g.bounds.Contains(c) {
		return -1
	}
	return g.index(c)
}

func (g *Grid[T]) index(c core.Coord) int {
	return (c.Y-g.bounds.Min.Y)*g.bounds.Dx() + (c.X - g.bounds.Min.X)
}

// Wrap applies toroidal wrapping to c.
func (g *Grid[T]) Wrap(c core.Coord) core.Coord { return g.bounds.Wrap(c) }

// Get returns the value at c.
func (g *Grid[T]) Get(c core.Coord) (T, error) {
	var zero T
	if !g.bounds.Contains(c) {
		return zero, g.boundsError(c)
	}
	g.guard.Check(selection.Read)
	return g.data[g.index(c)], nil
}

// GetMut returns a pointer to the cell at c. The pointer is not tracked by
// the guard; do not hold it across a selection.
func (g *Grid[T]) GetMut(c core.Coord) (*T, error) {
	if !g.bounds.Contains(c) {
		return nil, g.boundsError(c)
	}
	g.guard.Check(selection.Write)
	return &g.data[g.index(c)], nil
}

// Set stores v at c.
func (g *Grid[T]) Set(c core.Coord, v T) error {
	p, err := g.GetMut(c)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	g.guard.Check(selection.Write)
	for i := range g.data {
		g.data[i] = v
	}
}

// All yields every coordinate and value in row-major order under a read borrow.
func (g *Grid[T]) All() iter.Seq2[core.Coord, T] {
	return func(yield func(core.Coord, T) bool) {
		release := g.guard.Acquire(selection.Read)
		defer release()
		i := 0
		for c := range patterns.Rect(g.bounds) {
			if !yield(c, g.data[i]) {
				return
			}
			i++
		}
	}
}

// AllMut yields every coordinate and cell pointer in row-major order under a
// write borrow.
func (g *Grid[T]) AllMut() iter.Seq2[core.Coord, *T] {
	return func(yield func(core.Coord, *T) bool) {
		release := g.guard.Acquire(selection.Write)
		defer release()
		i := 0
		for c := range patterns.Rect(g.bounds) {
			if !yield(c, &g.data[i]) {
				return
			}
			i++
		}
	}
}

// Select resolves pattern against g; see selection.Iter.
func (g *Grid[T]) Select(pattern iter.Seq[core.Coord]) iter.Seq2[selection.Cell[T], error] {
	return selection.Iter[T](g, pattern)
}

// SelectMut resolves pattern against g for writing; see selection.IterMut.
func (g *Grid[T]) SelectMut(pattern iter.Seq[core.Coord]) iter.Seq2[selection.CellRef[T], error] {
	return selection.IterMut[T](g, pattern)
}

// Update advances every cell to rule(c, old) in two phases. The first phase
// reads the whole grid, so rule may select neighbors freely and always sees
// the previous generation; results go to a scratch buffer that is swapped in
// under a write borrow afterwards.
func (g *Grid[T]) Update(rule func(c core.Coord, v T) T) {
	if len(g.scratch) != len(g.data) {
		g.scratch = make([]T, len(g.data))
	}
	i := 0
	for c, v := range g.All() {
		g.scratch[i] = rule(c, v)
		i++
	}
	release := g.guard.Acquire(selection.Write)
	g.data, g.scratch = g.scratch, g.data
	release()
}

func (g *Grid[T]) boundsError(c core.Coord) error {
	return &selection.BoundsError{Coord: c, Bounds: g.bounds}
}
