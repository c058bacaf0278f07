// Package selection resolves coordinate sequences against a grid-like source.
//
// For every input coordinate, in input order, a selection yields either the
// cell at that coordinate or a *BoundsError paired with the coordinate. A
// failure never ends the sequence early, so one neighbor past the edge does
// not abort a whole neighborhood scan. Nothing is materialized: each
// coordinate is pulled, checked and yielded before the next one is requested.
//
// Borrows are enforced at runtime through the source's Guard. A selection
// takes its borrow when ranging starts and returns it when ranging stops,
// whether the loop finished, broke out early or panicked.
package selection

import (
	"iter"

	"tapestry/pkg/core"
)

// Source is anything addressable by core.Coord within a rectangle.
type Source[T any] interface {
	Bounds() core.Rect
	// Addr returns the cell at c. Callers guarantee Bounds().Contains(c).
	Addr(c core.Coord) *T
	Guard() *Guard
}

// Cell is a read-only selection result.
type Cell[T any] struct {
	Coord core.Coord
	Value T
}

// CellRef is a mutable selection result. Value is nil on failure.
type CellRef[T any] struct {
	Coord core.Coord
	Value *T
}

// Iter resolves pattern against src under a read borrow. Values are copied
// out of the source at the time they are yielded.
func Iter[T any](src Source[T], pattern iter.Seq[core.Coord]) iter.Seq2[Cell[T], error] {
	return func(yield func(Cell[T], error) bool) {
		release := src.Guard().Acquire(Read)
		defer release()

		bounds := src.Bounds()
		for c := range pattern {
			if !bounds.Contains(c) {
				if !yield(Cell[T]{Coord: c}, &BoundsError{Coord: c, Bounds: bounds}) {
					return
				}
				continue
			}
			if !yield(Cell[T]{Coord: c, Value: *src.Addr(c)}, nil) {
				return
			}
		}
	}
}

// IterMut resolves pattern against src under a write borrow. The yielded
// pointers must not be used once ranging has stopped. A pattern that repeats
// a coordinate yields the same pointer more than once.
func IterMut[T any](src Source[T], pattern iter.Seq[core.Coord]) iter.Seq2[CellRef[T], error] {
	return func(yield func(CellRef[T], error) bool) {
		release := src.Guard().Acquire(Write)
		defer release()

		bounds := src.Bounds()
		for c := range pattern {
			if !bounds.Contains(c) {
				if !yield(CellRef[T]{Coord: c}, &BoundsError{Coord: c, Bounds: bounds}) {
					return
				}
				continue
			}
			if !yield(CellRef[T]{Coord: c, Value: src.Addr(c)}, nil) {
				return
			}
		}
	}
}

// CountMatching counts the successful entries of sel whose value satisfies
// match. Failed entries are skipped.
func CountMatching[T any](sel iter.Seq2[Cell[T], error], match func(T) bool) int {
	n := 0
	for cell, err := range sel {
		if err != nil {
			continue
		}
		if match(cell.Value) {
			n++
		}
	}
	return n
}

// Values drops failures from sel and yields the remaining cells.
func Values[T any](sel iter.Seq2[Cell[T], error]) iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for cell, err := range sel {
			if err != nil {
				continue
			}
			if !yield(cell) {
				return
			}
		}
	}
}
