// Package patterns produces lazy sequences of coordinates describing common
// spatial queries: neighborhoods, lines and rectangles.
//
// Patterns know nothing about cell data. They are meant to be handed to
// grid.Grid.Select / grid.Grid.SelectMut (or selection.Iter for any other
// selection.Source) to resolve the coordinates into cells. Generators never
// check bounds; an out-of-range coordinate is a valid output and the
// selection reports it as a failure.
package patterns

import (
	"iter"

	"tapestry/pkg/core"
)

var (
	mooreOffsets = [...]core.Coord{
		core.North, core.NorthEast, core.East, core.SouthEast,
		core.South, core.SouthWest, core.West, core.NorthWest,
	}
	orthoOffsets = [...]core.Coord{core.North, core.East, core.South, core.West}
	diagOffsets  = [...]core.Coord{core.NorthEast, core.SouthEast, core.SouthWest, core.NorthWest}
)

// Neighborhood returns the orthogonal and diagonal (Moore) neighborhood of c,
// clockwise from north: N, NE, E, SE, S, SW, W, NW.
func Neighborhood(c core.Coord) iter.Seq[core.Coord] {
	return offsets(c, mooreOffsets[:])
}

// OrthoNeighborhood returns the orthogonal (von Neumann) neighborhood of c:
// N, E, S, W.
func OrthoNeighborhood(c core.Coord) iter.Seq[core.Coord] {
	return offsets(c, orthoOffsets[:])
}

// DiagNeighborhood returns the diagonal neighborhood of c: NE, SE, SW, NW.
func DiagNeighborhood(c core.Coord) iter.Seq[core.Coord] {
	return offsets(c, diagOffsets[:])
}

func offsets(origin core.Coord, deltas []core.Coord) iter.Seq[core.Coord] {
	return func(yield func(core.Coord) bool) {
		for _, d := range deltas {
			if !yield(origin.Add(d)) {
				return
			}
		}
	}
}

// Rect yields every coordinate of r in row-major order, starting at r.Min.
func Rect(r core.Rect) iter.Seq[core.Coord] {
	return func(yield func(core.Coord) bool) {
		if r.Empty() {
			return
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if !yield(core.Coord{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Torus wraps every coordinate of seq into r, turning any pattern into its
// toroidal counterpart.
func Torus(r core.Rect, seq iter.Seq[core.Coord]) iter.Seq[core.Coord] {
	return func(yield func(core.Coord) bool) {
		for c := range seq {
			if !yield(r.Wrap(c)) {
				return
			}
		}
	}
}
