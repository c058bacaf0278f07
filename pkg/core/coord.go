package core

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Coord is an integer 2D vector identifying a grid cell. +Y points north.
//
// Components are machine ints and arithmetic wraps on overflow like any other
// Go int; keeping magnitudes in range is the caller's job. A Coord carries no
// bounds of its own.
type Coord struct {
	X int
	Y int
}

// Unit offsets, clockwise from north.
var (
	North     = Coord{0, 1}
	NorthEast = Coord{1, 1}
	East      = Coord{1, 0}
	SouthEast = Coord{1, -1}
	South     = Coord{0, -1}
	SouthWest = Coord{-1, -1}
	West      = Coord{-1, 0}
	NorthWest = Coord{-1, 1}
)

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// From builds a Coord from any pair of integers.
func From[I constraints.Integer](x, y I) Coord {
	return Coord{X: int(x), Y: int(y)}
}

// FromPair builds a Coord from a two-element array, e.g. core.FromPair([2]int32{3, 4}).
func FromPair[I constraints.Integer](p [2]I) Coord {
	return From(p[0], p[1])
}

// Pair returns the components as an array.
func (c Coord) Pair() [2]int { return [2]int{c.X, c.Y} }

// Add returns the component-wise sum.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Neg returns the coordinate mirrored through the origin.
func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// Scale multiplies both components by k.
func (c Coord) Scale(k int) Coord {
	return Coord{X: c.X * k, Y: c.Y * k}
}

// Sign returns the component-wise signum (-1, 0 or 1).
func (c Coord) Sign() Coord {
	return Coord{X: sign(c.X), Y: sign(c.Y)}
}

// Abs returns the component-wise absolute value.
func (c Coord) Abs() Coord {
	return Coord{X: abs(c.X), Y: abs(c.Y)}
}

// Chebyshev returns the chessboard distance to o.
func (c Coord) Chebyshev(o Coord) int {
	d := c.Sub(o).Abs()
	return max(d.X, d.Y)
}

// Manhattan returns the taxicab distance to o.
func (c Coord) Manhattan(o Coord) int {
	d := c.Sub(o).Abs()
	return d.X + d.Y
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
